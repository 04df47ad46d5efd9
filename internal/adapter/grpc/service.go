package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Fully-qualified method names of the generator service
const (
	GeneratorServiceName    = "banksynth.v1.GeneratorService"
	GeneratorGenerateMethod = "/banksynth.v1.GeneratorService/Generate"
	GeneratorGetRunMethod   = "/banksynth.v1.GeneratorService/GetRun"
	GeneratorListRunsMethod = "/banksynth.v1.GeneratorService/ListRuns"
)

// GeneratorServiceServer is the server API for the generator service.
// Messages are google.protobuf.Struct so that the service needs no generated stubs.
type GeneratorServiceServer interface {
	Generate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetRun(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListRuns(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// RegisterGeneratorServiceServer registers srv on s
func RegisterGeneratorServiceServer(s grpc.ServiceRegistrar, srv GeneratorServiceServer) {
	s.RegisterService(&GeneratorServiceDesc, srv)
}

func unaryHandler(method string, call func(GeneratorServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(GeneratorServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: method,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(GeneratorServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// GeneratorServiceDesc is the grpc.ServiceDesc for the generator service
var GeneratorServiceDesc = grpc.ServiceDesc{
	ServiceName: GeneratorServiceName,
	HandlerType: (*GeneratorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Generate",
			Handler:    unaryHandler(GeneratorGenerateMethod, GeneratorServiceServer.Generate),
		},
		{
			MethodName: "GetRun",
			Handler:    unaryHandler(GeneratorGetRunMethod, GeneratorServiceServer.GetRun),
		},
		{
			MethodName: "ListRuns",
			Handler:    unaryHandler(GeneratorListRunsMethod, GeneratorServiceServer.ListRuns),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "banksynth/v1/generator.proto",
}

// GeneratorServiceClient is the client API for the generator service
type GeneratorServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGeneratorServiceClient creates a client over cc
func NewGeneratorServiceClient(cc grpc.ClientConnInterface) *GeneratorServiceClient {
	return &GeneratorServiceClient{cc: cc}
}

// Generate runs the pipeline remotely
func (c *GeneratorServiceClient) Generate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GeneratorGenerateMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRun fetches the stats of a stored run
func (c *GeneratorServiceClient) GetRun(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GeneratorGetRunMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRuns lists the stats of every stored run
func (c *GeneratorServiceClient) ListRuns(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GeneratorListRunsMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
