package grpc

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/simaogato/banksynth/internal/adapter/repository/memory"
	"github.com/simaogato/banksynth/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
)

// MockGenerator is a mock implementation of Generator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, params domain.GenerateParams) (*domain.Dataset, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dataset), args.Error(1)
}

const testToken = "secret"

func sampleDataset(runID string) *domain.Dataset {
	return &domain.Dataset{
		Stats: domain.GenerationStats{
			RunID:            runID,
			Seed:             7,
			CustomerCount:    3,
			KYCCount:         3,
			AccountCount:     5,
			TransactionCount: 40,
			TransferCount:    2,
			GeneratedAt:      time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
			Sinks:            []domain.SinkResult{{Sink: "filesystem", Saved: true}},
		},
	}
}

// startServer serves srv over an in-memory listener and returns a client
func startServer(t *testing.T, srv GeneratorServiceServer) *GeneratorServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(
		LoggingInterceptor(zap.NewNop()),
		AuthInterceptor(testToken),
	))
	RegisterGeneratorServiceServer(server, srv)
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewGeneratorServiceClient(conn)
}

func authed() context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+testToken)
}

func TestServer_Generate(t *testing.T) {
	tests := []struct {
		name        string
		request     map[string]interface{}
		setupMock   func(*MockGenerator)
		expectedErr codes.Code
	}{
		{
			name:    "Defaults",
			request: map[string]interface{}{},
			setupMock: func(g *MockGenerator) {
				g.On("Generate", mock.Anything, domain.DefaultGenerateParams()).Return(sampleDataset("run-a"), nil)
			},
			expectedErr: codes.OK,
		},
		{
			name: "Overrides",
			request: map[string]interface{}{
				"customer_count":            10,
				"avg_accounts_per_customer": 2.5,
				"transfer_count":            0,
				"seed":                      "18446744073709551615",
			},
			setupMock: func(g *MockGenerator) {
				want := domain.DefaultGenerateParams()
				want.CustomerCount = 10
				want.AvgAccountsPerCustomer = 2.5
				want.TransferCount = 0
				want.Seed = 18446744073709551615
				g.On("Generate", mock.Anything, want).Return(sampleDataset("run-b"), nil)
			},
			expectedErr: codes.OK,
		},
		{
			name:        "Fractional Count",
			request:     map[string]interface{}{"customer_count": 1.5},
			setupMock:   func(g *MockGenerator) {},
			expectedErr: codes.InvalidArgument,
		},
		{
			name:        "Unknown Field",
			request:     map[string]interface{}{"customers": 5},
			setupMock:   func(g *MockGenerator) {},
			expectedErr: codes.InvalidArgument,
		},
		{
			name:    "Validation Failure",
			request: map[string]interface{}{"customer_count": -1},
			setupMock: func(g *MockGenerator) {
				g.On("Generate", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: customer_count", domain.ErrInvalidParams))
			},
			expectedErr: codes.InvalidArgument,
		},
		{
			name:    "Insufficient Active Accounts",
			request: map[string]interface{}{"customer_count": 1},
			setupMock: func(g *MockGenerator) {
				g.On("Generate", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("failed to generate transfers: %w", domain.ErrInsufficientActiveAccounts))
			},
			expectedErr: codes.FailedPrecondition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := new(MockGenerator)
			tt.setupMock(gen)
			client := startServer(t, NewServer(gen, memory.NewDatasetStore(0)))

			req, err := structpb.NewStruct(tt.request)
			require.NoError(t, err)

			resp, err := client.Generate(authed(), req)

			if tt.expectedErr != codes.OK {
				assert.Equal(t, tt.expectedErr, status.Code(err))
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				fields := resp.AsMap()
				assert.NotEmpty(t, fields["run_id"])
				assert.Equal(t, float64(5), fields["account_count"])
				assert.Equal(t, "7", fields["seed"])
				assert.Equal(t, "2026-10-01T12:00:00Z", fields["generated_at"])
			}
			gen.AssertExpectations(t)
		})
	}
}

func TestServer_Generate_RequiresToken(t *testing.T) {
	gen := new(MockGenerator)
	client := startServer(t, NewServer(gen, memory.NewDatasetStore(0)))

	_, err := client.Generate(context.Background(), &structpb.Struct{})

	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestServer_GetRunAndListRuns(t *testing.T) {
	store := memory.NewDatasetStore(0)
	store.Put(sampleDataset("run-1"))
	store.Put(sampleDataset("run-2"))
	client := startServer(t, NewServer(new(MockGenerator), store))

	t.Run("Found", func(t *testing.T) {
		req, _ := structpb.NewStruct(map[string]interface{}{"run_id": "run-1"})
		resp, err := client.GetRun(authed(), req)
		require.NoError(t, err)
		assert.Equal(t, "run-1", resp.AsMap()["run_id"])
	})

	t.Run("Not Found", func(t *testing.T) {
		req, _ := structpb.NewStruct(map[string]interface{}{"run_id": "missing"})
		_, err := client.GetRun(authed(), req)
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("Missing Run ID", func(t *testing.T) {
		_, err := client.GetRun(authed(), &structpb.Struct{})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("List Newest First", func(t *testing.T) {
		resp, err := client.ListRuns(authed(), &structpb.Struct{})
		require.NoError(t, err)
		runs := resp.AsMap()["runs"].([]interface{})
		require.Len(t, runs, 2)
		assert.Equal(t, "run-2", runs[0].(map[string]interface{})["run_id"])
		assert.Equal(t, "run-1", runs[1].(map[string]interface{})["run_id"])
	})
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"Invalid Params", fmt.Errorf("%w: x", domain.ErrInvalidParams), codes.InvalidArgument},
		{"Not Found", domain.ErrDatasetNotFound, codes.NotFound},
		{"Precondition", domain.ErrInsufficientActiveAccounts, codes.FailedPrecondition},
		{"Canceled", fmt.Errorf("stage: %w", context.Canceled), codes.Canceled},
		{"Other", fmt.Errorf("disk full"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, status.Code(mapError(tt.err)))
		})
	}
	assert.NoError(t, mapError(nil))
}
