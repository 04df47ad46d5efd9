package grpc

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/simaogato/banksynth/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Generator produces datasets
type Generator interface {
	Generate(ctx context.Context, params domain.GenerateParams) (*domain.Dataset, error)
}

// Server implements GeneratorServiceServer
type Server struct {
	generator Generator
	store     domain.DatasetStore
}

// NewServer creates a new gRPC server adapter
func NewServer(generator Generator, store domain.DatasetStore) *Server {
	return &Server{
		generator: generator,
		store:     store,
	}
}

// Generate runs one generation.
// Request fields are optional and override the defaults:
// customer_count, avg_accounts_per_customer, avg_transactions_per_account,
// transfer_count, max_days_back and seed (number or decimal string).
func (s *Server) Generate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	params, err := paramsFromStruct(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	ds, err := s.generator.Generate(ctx, params)
	if err != nil {
		return nil, mapError(err)
	}

	return statsToStruct(ds.Stats)
}

// GetRun returns the stats of the run named by the run_id field
func (s *Server) GetRun(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	runID := req.GetFields()["run_id"].GetStringValue()
	if runID == "" {
		return nil, status.Error(codes.InvalidArgument, "run_id is required")
	}

	ds, err := s.store.Get(runID)
	if err != nil {
		return nil, mapError(err)
	}

	return statsToStruct(ds.Stats)
}

// ListRuns returns the stats of every stored run, newest first, under "runs"
func (s *Server) ListRuns(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	all := s.store.List()
	runs := make([]interface{}, 0, len(all))
	for _, st := range all {
		runs = append(runs, statsToMap(st))
	}

	out, err := structpb.NewStruct(map[string]interface{}{"runs": runs})
	if err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("failed to encode runs: %v", err))
	}
	return out, nil
}

// paramsFromStruct overlays the request fields on the default parameters
func paramsFromStruct(req *structpb.Struct) (domain.GenerateParams, error) {
	params := domain.DefaultGenerateParams()

	for key, value := range req.GetFields() {
		var err error
		switch key {
		case "customer_count":
			params.CustomerCount, err = intField(key, value)
		case "avg_accounts_per_customer":
			params.AvgAccountsPerCustomer, err = numberField(key, value)
		case "avg_transactions_per_account":
			params.AvgTransactionsPerAccount, err = intField(key, value)
		case "transfer_count":
			params.TransferCount, err = intField(key, value)
		case "max_days_back":
			params.MaxDaysBack, err = intField(key, value)
		case "seed":
			params.Seed, err = seedField(value)
		default:
			err = fmt.Errorf("unknown field %q", key)
		}
		if err != nil {
			return params, err
		}
	}

	return params, nil
}

func numberField(key string, value *structpb.Value) (float64, error) {
	n, ok := value.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("%s must be a number", key)
	}
	return n.NumberValue, nil
}

func intField(key string, value *structpb.Value) (int, error) {
	f, err := numberField(key, value)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return int(f), nil
}

func seedField(value *structpb.Value) (uint64, error) {
	switch kind := value.GetKind().(type) {
	case *structpb.Value_StringValue:
		seed, err := strconv.ParseUint(kind.StringValue, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("seed must be an unsigned integer: %v", err)
		}
		return seed, nil
	case *structpb.Value_NumberValue:
		f := kind.NumberValue
		if f < 0 || f != math.Trunc(f) || f >= math.MaxUint64 {
			return 0, errors.New("seed must be an unsigned integer")
		}
		return uint64(f), nil
	default:
		return 0, errors.New("seed must be a number or a decimal string")
	}
}

func statsToMap(st domain.GenerationStats) map[string]interface{} {
	sinks := make([]interface{}, 0, len(st.Sinks))
	for _, r := range st.Sinks {
		sinks = append(sinks, map[string]interface{}{
			"sink":  r.Sink,
			"saved": r.Saved,
			"error": r.Error,
		})
	}

	// seed travels as a string: doubles lose uint64 precision above 2^53
	return map[string]interface{}{
		"run_id":               st.RunID,
		"seed":                 strconv.FormatUint(st.Seed, 10),
		"customer_count":       st.CustomerCount,
		"kyc_count":            st.KYCCount,
		"account_count":        st.AccountCount,
		"transaction_count":    st.TransactionCount,
		"transfer_count":       st.TransferCount,
		"skipped_transactions": st.SkippedTransactions,
		"elapsed_seconds":      st.ElapsedSeconds,
		"generated_at":         st.GeneratedAt.UTC().Format(time.RFC3339),
		"sinks":                sinks,
	}
}

func statsToStruct(st domain.GenerationStats) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(statsToMap(st))
	if err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("failed to encode stats: %v", err))
	}
	return out, nil
}

// mapError maps domain errors to gRPC status codes
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrInvalidParams):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrDatasetNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrInsufficientActiveAccounts):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
