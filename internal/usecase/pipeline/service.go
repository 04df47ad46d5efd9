package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
	"github.com/simaogato/banksynth/internal/domain"
	"github.com/simaogato/banksynth/internal/usecase/account"
	"github.com/simaogato/banksynth/internal/usecase/customer"
	"github.com/simaogato/banksynth/internal/usecase/identity"
	"github.com/simaogato/banksynth/internal/usecase/kyc"
	"github.com/simaogato/banksynth/internal/usecase/ledger"
	"github.com/simaogato/banksynth/internal/usecase/sampler"
	"github.com/simaogato/banksynth/internal/usecase/transfer"
	"go.uber.org/zap"
)

// Recorder receives run-level measurements
type Recorder interface {
	ObserveRun(stats domain.GenerationStats)
	StageFailed(stage string)
	SinkFailed(sink string)
}

// Service runs the generation pipeline: customers, KYC, accounts, transactions, transfers.
// Calls to Generate are serialized.
type Service struct {
	mu       sync.Mutex
	validate *validator.Validate
	logger   *zap.Logger
	recorder Recorder
	store    domain.DatasetStore
	sinks    []domain.DatasetSink
	clock    func() time.Time
}

// NewService creates a pipeline Service.
// store may be nil when datasets need not be retrievable after the run.
func NewService(logger *zap.Logger, recorder Recorder, store domain.DatasetStore, sinks ...domain.DatasetSink) *Service {
	validate := validator.New()
	validate.RegisterStructValidation(rowBudget, domain.GenerateParams{})

	return &Service{
		validate: validate,
		logger:   logger,
		recorder: recorder,
		store:    store,
		sinks:    sinks,
		clock:    time.Now,
	}
}

// generationContext is the explicit state shared by the stages of one run
type generationContext struct {
	src   *sampler.Source
	ids   *identity.Pool
	today domain.Date
}

// Generate produces a complete dataset.
//
// Logic:
//  1. Fill unset parameters (zero Now, MaxDaysBack, AvgAccountsPerCustomer) and validate
//  2. Build a generation context seeded from params.Seed and pinned to params.Now
//  3. Run the stages in order, each fully materializing its table
//  4. Skip the transfer stage when no customers were requested
//  5. Validate every generated row against its domain rules
//  6. Record stats and metrics, then hand the dataset to every sink
//
// A transfer precondition failure aborts the run and wraps domain.ErrInsufficientActiveAccounts.
// Sink failures are recorded in the stats and never fail the run.
func (s *Service) Generate(ctx context.Context, params domain.GenerateParams) (*domain.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	params = s.withDefaults(params)
	if err := s.validate.Struct(params); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidParams, err)
	}

	start := time.Now()
	runID := ulid.Make().String()
	logger := s.logger.With(zap.String("run_id", runID), zap.Uint64("seed", params.Seed))

	gc := generationContext{
		src:   sampler.New(params.Seed),
		today: domain.DateOf(params.Now),
	}
	gc.ids = identity.NewPool(gc.src)

	ds := &domain.Dataset{Params: params}

	ds.Customers = customer.NewGenerator(gc.src, gc.ids, gc.today).Generate(params.CustomerCount)
	ds.KYC = kyc.NewGenerator(gc.src).Generate(ds.Customers)
	ds.Accounts = account.NewGenerator(gc.src, gc.ids, gc.today).Generate(ds.Customers, params.AvgAccountsPerCustomer)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to generate dataset: %w", err)
	}

	ledgerResult := ledger.NewSimulator(gc.src, gc.today).Generate(ds.Accounts, params.AvgTransactionsPerAccount, params.MaxDaysBack)
	ds.Transactions = ledgerResult.Transactions
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to generate dataset: %w", err)
	}

	ds.Transfers = []domain.Transfer{}
	if params.CustomerCount > 0 {
		transfers, err := transfer.NewGenerator(gc.src, gc.today).Generate(ds.Accounts, ds.Customers, params.TransferCount)
		if err != nil {
			s.recorder.StageFailed("transfers")
			logger.Error("transfer stage aborted", zap.Error(err))
			return nil, fmt.Errorf("failed to generate dataset: %w", err)
		}
		ds.Transfers = transfers
	}

	if err := validateDataset(ds); err != nil {
		s.recorder.StageFailed("validation")
		logger.Error("generated dataset failed validation", zap.Error(err))
		return nil, fmt.Errorf("failed to generate dataset: %w", err)
	}

	ds.Stats = domain.GenerationStats{
		RunID:               runID,
		Seed:                params.Seed,
		CustomerCount:       len(ds.Customers),
		KYCCount:            len(ds.KYC),
		AccountCount:        len(ds.Accounts),
		TransactionCount:    len(ds.Transactions),
		TransferCount:       len(ds.Transfers),
		SkippedTransactions: ledgerResult.Skipped,
		ElapsedSeconds:      time.Since(start).Seconds(),
		GeneratedAt:         params.Now,
		Sinks:               []domain.SinkResult{},
	}
	s.recorder.ObserveRun(ds.Stats)

	logger.Info("dataset generated",
		zap.Int("customers", ds.Stats.CustomerCount),
		zap.Int("accounts", ds.Stats.AccountCount),
		zap.Int("transactions", ds.Stats.TransactionCount),
		zap.Int("skipped_transactions", ds.Stats.SkippedTransactions),
		zap.Int("transfers", ds.Stats.TransferCount),
		zap.Float64("elapsed_seconds", ds.Stats.ElapsedSeconds),
	)

	s.persist(ctx, logger, ds)

	if s.store != nil {
		s.store.Put(ds)
	}

	return ds, nil
}

// persist hands the dataset to every sink, recording each outcome in the stats
func (s *Service) persist(ctx context.Context, logger *zap.Logger, ds *domain.Dataset) {
	for _, sink := range s.sinks {
		result := domain.SinkResult{Sink: sink.Name(), Saved: true}
		if err := sink.Save(ctx, ds); err != nil {
			result.Saved = false
			result.Error = err.Error()
			s.recorder.SinkFailed(sink.Name())
			logger.Warn("failed to persist dataset", zap.String("sink", sink.Name()), zap.Error(err))
		}
		ds.Stats.Sinks = append(ds.Stats.Sinks, result)
	}
}

// rowBudget rejects parameters whose expected transactions table exceeds domain.MaxTransactionRows
func rowBudget(sl validator.StructLevel) {
	params := sl.Current().Interface().(domain.GenerateParams)
	if params.ExpectedTransactionRows() > domain.MaxTransactionRows {
		sl.ReportError(params.AvgTransactionsPerAccount, "AvgTransactionsPerAccount", "avg_transactions_per_account", "rowbudget", "")
	}
}

// validateDataset checks every row of every table, stopping at the first violation
func validateDataset(ds *domain.Dataset) error {
	if err := validateRows("customers", ds.Customers); err != nil {
		return err
	}
	if err := validateRows("kyc", ds.KYC); err != nil {
		return err
	}
	if err := validateRows("accounts", ds.Accounts); err != nil {
		return err
	}
	if err := validateRows("transactions", ds.Transactions); err != nil {
		return err
	}
	return validateRows("transfers", ds.Transfers)
}

func validateRows[T any, P interface {
	*T
	Validate() error
}](table string, rows []T) error {
	for i := range rows {
		if err := P(&rows[i]).Validate(); err != nil {
			return fmt.Errorf("%w: %s row %d: %v", domain.ErrInvalidRecord, table, i, err)
		}
	}
	return nil
}

func (s *Service) withDefaults(params domain.GenerateParams) domain.GenerateParams {
	if params.Now.IsZero() {
		params.Now = s.clock()
	}
	params.Now = params.Now.UTC()
	if params.MaxDaysBack == 0 {
		params.MaxDaysBack = domain.DefaultMaxDaysBack
	}
	if params.AvgAccountsPerCustomer == 0 {
		params.AvgAccountsPerCustomer = domain.DefaultAvgAccountsPerCustomer
	}
	return params
}
