package domain

import "time"

const (
	DefaultCustomerCount             = 100
	DefaultAvgAccountsPerCustomer    = 1.5
	DefaultAvgTransactionsPerAccount = 20
	DefaultTransferCount             = 200
	DefaultMaxDaysBack               = 90
)

// DefaultSeed seeds runs that do not choose their own seed
const DefaultSeed uint64 = 42

// MaxTransactionRows bounds the expected size of the transactions table of one run
const MaxTransactionRows = 2_000_000

// GenerateParams holds the knobs of one generation run
// Now pins the generation date so that runs are reproducible; a zero Now means wall clock
type GenerateParams struct {
	CustomerCount             int       `json:"customer_count" validate:"gte=0,lte=20000"`
	AvgAccountsPerCustomer    float64   `json:"avg_accounts_per_customer" validate:"gte=1,lte=3"`
	AvgTransactionsPerAccount int       `json:"avg_transactions_per_account" validate:"gte=0,lte=200"`
	TransferCount             int       `json:"transfer_count" validate:"gte=0,lte=50000"`
	MaxDaysBack               int       `json:"max_days_back" validate:"gte=1,lte=3650"`
	Seed                      uint64    `json:"seed"`
	Now                       time.Time `json:"now"`
}

// DefaultGenerateParams returns the parameters used when a caller supplies none
func DefaultGenerateParams() GenerateParams {
	return GenerateParams{
		CustomerCount:             DefaultCustomerCount,
		AvgAccountsPerCustomer:    DefaultAvgAccountsPerCustomer,
		AvgTransactionsPerAccount: DefaultAvgTransactionsPerAccount,
		TransferCount:             DefaultTransferCount,
		MaxDaysBack:               DefaultMaxDaysBack,
		Seed:                      DefaultSeed,
	}
}

// ExpectedTransactionRows estimates the transactions table size:
// customers x accounts per customer x transactions per account
func (p GenerateParams) ExpectedTransactionRows() float64 {
	return float64(p.CustomerCount) * p.AvgAccountsPerCustomer * float64(p.AvgTransactionsPerAccount)
}

// SinkResult records whether a sink persisted the dataset
type SinkResult struct {
	Sink  string `json:"sink"`
	Saved bool   `json:"saved"`
	Error string `json:"error,omitempty"`
}

// GenerationStats summarizes one generation run
type GenerationStats struct {
	RunID               string       `json:"run_id"`
	Seed                uint64       `json:"seed"`
	CustomerCount       int          `json:"customer_count"`
	KYCCount            int          `json:"kyc_count"`
	AccountCount        int          `json:"account_count"`
	TransactionCount    int          `json:"transaction_count"`
	TransferCount       int          `json:"transfer_count"`
	SkippedTransactions int          `json:"skipped_transactions"`
	ElapsedSeconds      float64      `json:"elapsed_seconds"`
	GeneratedAt         time.Time    `json:"generated_at"`
	Sinks               []SinkResult `json:"sinks"`
}

// Dataset is the output of one generation run: the five tables, their stats
// and the parameters that produced them
type Dataset struct {
	Params       GenerateParams
	Stats        GenerationStats
	Customers    []Customer
	KYC          []KYCRecord
	Accounts     []Account
	Transactions []Transaction
	Transfers    []Transfer
}
