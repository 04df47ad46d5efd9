package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/banksynth/internal/domain"
	"github.com/simaogato/banksynth/internal/usecase/sampler"
)

const (
	dormantMeanTransactions = 2
	frozenMeanTransactions  = 5
)

var (
	typeChoice = sampler.NewChoice(
		sampler.Weighted[domain.TransactionType]{Value: domain.TransactionTypeDeposit, Weight: 0.30},
		sampler.Weighted[domain.TransactionType]{Value: domain.TransactionTypeWithdrawal, Weight: 0.25},
		sampler.Weighted[domain.TransactionType]{Value: domain.TransactionTypeTransfer, Weight: 0.20},
		sampler.Weighted[domain.TransactionType]{Value: domain.TransactionTypePayment, Weight: 0.20},
		sampler.Weighted[domain.TransactionType]{Value: domain.TransactionTypeFee, Weight: 0.03},
		sampler.Weighted[domain.TransactionType]{Value: domain.TransactionTypeInterest, Weight: 0.02},
	)

	statusChoice = sampler.NewChoice(
		sampler.Weighted[domain.TransactionStatus]{Value: domain.TransactionStatusCompleted, Weight: 0.95},
		sampler.Weighted[domain.TransactionStatus]{Value: domain.TransactionStatusPending, Weight: 0.03},
		sampler.Weighted[domain.TransactionStatus]{Value: domain.TransactionStatusFailed, Weight: 0.01},
		sampler.Weighted[domain.TransactionStatus]{Value: domain.TransactionStatusReversed, Weight: 0.01},
	)

	directions = []domain.Direction{domain.DirectionCredit, domain.DirectionDebit}

	defaultInterestRate = decimal.RequireFromString("0.0025")
	monthsPerYear       = decimal.NewFromInt(12)
)

// Outcome reports what a single ledger iteration produced
type Outcome int

const (
	// OutcomeProduced means the iteration appended a transaction
	OutcomeProduced Outcome = iota
	// OutcomeSkipped means the account had no valid date window; nothing was appended
	OutcomeSkipped
)

// Result is the output of a ledger simulation
type Result struct {
	Transactions []domain.Transaction
	Produced     int
	Skipped      int
}

// Simulator walks each account's ledger, producing dated transactions
// against a running-balance accumulator
type Simulator struct {
	src   *sampler.Source
	today domain.Date
}

// NewSimulator creates a ledger Simulator; today is the upper end of every date window
func NewSimulator(src *sampler.Source, today domain.Date) *Simulator {
	return &Simulator{src: src, today: today}
}

// Generate simulates the transaction history of every account.
//
// Logic:
//   - Closed accounts are skipped entirely
//   - Dormant accounts average 2 transactions, Frozen 5, others avgTransactionsPerAccount;
//     the actual count is Poisson-sampled from that mean
//   - Each iteration either produces a transaction or is skipped when the account has
//     no valid date window (opened today or later); skipped iterations are not retried
//   - Transactions are appended in generation order, not sorted by date
func (s *Simulator) Generate(accounts []domain.Account, avgTransactionsPerAccount int, maxDaysBack int) Result {
	result := Result{Transactions: make([]domain.Transaction, 0)}

	for i := range accounts {
		acct := &accounts[i]
		if acct.Status == domain.AccountStatusClosed {
			continue
		}

		n := s.src.Poisson(meanTransactions(acct.Status, avgTransactionsPerAccount))
		running := acct.OpeningBalance

		for j := 0; j < n; j++ {
			tx, outcome := s.step(acct, running, maxDaysBack)
			if outcome == OutcomeSkipped {
				result.Skipped++
				continue
			}

			result.Transactions = append(result.Transactions, tx)
			result.Produced++
			running = tx.RunningBalance
		}
	}

	return result
}

// step produces the next transaction of an account given the live running balance.
//
// The stored running balance is the post-transaction balance only when the status is
// Completed; any other status stores the unchanged pre-transaction balance, so callers
// can always carry tx.RunningBalance forward as the accumulator.
func (s *Simulator) step(acct *domain.Account, running decimal.Decimal, maxDaysBack int) (domain.Transaction, Outcome) {
	window := min(acct.OpeningDate.DaysUntil(s.today), maxDaysBack)
	if window <= 0 {
		return domain.Transaction{}, OutcomeSkipped
	}

	date := s.today.AddDays(-s.src.IntRange(0, window))
	txType := typeChoice.Pick(s.src)
	amount := s.amountFor(txType, running, acct.InterestRate)
	direction := s.directionFor(txType)
	status := statusChoice.Pick(s.src)

	tx := domain.Transaction{
		AccountID:       acct.AccountID,
		TransactionDate: date,
		TransactionType: txType,
		Amount:          amount,
		Direction:       direction,
		RunningBalance:  running,
		Status:          status,
	}
	if tx.IsCompleted() {
		tx.RunningBalance = running.Add(tx.SignedAmount()).Round(2)
	}

	d := describe(s.src, txType)
	tx.Description = d.description
	tx.Category = d.category
	tx.CounterpartyName = d.counterpartyName
	tx.CounterpartyAccount = d.counterpartyAccount
	tx.Channel = sampler.OneOf(s.src, channels)
	tx.ReferenceNumber = "REF" + s.src.Digits(7)
	tx.TransactionID = s.src.UUID()

	return tx, OutcomeProduced
}

// amountFor samples the absolute amount of a transaction.
// Withdrawal, Transfer and Payment caps are fractions of the live running balance,
// floored at the type's minimum so the range never degenerates.
func (s *Simulator) amountFor(txType domain.TransactionType, running decimal.Decimal, rate *decimal.Decimal) decimal.Decimal {
	bal := running.InexactFloat64()

	switch txType {
	case domain.TransactionTypeDeposit:
		return s.src.Money(10, 5000)
	case domain.TransactionTypeWithdrawal:
		return s.src.Money(10, max(min(bal*0.5, 1000), 10))
	case domain.TransactionTypeTransfer:
		return s.src.Money(50, max(min(bal*0.7, 3000), 50))
	case domain.TransactionTypePayment:
		return s.src.Money(10, max(min(bal*0.4, 2000), 10))
	case domain.TransactionTypeFee:
		return s.src.Money(1, 50)
	default:
		return InterestAmount(running, rate)
	}
}

func (s *Simulator) directionFor(txType domain.TransactionType) domain.Direction {
	switch txType {
	case domain.TransactionTypeDeposit, domain.TransactionTypeInterest:
		return domain.DirectionCredit
	case domain.TransactionTypeTransfer:
		return sampler.OneOf(s.src, directions)
	default:
		return domain.DirectionDebit
	}
}

// InterestAmount is one month of interest on a positive balance:
// balance x rate / 12, falling back to 0.0025 when the rate is absent or zero.
// Non-positive balances accrue nothing.
func InterestAmount(balance decimal.Decimal, rate *decimal.Decimal) decimal.Decimal {
	if !balance.IsPositive() {
		return decimal.Zero
	}

	r := defaultInterestRate
	if rate != nil && !rate.IsZero() {
		r = *rate
	}
	return balance.Mul(r).Div(monthsPerYear).Round(2)
}

func meanTransactions(status domain.AccountStatus, avg int) float64 {
	switch status {
	case domain.AccountStatusDormant:
		return dormantMeanTransactions
	case domain.AccountStatusFrozen:
		return frozenMeanTransactions
	default:
		return float64(avg)
	}
}
