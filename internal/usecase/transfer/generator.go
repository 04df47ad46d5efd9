package transfer

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/banksynth/internal/domain"
	"github.com/simaogato/banksynth/internal/usecase/sampler"
)

const (
	sameCustomerPreference = 0.7
	notesProbability       = 0.3
	lookbackDays           = 365
	sameBank               = "Same Bank"
	externalAccountDigits  = 8
)

var (
	statusChoice = sampler.NewChoice(
		sampler.Weighted[domain.TransferStatus]{Value: domain.TransferStatusCompleted, Weight: 0.85},
		sampler.Weighted[domain.TransferStatus]{Value: domain.TransferStatusPending, Weight: 0.10},
		sampler.Weighted[domain.TransferStatus]{Value: domain.TransferStatusFailed, Weight: 0.03},
		sampler.Weighted[domain.TransferStatus]{Value: domain.TransferStatusCancelled, Weight: 0.02},
	)

	traditionalBanks = []string{
		"Chase Bank", "Bank of America", "Wells Fargo", "Citibank", "Capital One",
		"TD Bank", "PNC Bank", "US Bank", "HSBC", "Barclays",
	}
	allBanks = append(append([]string(nil), traditionalBanks...), "Venmo", "PayPal", "Cash App", "Zelle")

	reasons = []string{"Regular Payment", "Bill Payment", "Investment", "Loan Repayment", "Savings", "Family Support"}
)

// Generator produces fund transfers out of active accounts
type Generator struct {
	src   *sampler.Source
	today domain.Date
}

// NewGenerator creates a transfer Generator; today anchors the transfer date window
func NewGenerator(src *sampler.Source, today domain.Date) *Generator {
	return &Generator{src: src, today: today}
}

// Generate produces count transfers between active accounts.
// Returns domain.ErrInsufficientActiveAccounts, and no transfers, when fewer than
// two Active accounts exist.
//
// Logic:
//   - Source is uniform among Active accounts; type is uniform over the four rails
//   - Internal transfers prefer (70%) another active account of the same customer,
//     falling back to any other active account; the holder is looked up by customer
//   - Other rails go to a synthesized external account at a rail-appropriate bank
//   - Amount is bounded by 80% of the source balance (capped at 5000, floored at 10)
//   - Only Completed transfers carry a settlement date
func (g *Generator) Generate(accounts []domain.Account, customers []domain.Customer, count int) ([]domain.Transfer, error) {
	active := make([]*domain.Account, 0, len(accounts))
	byCustomer := make(map[domain.CustomerID][]*domain.Account)
	for i := range accounts {
		if accounts[i].IsActive() {
			a := &accounts[i]
			active = append(active, a)
			byCustomer[a.CustomerID] = append(byCustomer[a.CustomerID], a)
		}
	}

	if len(active) < 2 {
		return nil, fmt.Errorf("failed to generate transfers from %d active accounts: %w", len(active), domain.ErrInsufficientActiveAccounts)
	}

	holders := make(map[domain.CustomerID]string, len(customers))
	for i := range customers {
		holders[customers[i].CustomerID] = customers[i].FullName()
	}

	transfers := make([]domain.Transfer, 0, count)
	for i := 0; i < count; i++ {
		transfers = append(transfers, g.generateOne(active, byCustomer, holders))
	}
	return transfers, nil
}

func (g *Generator) generateOne(active []*domain.Account, byCustomer map[domain.CustomerID][]*domain.Account, holders map[domain.CustomerID]string) domain.Transfer {
	source := sampler.OneOf(g.src, active)
	transferType := sampler.OneOf(g.src, domain.TransferTypes)

	tr := domain.Transfer{
		SourceAccountID:     source.AccountID,
		SourceAccountNumber: source.AccountNumber,
		TransferType:        transferType,
		Currency:            source.Currency,
	}

	if transferType == domain.TransferTypeInternal {
		dest := g.internalDestination(source, active, byCustomer)
		destID := dest.AccountID
		tr.DestinationAccountID = &destID
		tr.DestinationAccountNumber = dest.AccountNumber
		tr.DestinationBankName = sameBank
		tr.DestinationAccountHolder = holders[dest.CustomerID]
	} else {
		banks := allBanks
		if transferType == domain.TransferTypeWire {
			banks = traditionalBanks
		}
		tr.DestinationAccountNumber = g.src.Digits(externalAccountDigits)
		tr.DestinationBankName = sampler.OneOf(g.src, banks)
		tr.DestinationAccountHolder = g.src.Faker().Name()
	}

	from := g.today.AddDays(-lookbackDays)
	if source.OpeningDate.After(from) {
		from = source.OpeningDate
	}
	tr.TransferDate = g.src.DateBetween(from, g.today)

	tr.Amount = g.src.Money(10, AmountCap(source.CurrentBalance).InexactFloat64())
	tr.Status = statusChoice.Pick(g.src)
	tr.Fee = g.feeFor(transferType)

	if tr.Status == domain.TransferStatusCompleted {
		settled := tr.TransferDate.AddDays(g.settlementDays(transferType))
		tr.SettlementDate = &settled
	}

	tr.ReferenceNumber = "TRF" + g.src.Digits(7)
	tr.Reason = sampler.OneOf(g.src, reasons)
	if g.src.Bernoulli(notesProbability) {
		tr.Notes = "Transfer to " + tr.DestinationAccountHolder
	}
	tr.TransferID = g.src.UUID()

	return tr
}

// internalDestination picks a destination for an internal transfer.
// With 70% probability another active account of the same customer is preferred when one
// exists; otherwise, and in the remaining 30%, any other active account is chosen.
func (g *Generator) internalDestination(source *domain.Account, active []*domain.Account, byCustomer map[domain.CustomerID][]*domain.Account) *domain.Account {
	if g.src.Bernoulli(sameCustomerPreference) {
		if own := others(byCustomer[source.CustomerID], source); len(own) > 0 {
			return sampler.OneOf(g.src, own)
		}
	}
	// Redraw until the pick differs from the source; at least two active accounts exist
	for {
		if dest := sampler.OneOf(g.src, active); dest.AccountID != source.AccountID {
			return dest
		}
	}
}

func (g *Generator) feeFor(transferType domain.TransferType) decimal.Decimal {
	switch transferType {
	case domain.TransferTypeWire:
		return g.src.Money(15, 30)
	case domain.TransferTypeExternal:
		return g.src.Money(0, 5)
	default:
		return decimal.Zero
	}
}

func (g *Generator) settlementDays(transferType domain.TransferType) int {
	switch transferType {
	case domain.TransferTypeInternal:
		return g.src.IntRange(0, 1)
	case domain.TransferTypeACH:
		return g.src.IntRange(1, 3)
	default:
		return g.src.IntRange(0, 3)
	}
}

// AmountCap is the upper bound of a transfer amount: min(0.8 x balance, 5000), never below 10
func AmountCap(balance decimal.Decimal) decimal.Decimal {
	c := decimal.Min(balance.Mul(decimal.RequireFromString("0.8")), decimal.NewFromInt(5000))
	return decimal.Max(c, decimal.NewFromInt(10))
}

func others(accounts []*domain.Account, exclude *domain.Account) []*domain.Account {
	out := make([]*domain.Account, 0, len(accounts))
	for _, a := range accounts {
		if a.AccountID != exclude.AccountID {
			out = append(out, a)
		}
	}
	return out
}
