package account

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/banksynth/internal/domain"
	"github.com/simaogato/banksynth/internal/usecase/identity"
	"github.com/simaogato/banksynth/internal/usecase/sampler"
)

const (
	minAccountsPerCustomer = 1
	maxAccountsPerCustomer = 3

	maxOpeningDelayDays = 30
	minLifetimeDays     = 30
	maxLifetimeDays     = 365

	accountNumberDigits = 10
	routingNumberDigits = 9
)

var (
	statusChoice = sampler.NewChoice(
		sampler.Weighted[domain.AccountStatus]{Value: domain.AccountStatusActive, Weight: 0.85},
		sampler.Weighted[domain.AccountStatus]{Value: domain.AccountStatusDormant, Weight: 0.05},
		sampler.Weighted[domain.AccountStatus]{Value: domain.AccountStatusClosed, Weight: 0.05},
		sampler.Weighted[domain.AccountStatus]{Value: domain.AccountStatusFrozen, Weight: 0.02},
		sampler.Weighted[domain.AccountStatus]{Value: domain.AccountStatusPending, Weight: 0.03},
	)

	availableShare = decimal.RequireFromString("0.95")
	overdraftShare = decimal.RequireFromString("0.02")
)

// Generator produces the account table
type Generator struct {
	src   *sampler.Source
	ids   *identity.Pool
	today domain.Date
}

// NewGenerator creates an account Generator; today bounds the last activity date
func NewGenerator(src *sampler.Source, ids *identity.Pool, today domain.Date) *Generator {
	return &Generator{src: src, ids: ids, today: today}
}

// Generate produces between 1 and 3 accounts for each customer.
//
// Logic:
//   - Account count = clamp(Poisson(avg - 1) + 1, 1, 3), the Poisson modelling extra accounts
//   - Type is uniform; opening balance is uniform within BalanceBand(type, income)
//   - Status is weighted towards Active
//   - Closed accounts get a closing date 30-365 days after opening and a zero current balance
//   - Available balance is 95% of current for Active accounts, else 0
func (g *Generator) Generate(customers []domain.Customer, avgAccountsPerCustomer float64) []domain.Account {
	accounts := make([]domain.Account, 0, len(customers))
	for i := range customers {
		c := &customers[i]
		n := g.src.Poisson(avgAccountsPerCustomer-1) + 1
		n = min(max(n, minAccountsPerCustomer), maxAccountsPerCustomer)
		for j := 0; j < n; j++ {
			accounts = append(accounts, g.generateOne(c))
		}
	}
	return accounts
}

func (g *Generator) generateOne(c *domain.Customer) domain.Account {
	accountType := sampler.OneOf(g.src, domain.AccountTypes)

	lo, hi := BalanceBand(accountType, c.AnnualIncome)
	opening := g.src.Money(lo.InexactFloat64(), hi.InexactFloat64())
	openingDate := c.RegistrationDate.AddDays(g.src.IntRange(0, maxOpeningDelayDays))

	var rate *decimal.Decimal
	if r, ok := interestRates[accountType]; ok {
		v := g.src.Rate(r.min, r.max)
		rate = &v
	}

	status := statusChoice.Pick(g.src)

	acct := domain.Account{
		AccountID:        g.ids.NextAccountID(),
		CustomerID:       c.CustomerID,
		AccountType:      accountType,
		AccountNumber:    g.src.Digits(accountNumberDigits),
		RoutingNumber:    g.src.Digits(routingNumberDigits),
		Currency:         sampler.OneOf(g.src, domain.Currencies),
		OpeningBalance:   opening,
		CurrentBalance:   opening,
		AvailableBalance: decimal.Zero,
		InterestRate:     rate,
		OpeningDate:      openingDate,
		Status:           status,
		OverdraftLimit:   decimal.Zero,
	}

	switch status {
	case domain.AccountStatusClosed:
		closing := openingDate.AddDays(g.src.IntRange(minLifetimeDays, maxLifetimeDays))
		acct.ClosingDate = &closing
		acct.CurrentBalance = decimal.Zero
	case domain.AccountStatusActive:
		acct.AvailableBalance = acct.CurrentBalance.Mul(availableShare).Round(2)
		lastActivity := g.src.DateBetween(openingDate, g.today)
		acct.LastActivityDate = &lastActivity
	}

	if accountType == domain.AccountTypeChecking {
		acct.OverdraftLimit = c.AnnualIncome.Mul(overdraftShare).Round(2)
	}

	return acct
}
