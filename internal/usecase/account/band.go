package account

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/banksynth/internal/domain"
)

// band is the [floor, income share] pair bounding an opening balance
type band struct {
	floor       int64
	incomeShare string
}

var balanceBands = map[domain.AccountType]band{
	domain.AccountTypeSavings:     {floor: 500, incomeShare: "0.2"},
	domain.AccountTypeChecking:    {floor: 100, incomeShare: "0.1"},
	domain.AccountTypeMoneyMarket: {floor: 1000, incomeShare: "0.3"},
	domain.AccountTypeCD:          {floor: 5000, incomeShare: "0.4"},
	domain.AccountTypeInvestment:  {floor: 10000, incomeShare: "0.5"},
}

// rateRange is the [min, max] annual interest rate of an account type
type rateRange struct {
	min, max float64
}

var interestRates = map[domain.AccountType]rateRange{
	domain.AccountTypeSavings:     {min: 0.01, max: 0.03},
	domain.AccountTypeChecking:    {min: 0, max: 0.01},
	domain.AccountTypeMoneyMarket: {min: 0.02, max: 0.04},
	domain.AccountTypeCD:          {min: 0.03, max: 0.06},
}

// BalanceBand returns the opening-balance range for an account type given the owner's income.
// The lower bound is a fixed floor per type; the upper bound is a share of income,
// never below the floor. Investment is the widest and highest band.
func BalanceBand(accountType domain.AccountType, income decimal.Decimal) (lo, hi decimal.Decimal) {
	b, ok := balanceBands[accountType]
	if !ok {
		b = balanceBands[domain.AccountTypeInvestment]
	}

	lo = decimal.NewFromInt(b.floor)
	hi = income.Mul(decimal.RequireFromString(b.incomeShare)).Round(2)
	if hi.LessThan(lo) {
		hi = lo
	}
	return lo, hi
}

// HasInterest reports whether the account type accrues a fixed interest rate
func HasInterest(accountType domain.AccountType) bool {
	_, ok := interestRates[accountType]
	return ok
}
