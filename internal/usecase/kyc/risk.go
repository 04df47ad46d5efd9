package kyc

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/banksynth/internal/domain"
)

var (
	ageRiskWeight    = decimal.RequireFromString("0.1")
	incomeRiskWeight = decimal.RequireFromString("0.15")
	highIncome       = decimal.NewFromInt(200000)
	maxRisk          = decimal.NewFromInt(1)

	mediumRiskFloor = decimal.RequireFromString("0.3")
	highRiskFloor   = decimal.RequireFromString("0.7")
)

// RiskScore derives a KYC risk score from already-known customer fields.
//
// Logic:
//   - Start at 0
//   - Add 0.1 if the customer is younger than 25 or older than 70
//   - Add 0.15 if annual income exceeds 200000
//   - Add the noise term (sampled from U(0, 0.5) by the generator)
//   - Cap at 1.0 and round to 2 places
func RiskScore(age int, income decimal.Decimal, noise float64) decimal.Decimal {
	score := decimal.NewFromFloat(noise)
	if age < 25 || age > 70 {
		score = score.Add(ageRiskWeight)
	}
	if income.GreaterThan(highIncome) {
		score = score.Add(incomeRiskWeight)
	}
	return decimal.Min(score, maxRisk).Round(2)
}

// RiskCategoryFor buckets a risk score: below 0.3 Low, below 0.7 Medium, else High
func RiskCategoryFor(score decimal.Decimal) domain.RiskCategory {
	switch {
	case score.LessThan(mediumRiskFloor):
		return domain.RiskCategoryLow
	case score.LessThan(highRiskFloor):
		return domain.RiskCategoryMedium
	default:
		return domain.RiskCategoryHigh
	}
}
