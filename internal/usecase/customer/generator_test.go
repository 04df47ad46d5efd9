package customer

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/banksynth/internal/domain"
	"github.com/simaogato/banksynth/internal/usecase/identity"
	"github.com/simaogato/banksynth/internal/usecase/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = domain.NewDate(2025, time.June, 30)

func newGenerator(seed uint64) *Generator {
	src := sampler.New(seed)
	return NewGenerator(src, identity.NewPool(src), today)
}

func TestGenerator_Generate(t *testing.T) {
	customers := newGenerator(42).Generate(500)
	require.Len(t, customers, 500)

	seen := make(map[domain.CustomerID]bool)
	for _, c := range customers {
		require.NoError(t, c.Validate(), c.CustomerID)
		assert.False(t, seen[c.CustomerID], "duplicate id %s", c.CustomerID)
		seen[c.CustomerID] = true

		assert.Equal(t, today.Year()-c.DateOfBirth.Year(), c.Age)
		assert.False(t, c.DateOfBirth.Before(earliestBirth))
		assert.False(t, c.DateOfBirth.After(latestBirth))
		assert.False(t, c.RegistrationDate.Before(earliestRegistration))
		assert.False(t, c.RegistrationDate.After(latestRegistration))

		assert.True(t, c.AnnualIncome.GreaterThanOrEqual(decimal.NewFromInt(minIncome)))
		assert.True(t, c.AnnualIncome.LessThanOrEqual(decimal.NewFromInt(maxIncome)))

		assert.True(t, strings.HasPrefix(c.Email, strings.ToLower(c.FirstName)+"."))
		assert.Equal(t, strings.ToLower(c.Email), c.Email)
		assert.NotEmpty(t, c.PhoneNumber)
		assert.NotEmpty(t, c.Nationality)
	}
}

func TestGenerator_FirstNameFollowsGender(t *testing.T) {
	for _, c := range newGenerator(7).Generate(200) {
		pool := femaleFirstNames
		if c.Gender == domain.GenderMale {
			pool = maleFirstNames
		}
		assert.Contains(t, pool, c.FirstName)
	}
}

func TestGenerator_ZeroCount(t *testing.T) {
	customers := newGenerator(1).Generate(0)
	assert.NotNil(t, customers)
	assert.Empty(t, customers)
}

func TestGenerator_Deterministic(t *testing.T) {
	assert.Equal(t, newGenerator(2024).Generate(50), newGenerator(2024).Generate(50))
}

func TestEmailAddress(t *testing.T) {
	assert.Equal(t, "mary.vanburen@gmail.com", emailAddress("Mary", "Van Buren", "gmail.com"))
}
