package ledger

import (
	"strings"
	"testing"

	"github.com/simaogato/banksynth/internal/domain"
	"github.com/simaogato/banksynth/internal/usecase/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe_OptionalColumnsFollowType(t *testing.T) {
	src := sampler.New(21)

	types := []domain.TransactionType{
		domain.TransactionTypeDeposit,
		domain.TransactionTypeWithdrawal,
		domain.TransactionTypeTransfer,
		domain.TransactionTypePayment,
		domain.TransactionTypeFee,
		domain.TransactionTypeInterest,
	}

	for _, txType := range types {
		t.Run(string(txType), func(t *testing.T) {
			for i := 0; i < 100; i++ {
				d := describe(src, txType)
				assert.NotEmpty(t, d.description)
				assert.NotContains(t, d.description, "%")

				assert.Equal(t, txType == domain.TransactionTypePayment, d.category != nil)
				assert.Equal(t, txType == domain.TransactionTypeTransfer, d.counterpartyAccount != nil)
				hasCounterparty := txType == domain.TransactionTypeTransfer || txType == domain.TransactionTypePayment
				assert.Equal(t, hasCounterparty, d.counterpartyName != nil)

				if d.counterpartyAccount != nil {
					assert.True(t, strings.HasPrefix(*d.counterpartyAccount, "ACCT"))
					assert.Len(t, *d.counterpartyAccount, 11)
				}
			}
		})
	}
}

func TestDescribe_PaymentDescriptionMatchesCategory(t *testing.T) {
	src := sampler.New(4)
	for i := 0; i < 200; i++ {
		d := describe(src, domain.TransactionTypePayment)
		require.NotNil(t, d.category)
		if *d.category == "Shopping" {
			continue
		}
		assert.Contains(t, paymentDescriptions[*d.category], d.description)
	}
}
