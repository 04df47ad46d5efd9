package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validAccount() Account {
	rate := decimal.RequireFromString("0.0215")
	return Account{
		AccountID:        "ACCT12345678",
		CustomerID:       "CUST1234567",
		AccountType:      AccountTypeSavings,
		AccountNumber:    "1234567890",
		RoutingNumber:    "123456789",
		Currency:         "USD",
		OpeningBalance:   decimal.RequireFromString("2500.50"),
		CurrentBalance:   decimal.RequireFromString("2500.50"),
		AvailableBalance: decimal.RequireFromString("2375.48"),
		InterestRate:     &rate,
		OpeningDate:      NewDate(2023, 1, 15),
		Status:           AccountStatusActive,
		OverdraftLimit:   decimal.Zero,
	}
}

func TestAccount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(a *Account)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "Active savings account should pass",
			mutate:  func(a *Account) {},
			wantErr: false,
		},
		{
			name: "Closed account with zero balance and later closing date should pass",
			mutate: func(a *Account) {
				closing := a.OpeningDate.AddDays(90)
				a.Status = AccountStatusClosed
				a.CurrentBalance = decimal.Zero
				a.AvailableBalance = decimal.Zero
				a.ClosingDate = &closing
			},
			wantErr: false,
		},
		{
			name: "Closed account with balance should fail",
			mutate: func(a *Account) {
				closing := a.OpeningDate.AddDays(90)
				a.Status = AccountStatusClosed
				a.ClosingDate = &closing
			},
			wantErr: true,
			errMsg:  "closed account must have zero current balance",
		},
		{
			name: "Closed account without closing date should fail",
			mutate: func(a *Account) {
				a.Status = AccountStatusClosed
				a.CurrentBalance = decimal.Zero
			},
			wantErr: true,
			errMsg:  "closing date after its opening date",
		},
		{
			name: "Closing date on non-closed account should fail",
			mutate: func(a *Account) {
				closing := a.OpeningDate.AddDays(30)
				a.ClosingDate = &closing
			},
			wantErr: true,
			errMsg:  "only closed accounts may carry a closing date",
		},
		{
			name:    "Investment account with interest rate should fail",
			mutate:  func(a *Account) { a.AccountType = AccountTypeInvestment },
			wantErr: true,
			errMsg:  "investment account must not carry an interest rate",
		},
		{
			name:    "Diverging current balance should fail",
			mutate:  func(a *Account) { a.CurrentBalance = decimal.NewFromInt(1) },
			wantErr: true,
			errMsg:  "current balance must equal opening balance",
		},
		{
			name:    "Malformed account id should fail",
			mutate:  func(a *Account) { a.AccountID = "ACCT1234" },
			wantErr: true,
			errMsg:  "account id must be ACCT followed by 8 digits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAccount()
			tt.mutate(&a)
			err := a.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
