package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validCustomer() Customer {
	return Customer{
		CustomerID:       "CUST1234567",
		FirstName:        "Ada",
		LastName:         "Lovelace",
		Gender:           GenderFemale,
		DateOfBirth:      NewDate(1985, 12, 10),
		Age:              40,
		Email:            "ada.lovelace@gmail.com",
		AnnualIncome:     decimal.NewFromInt(85000),
		RegistrationDate: NewDate(2021, 3, 4),
		CreditScore:      720,
	}
}

func TestCustomer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Customer)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "Well-formed customer should pass",
			mutate:  func(c *Customer) {},
			wantErr: false,
		},
		{
			name:    "Customer id with wrong prefix should fail",
			mutate:  func(c *Customer) { c.CustomerID = "CUSX1234567" },
			wantErr: true,
			errMsg:  "customer id must be CUST followed by 7 digits",
		},
		{
			name:    "Customer id with too few digits should fail",
			mutate:  func(c *Customer) { c.CustomerID = "CUST123456" },
			wantErr: true,
			errMsg:  "customer id must be CUST followed by 7 digits",
		},
		{
			name:    "Unknown gender should fail",
			mutate:  func(c *Customer) { c.Gender = "X" },
			wantErr: true,
			errMsg:  "customer gender must be M or F",
		},
		{
			name:    "Missing registration date should fail",
			mutate:  func(c *Customer) { c.RegistrationDate = Date{} },
			wantErr: true,
			errMsg:  "customer dates must be set",
		},
		{
			name:    "Credit score below 300 should fail",
			mutate:  func(c *Customer) { c.CreditScore = 299 },
			wantErr: true,
			errMsg:  "credit score must be between 300 and 850",
		},
		{
			name:    "Credit score above 850 should fail",
			mutate:  func(c *Customer) { c.CreditScore = 851 },
			wantErr: true,
			errMsg:  "credit score must be between 300 and 850",
		},
		{
			name:    "Negative income should fail",
			mutate:  func(c *Customer) { c.AnnualIncome = decimal.NewFromInt(-1) },
			wantErr: true,
			errMsg:  "annual income cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCustomer()
			tt.mutate(&c)
			err := c.Validate()
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

func TestCustomer_FullName(t *testing.T) {
	c := validCustomer()
	assert.Equal(t, "Ada Lovelace", c.FullName())
}
