package domain

import (
	"errors"
	"regexp"

	"github.com/shopspring/decimal"
)

// AccountID identifies an account: "ACCT" followed by 8 digits
type AccountID string

// AccountType represents the product an account is opened under
type AccountType string

const (
	AccountTypeSavings     AccountType = "Savings"
	AccountTypeChecking    AccountType = "Checking"
	AccountTypeMoneyMarket AccountType = "Money Market"
	AccountTypeCD          AccountType = "Certificate of Deposit"
	AccountTypeInvestment  AccountType = "Investment"
)

// AccountTypes lists every account type in a stable order
var AccountTypes = []AccountType{
	AccountTypeSavings,
	AccountTypeChecking,
	AccountTypeMoneyMarket,
	AccountTypeCD,
	AccountTypeInvestment,
}

// AccountStatus represents the lifecycle state of an account
type AccountStatus string

const (
	AccountStatusActive  AccountStatus = "Active"
	AccountStatusDormant AccountStatus = "Dormant"
	AccountStatusClosed  AccountStatus = "Closed"
	AccountStatusFrozen  AccountStatus = "Frozen"
	AccountStatusPending AccountStatus = "Pending"
)

// Currency is an ISO 4217 code
type Currency string

// Currencies lists the currencies accounts may be denominated in
var Currencies = []Currency{"USD", "EUR", "GBP", "JPY", "CAD", "AUD"}

var accountIDPattern = regexp.MustCompile(`^ACCT\d{8}$`)

// Account represents a customer's bank account
// InterestRate is nil for Investment accounts; ClosingDate only for Closed; LastActivityDate only for Active
type Account struct {
	AccountID        AccountID        `json:"account_id"`
	CustomerID       CustomerID       `json:"customer_id"`
	AccountType      AccountType      `json:"account_type"`
	AccountNumber    string           `json:"account_number"`
	RoutingNumber    string           `json:"routing_number"`
	Currency         Currency         `json:"currency"`
	OpeningBalance   decimal.Decimal  `json:"opening_balance"`
	CurrentBalance   decimal.Decimal  `json:"current_balance"`
	AvailableBalance decimal.Decimal  `json:"available_balance"`
	InterestRate     *decimal.Decimal `json:"interest_rate"`
	OpeningDate      Date             `json:"opening_date"`
	ClosingDate      *Date            `json:"closing_date"`
	Status           AccountStatus    `json:"status"`
	OverdraftLimit   decimal.Decimal  `json:"overdraft_limit"`
	LastActivityDate *Date            `json:"last_activity_date"`
}

// IsActive reports whether the account is in the Active status
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// IsValidAccountID reports whether id matches the ACCT + 8 digits format
func IsValidAccountID(id AccountID) bool {
	return accountIDPattern.MatchString(string(id))
}

// Validate ensures the account adheres to domain rules
// Closed accounts must carry a zero balance and a closing date after the opening date
func (a *Account) Validate() error {
	if !IsValidAccountID(a.AccountID) {
		return errors.New("account id must be ACCT followed by 8 digits")
	}

	if !IsValidCustomerID(a.CustomerID) {
		return errors.New("account must reference a valid customer id")
	}

	if a.OpeningBalance.IsNegative() {
		return errors.New("opening balance cannot be negative")
	}

	if a.AccountType == AccountTypeInvestment && a.InterestRate != nil {
		return errors.New("investment account must not carry an interest rate")
	}

	if a.Status == AccountStatusClosed {
		if !a.CurrentBalance.IsZero() {
			return errors.New("closed account must have zero current balance")
		}
		if a.ClosingDate == nil || !a.ClosingDate.After(a.OpeningDate) {
			return errors.New("closed account must have a closing date after its opening date")
		}
		return nil
	}

	if a.ClosingDate != nil {
		return errors.New("only closed accounts may carry a closing date")
	}

	if !a.CurrentBalance.Equal(a.OpeningBalance) {
		return errors.New("current balance must equal opening balance")
	}

	return nil
}
