package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of ledger movement
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "Deposit"
	TransactionTypeWithdrawal TransactionType = "Withdrawal"
	TransactionTypeTransfer   TransactionType = "Transfer"
	TransactionTypePayment    TransactionType = "Payment"
	TransactionTypeFee        TransactionType = "Fee"
	TransactionTypeInterest   TransactionType = "Interest"
)

// Direction represents whether a transaction adds to or removes from the balance
type Direction string

const (
	DirectionCredit Direction = "Credit"
	DirectionDebit  Direction = "Debit"
)

// TransactionStatus represents the settlement state of a transaction
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "Completed"
	TransactionStatusPending   TransactionStatus = "Pending"
	TransactionStatusFailed    TransactionStatus = "Failed"
	TransactionStatusReversed  TransactionStatus = "Reversed"
)

// Transaction represents a single dated movement on an account
// Amount is always the absolute value; Direction carries the sign
type Transaction struct {
	TransactionID       uuid.UUID         `json:"transaction_id"`
	AccountID           AccountID         `json:"account_id"`
	TransactionDate     Date              `json:"transaction_date"`
	TransactionType     TransactionType   `json:"transaction_type"`
	Amount              decimal.Decimal   `json:"amount"`
	Direction           Direction         `json:"direction"`
	RunningBalance      decimal.Decimal   `json:"running_balance"`
	Description         string            `json:"description"`
	Category            *string           `json:"category"`
	Channel             string            `json:"channel"`
	Status              TransactionStatus `json:"status"`
	ReferenceNumber     string            `json:"reference_number"`
	CounterpartyName    *string           `json:"counterparty_name"`
	CounterpartyAccount *string           `json:"counterparty_account"`
}

// SignedAmount returns the amount with the direction applied
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Direction == DirectionDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}

// IsCompleted reports whether the transaction settled
func (t *Transaction) IsCompleted() bool {
	return t.Status == TransactionStatusCompleted
}

// Validate ensures the transaction adheres to domain rules
func (t *Transaction) Validate() error {
	if t.TransactionID == uuid.Nil {
		return errors.New("transaction id must be set")
	}

	if !IsValidAccountID(t.AccountID) {
		return errors.New("transaction must reference a valid account id")
	}

	if t.Amount.IsNegative() {
		return errors.New("transaction amount must be stored as an absolute value")
	}

	if t.Direction != DirectionCredit && t.Direction != DirectionDebit {
		return errors.New("transaction direction must be Credit or Debit")
	}

	if t.Category != nil && t.TransactionType != TransactionTypePayment {
		return errors.New("only payments carry a category")
	}

	if t.CounterpartyAccount != nil && t.TransactionType != TransactionTypeTransfer {
		return errors.New("only transfers carry a counterparty account")
	}

	return nil
}
