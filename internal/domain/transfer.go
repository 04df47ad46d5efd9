package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferType represents the rail a transfer moves over
type TransferType string

const (
	TransferTypeInternal TransferType = "Internal Transfer"
	TransferTypeExternal TransferType = "External Transfer"
	TransferTypeWire     TransferType = "Wire Transfer"
	TransferTypeACH      TransferType = "ACH Transfer"
)

// TransferTypes lists every transfer type in a stable order
var TransferTypes = []TransferType{
	TransferTypeInternal,
	TransferTypeExternal,
	TransferTypeWire,
	TransferTypeACH,
}

// TransferStatus represents the processing state of a transfer
type TransferStatus string

const (
	TransferStatusCompleted TransferStatus = "Completed"
	TransferStatusPending   TransferStatus = "Pending"
	TransferStatusFailed    TransferStatus = "Failed"
	TransferStatusCancelled TransferStatus = "Cancelled"
)

// Transfer represents a movement of funds out of an active account
// DestinationAccountID is only set for internal transfers; SettlementDate only when Completed
type Transfer struct {
	TransferID               uuid.UUID       `json:"transfer_id"`
	SourceAccountID          AccountID       `json:"source_account_id"`
	SourceAccountNumber      string          `json:"source_account_number"`
	DestinationAccountID     *AccountID      `json:"destination_account_id"`
	DestinationAccountNumber string          `json:"destination_account_number"`
	DestinationBankName      string          `json:"destination_bank_name"`
	DestinationAccountHolder string          `json:"destination_account_holder"`
	TransferType             TransferType    `json:"transfer_type"`
	Amount                   decimal.Decimal `json:"amount"`
	Currency                 Currency        `json:"currency"`
	TransferDate             Date            `json:"transfer_date"`
	SettlementDate           *Date           `json:"settlement_date"`
	Status                   TransferStatus  `json:"status"`
	ReferenceNumber          string          `json:"reference_number"`
	Fee                      decimal.Decimal `json:"fee"`
	Reason                   string          `json:"reason"`
	Notes                    string          `json:"notes"`
}

// Validate ensures the transfer adheres to domain rules
func (t *Transfer) Validate() error {
	if t.TransferID == uuid.Nil {
		return errors.New("transfer id must be set")
	}

	if !IsValidAccountID(t.SourceAccountID) {
		return errors.New("transfer must reference a valid source account id")
	}

	if !t.Amount.IsPositive() {
		return errors.New("transfer amount must be positive")
	}

	if t.Fee.IsNegative() {
		return errors.New("transfer fee cannot be negative")
	}

	if t.TransferType == TransferTypeInternal {
		if t.DestinationAccountID == nil {
			return errors.New("internal transfer must reference a destination account")
		}
		if *t.DestinationAccountID == t.SourceAccountID {
			return errors.New("internal transfer destination must differ from source")
		}
	} else if t.DestinationAccountID != nil {
		return errors.New("only internal transfers reference a destination account id")
	}

	if t.Status == TransferStatusCompleted {
		if t.SettlementDate == nil || t.SettlementDate.Before(t.TransferDate) {
			return errors.New("completed transfer must settle on or after its transfer date")
		}
	} else if t.SettlementDate != nil {
		return errors.New("only completed transfers carry a settlement date")
	}

	return nil
}
