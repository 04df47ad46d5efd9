package domain

import "errors"

var (
	// ErrInsufficientActiveAccounts is returned when fewer than two active accounts exist to transfer between
	ErrInsufficientActiveAccounts = errors.New("at least 2 active accounts are required to generate transfers")

	// ErrInvalidParams is returned when generation parameters fail validation
	ErrInvalidParams = errors.New("invalid generation parameters")

	// ErrDatasetNotFound is returned when a run id does not match a stored dataset
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrInvalidRecord is returned when a generated row breaks a domain rule
	ErrInvalidRecord = errors.New("generated record violates domain rules")

	// ErrUnknownTable is returned when a table name is not one of the five dataset tables
	ErrUnknownTable = errors.New("unknown table")

	// ErrUnsupportedFormat is returned when an export format is neither csv nor json
	ErrUnsupportedFormat = errors.New("unsupported export format")
)
