package export

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/simaogato/banksynth/internal/domain"
)

// TableName identifies one of the five dataset tables
type TableName string

const (
	TableCustomers    TableName = "customers"
	TableKYC          TableName = "kyc"
	TableAccounts     TableName = "accounts"
	TableTransactions TableName = "transactions"
	TableTransfers    TableName = "transfers"
)

// TableNames lists the tables in pipeline order
var TableNames = []TableName{TableCustomers, TableKYC, TableAccounts, TableTransactions, TableTransfers}

// Table is a flat, exportable view of one dataset table.
// Header names equal the JSON keys of Records.
type Table struct {
	Name     TableName
	FileBase string
	Header   []string
	Rows     [][]string
	Records  any
}

// Len returns the number of rows
func (t Table) Len() int {
	return len(t.Rows)
}

// Preview returns up to limit rows as header-keyed maps; limit <= 0 means all rows
func (t Table) Preview(limit int) []map[string]string {
	n := len(t.Rows)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]map[string]string, 0, n)
	for _, row := range t.Rows[:n] {
		m := make(map[string]string, len(t.Header))
		for i, col := range t.Header {
			m[col] = row[i]
		}
		out = append(out, m)
	}
	return out
}

// Tables returns the five tables of a dataset in pipeline order
func Tables(ds *domain.Dataset) []Table {
	return []Table{
		customerTable(ds.Customers),
		kycTable(ds.KYC),
		accountTable(ds.Accounts),
		transactionTable(ds.Transactions),
		transferTable(ds.Transfers),
	}
}

// TableByName returns a single table of a dataset
// Returns domain.ErrUnknownTable if name is not one of TableNames
func TableByName(ds *domain.Dataset, name string) (Table, error) {
	for _, t := range Tables(ds) {
		if string(t.Name) == name {
			return t, nil
		}
	}
	return Table{}, fmt.Errorf("%w: %q", domain.ErrUnknownTable, name)
}

func customerTable(rows []domain.Customer) Table {
	t := Table{
		Name:     TableCustomers,
		FileBase: "customer_data",
		Header: []string{
			"customer_id", "first_name", "last_name", "gender", "date_of_birth", "age", "email",
			"phone_number", "nationality", "address_line1", "city", "state", "postal_code", "country",
			"occupation", "employer", "annual_income", "registration_date", "credit_score",
		},
		Rows:    make([][]string, 0, len(rows)),
		Records: nonNil(rows),
	}
	for _, c := range rows {
		t.Rows = append(t.Rows, []string{
			string(c.CustomerID), c.FirstName, c.LastName, string(c.Gender), c.DateOfBirth.String(),
			strconv.Itoa(c.Age), c.Email, c.PhoneNumber, c.Nationality, c.AddressLine1, c.City, c.State,
			c.PostalCode, c.Country, c.Occupation, c.Employer, c.AnnualIncome.String(),
			c.RegistrationDate.String(), strconv.Itoa(c.CreditScore),
		})
	}
	return t
}

func kycTable(rows []domain.KYCRecord) Table {
	t := Table{
		Name:     TableKYC,
		FileBase: "kyc_data",
		Header: []string{
			"customer_id", "document_type", "document_number", "issuing_country", "issue_date",
			"expiry_date", "verification_status", "verification_date", "verification_method",
			"risk_score", "risk_category", "pep_status", "sanctions_match", "notes",
		},
		Rows:    make([][]string, 0, len(rows)),
		Records: nonNil(rows),
	}
	for _, k := range rows {
		t.Rows = append(t.Rows, []string{
			string(k.CustomerID), string(k.DocumentType), k.DocumentNumber, k.IssuingCountry,
			k.IssueDate.String(), k.ExpiryDate.String(), string(k.VerificationStatus),
			k.VerificationDate.String(), string(k.VerificationMethod), k.RiskScore.String(),
			string(k.RiskCategory), strconv.FormatBool(k.PEPStatus), strconv.FormatBool(k.SanctionsMatch),
			k.Notes,
		})
	}
	return t
}

func accountTable(rows []domain.Account) Table {
	t := Table{
		Name:     TableAccounts,
		FileBase: "account_data",
		Header: []string{
			"account_id", "customer_id", "account_type", "account_number", "routing_number", "currency",
			"opening_balance", "current_balance", "available_balance", "interest_rate", "opening_date",
			"closing_date", "status", "overdraft_limit", "last_activity_date",
		},
		Rows:    make([][]string, 0, len(rows)),
		Records: nonNil(rows),
	}
	for _, a := range rows {
		t.Rows = append(t.Rows, []string{
			string(a.AccountID), string(a.CustomerID), string(a.AccountType), a.AccountNumber,
			a.RoutingNumber, string(a.Currency), a.OpeningBalance.String(), a.CurrentBalance.String(),
			a.AvailableBalance.String(), optionalDecimal(a.InterestRate), a.OpeningDate.String(),
			optionalDate(a.ClosingDate), string(a.Status), a.OverdraftLimit.String(),
			optionalDate(a.LastActivityDate),
		})
	}
	return t
}

func transactionTable(rows []domain.Transaction) Table {
	t := Table{
		Name:     TableTransactions,
		FileBase: "transaction_data",
		Header: []string{
			"transaction_id", "account_id", "transaction_date", "transaction_type", "amount",
			"direction", "running_balance", "description", "category", "channel", "status",
			"reference_number", "counterparty_name", "counterparty_account",
		},
		Rows:    make([][]string, 0, len(rows)),
		Records: nonNil(rows),
	}
	for _, tx := range rows {
		t.Rows = append(t.Rows, []string{
			tx.TransactionID.String(), string(tx.AccountID), tx.TransactionDate.String(),
			string(tx.TransactionType), tx.Amount.String(), string(tx.Direction),
			tx.RunningBalance.String(), tx.Description, optionalString(tx.Category), tx.Channel,
			string(tx.Status), tx.ReferenceNumber, optionalString(tx.CounterpartyName),
			optionalString(tx.CounterpartyAccount),
		})
	}
	return t
}

func transferTable(rows []domain.Transfer) Table {
	t := Table{
		Name:     TableTransfers,
		FileBase: "transfer_data",
		Header: []string{
			"transfer_id", "source_account_id", "source_account_number", "destination_account_id",
			"destination_account_number", "destination_bank_name", "destination_account_holder",
			"transfer_type", "amount", "currency", "transfer_date", "settlement_date", "status",
			"reference_number", "fee", "reason", "notes",
		},
		Rows:    make([][]string, 0, len(rows)),
		Records: nonNil(rows),
	}
	for _, tr := range rows {
		dest := ""
		if tr.DestinationAccountID != nil {
			dest = string(*tr.DestinationAccountID)
		}
		t.Rows = append(t.Rows, []string{
			tr.TransferID.String(), string(tr.SourceAccountID), tr.SourceAccountNumber, dest,
			tr.DestinationAccountNumber, tr.DestinationBankName, tr.DestinationAccountHolder,
			string(tr.TransferType), tr.Amount.String(), string(tr.Currency), tr.TransferDate.String(),
			optionalDate(tr.SettlementDate), string(tr.Status), tr.ReferenceNumber, tr.Fee.String(),
			tr.Reason, tr.Notes,
		})
	}
	return t
}

// nonNil keeps empty tables encoding as [] rather than null
func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}

func optionalString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalDate(d *domain.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func optionalDecimal(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
