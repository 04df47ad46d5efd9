package filesystem

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/banksynth/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() *domain.Dataset {
	return &domain.Dataset{
		Customers: []domain.Customer{{
			CustomerID:       "CUST1234567",
			FirstName:        "Ada",
			LastName:         "Lovelace",
			Gender:           domain.GenderFemale,
			DateOfBirth:      domain.NewDate(1990, 1, 2),
			Age:              35,
			AnnualIncome:     decimal.NewFromInt(90000),
			RegistrationDate: domain.NewDate(2021, 5, 6),
			CreditScore:      700,
		}},
		Transactions: []domain.Transaction{{
			TransactionID:   uuid.New(),
			AccountID:       "ACCT12345678",
			TransactionDate: domain.NewDate(2025, 6, 1),
			TransactionType: domain.TransactionTypeFee,
			Amount:          decimal.RequireFromString("4.5"),
			Direction:       domain.DirectionDebit,
			Status:          domain.TransactionStatusCompleted,
		}},
	}
}

func TestDatasetRepository_SaveCreatesDirectoryAndAllFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")
	repo := NewDatasetRepository(dir)

	require.NoError(t, repo.Save(context.Background(), sampleDataset()))

	for _, base := range []string{"customer_data", "kyc_data", "account_data", "transaction_data", "transfer_data"} {
		for _, ext := range []string{".csv", ".json"} {
			_, err := os.Stat(filepath.Join(dir, base+ext))
			assert.NoError(t, err, base+ext)
		}
	}

	f, err := os.Open(filepath.Join(dir, "customer_data.csv"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "customer_id", rows[0][0])
	assert.Equal(t, "CUST1234567", rows[1][0])

	data, err := os.ReadFile(filepath.Join(dir, "kyc_data.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestDatasetRepository_SaveReportsUnwritableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	repo := NewDatasetRepository(filepath.Join(blocker, "output"))
	err := repo.Save(context.Background(), sampleDataset())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output directory")
}

func TestDatasetRepository_Name(t *testing.T) {
	assert.Equal(t, "filesystem", NewDatasetRepository("x").Name())
}
