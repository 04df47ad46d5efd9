package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validKYC() KYCRecord {
	issue := NewDate(2022, 6, 1)
	return KYCRecord{
		CustomerID:         "CUST7654321",
		DocumentType:       DocumentTypePassport,
		DocumentNumber:     "PAS12345678",
		IssuingCountry:     "Portugal",
		IssueDate:          issue,
		ExpiryDate:         issue.AddDays(365 * 7),
		VerificationStatus: VerificationStatusVerified,
		VerificationDate:   issue.AddDays(3),
		VerificationMethod: VerificationMethodAutomated,
		RiskScore:          decimal.RequireFromString("0.42"),
		RiskCategory:       RiskCategoryMedium,
	}
}

func TestKYCRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(k *KYCRecord)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "Verified record without notes should pass",
			mutate:  func(k *KYCRecord) {},
			wantErr: false,
		},
		{
			name: "Rejected record with notes should pass",
			mutate: func(k *KYCRecord) {
				k.VerificationStatus = VerificationStatusRejected
				k.Notes = "Suspected fraud"
			},
			wantErr: false,
		},
		{
			name:    "Rejected record without notes should fail",
			mutate:  func(k *KYCRecord) { k.VerificationStatus = VerificationStatusRejected },
			wantErr: true,
			errMsg:  "must carry notes",
		},
		{
			name:    "Additional info record without notes should fail",
			mutate:  func(k *KYCRecord) { k.VerificationStatus = VerificationStatusAdditionalInfo },
			wantErr: true,
			errMsg:  "must carry notes",
		},
		{
			name:    "Pending record with notes should fail",
			mutate:  func(k *KYCRecord) { k.VerificationStatus = VerificationStatusPending; k.Notes = "x" },
			wantErr: true,
			errMsg:  "must not carry notes",
		},
		{
			name:    "Unknown status should fail",
			mutate:  func(k *KYCRecord) { k.VerificationStatus = "Escalated" },
			wantErr: true,
			errMsg:  "invalid verification status",
		},
		{
			name:    "Risk score above 1 should fail",
			mutate:  func(k *KYCRecord) { k.RiskScore = decimal.RequireFromString("1.01") },
			wantErr: true,
			errMsg:  "risk score must be between 0 and 1",
		},
		{
			name:    "Verification on issue date should fail",
			mutate:  func(k *KYCRecord) { k.VerificationDate = k.IssueDate },
			wantErr: true,
			errMsg:  "verification date must be after issue date",
		},
		{
			name:    "Expiry before issue should fail",
			mutate:  func(k *KYCRecord) { k.ExpiryDate = k.IssueDate.AddDays(-1) },
			wantErr: true,
			errMsg:  "expiry date must be after issue date",
		},
		{
			name:    "Invalid customer reference should fail",
			mutate:  func(k *KYCRecord) { k.CustomerID = "" },
			wantErr: true,
			errMsg:  "valid customer id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := validKYC()
			tt.mutate(&k)
			err := k.Validate()
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
