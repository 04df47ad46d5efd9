package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// DocumentType represents the identity document presented during KYC
type DocumentType string

const (
	DocumentTypePassport        DocumentType = "Passport"
	DocumentTypeDriversLicense  DocumentType = "Driver's License"
	DocumentTypeNationalID      DocumentType = "National ID Card"
	DocumentTypeResidencePermit DocumentType = "Residence Permit"
)

// VerificationStatus represents the outcome of a KYC check
type VerificationStatus string

const (
	VerificationStatusPending        VerificationStatus = "Pending"
	VerificationStatusVerified       VerificationStatus = "Verified"
	VerificationStatusRejected       VerificationStatus = "Rejected"
	VerificationStatusAdditionalInfo VerificationStatus = "Additional Info Required"
)

// VerificationMethod represents how the KYC check was carried out
type VerificationMethod string

const (
	VerificationMethodManual     VerificationMethod = "Manual Review"
	VerificationMethodAutomated  VerificationMethod = "Automated"
	VerificationMethodVideo      VerificationMethod = "Video Verification"
	VerificationMethodThirdParty VerificationMethod = "Third-party API"
)

// RiskCategory buckets a risk score
type RiskCategory string

const (
	RiskCategoryLow    RiskCategory = "Low"
	RiskCategoryMedium RiskCategory = "Medium"
	RiskCategoryHigh   RiskCategory = "High"
)

// KYCRecord represents the know-your-customer verification of one customer
type KYCRecord struct {
	CustomerID         CustomerID         `json:"customer_id"`
	DocumentType       DocumentType       `json:"document_type"`
	DocumentNumber     string             `json:"document_number"`
	IssuingCountry     string             `json:"issuing_country"`
	IssueDate          Date               `json:"issue_date"`
	ExpiryDate         Date               `json:"expiry_date"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	VerificationDate   Date               `json:"verification_date"`
	VerificationMethod VerificationMethod `json:"verification_method"`
	RiskScore          decimal.Decimal    `json:"risk_score"`
	RiskCategory       RiskCategory       `json:"risk_category"`
	PEPStatus          bool               `json:"pep_status"`
	SanctionsMatch     bool               `json:"sanctions_match"`
	Notes              string             `json:"notes"`
}

// Validate ensures the KYC record adheres to domain rules
func (k *KYCRecord) Validate() error {
	if !IsValidCustomerID(k.CustomerID) {
		return errors.New("kyc record must reference a valid customer id")
	}

	if k.RiskScore.IsNegative() || k.RiskScore.GreaterThan(decimal.NewFromInt(1)) {
		return errors.New("risk score must be between 0 and 1")
	}

	if !k.VerificationDate.After(k.IssueDate) {
		return errors.New("verification date must be after issue date")
	}

	if !k.ExpiryDate.After(k.IssueDate) {
		return errors.New("expiry date must be after issue date")
	}

	// Notes are only carried by statuses that need follow-up
	switch k.VerificationStatus {
	case VerificationStatusRejected, VerificationStatusAdditionalInfo:
		if k.Notes == "" {
			return errors.New("rejected or incomplete kyc record must carry notes")
		}
	case VerificationStatusPending, VerificationStatusVerified:
		if k.Notes != "" {
			return errors.New("pending or verified kyc record must not carry notes")
		}
	default:
		return errors.New("invalid verification status")
	}

	return nil
}
