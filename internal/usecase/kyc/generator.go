package kyc

import (
	"strings"

	"github.com/simaogato/banksynth/internal/domain"
	"github.com/simaogato/banksynth/internal/usecase/sampler"
)

const (
	pepWeight       = 0.03
	sanctionsWeight = 0.01
	maxRiskNoise    = 0.5
)

var (
	statusChoice = sampler.NewChoice(
		sampler.Weighted[domain.VerificationStatus]{Value: domain.VerificationStatusPending, Weight: 0.15},
		sampler.Weighted[domain.VerificationStatus]{Value: domain.VerificationStatusVerified, Weight: 0.70},
		sampler.Weighted[domain.VerificationStatus]{Value: domain.VerificationStatusRejected, Weight: 0.05},
		sampler.Weighted[domain.VerificationStatus]{Value: domain.VerificationStatusAdditionalInfo, Weight: 0.10},
	)

	documentTypes = []domain.DocumentType{
		domain.DocumentTypePassport,
		domain.DocumentTypeDriversLicense,
		domain.DocumentTypeNationalID,
		domain.DocumentTypeResidencePermit,
	}

	verificationMethods = []domain.VerificationMethod{
		domain.VerificationMethodManual,
		domain.VerificationMethodAutomated,
		domain.VerificationMethodVideo,
		domain.VerificationMethodThirdParty,
	}

	rejectionReasons = []string{"Document expired", "Information mismatch", "Poor image quality", "Suspected fraud"}
	missingItems     = []string{"Secondary ID", "Proof of address", "Clear photo", "Income verification"}
)

// Generator produces one KYC record per customer
type Generator struct {
	src *sampler.Source
}

// NewGenerator creates a KYC Generator
func NewGenerator(src *sampler.Source) *Generator {
	return &Generator{src: src}
}

// Generate produces exactly one KYC record per customer, preserving input order.
//
// Logic:
//   - Issue date is the customer's registration date
//   - Verification follows 1-7 days later; expiry 5-10 years (of 365 days) later
//   - Risk score and category are derived via RiskScore and RiskCategoryFor
//   - Notes are only set for Rejected and Additional Info Required records
func (g *Generator) Generate(customers []domain.Customer) []domain.KYCRecord {
	records := make([]domain.KYCRecord, 0, len(customers))
	for i := range customers {
		records = append(records, g.generateOne(&customers[i]))
	}
	return records
}

func (g *Generator) generateOne(c *domain.Customer) domain.KYCRecord {
	docType := sampler.OneOf(g.src, documentTypes)
	status := statusChoice.Pick(g.src)

	issue := c.RegistrationDate
	expiry := issue.AddDays(365 * g.src.IntRange(5, 10))
	verified := issue.AddDays(g.src.IntRange(1, 7))

	// the category follows the stored score, which is already rounded to 2 places
	score := RiskScore(c.Age, c.AnnualIncome, g.src.Uniform(0, maxRiskNoise))

	return domain.KYCRecord{
		CustomerID:         c.CustomerID,
		DocumentType:       docType,
		DocumentNumber:     documentNumber(docType, g.src.Digits(8)),
		IssuingCountry:     c.Nationality,
		IssueDate:          issue,
		ExpiryDate:         expiry,
		VerificationStatus: status,
		VerificationDate:   verified,
		VerificationMethod: sampler.OneOf(g.src, verificationMethods),
		RiskScore:          score,
		RiskCategory:       RiskCategoryFor(score),
		PEPStatus:          g.src.Bernoulli(pepWeight),
		SanctionsMatch:     g.src.Bernoulli(sanctionsWeight),
		Notes:              g.notesFor(status),
	}
}

func (g *Generator) notesFor(status domain.VerificationStatus) string {
	switch status {
	case domain.VerificationStatusRejected:
		return sampler.OneOf(g.src, rejectionReasons)
	case domain.VerificationStatusAdditionalInfo:
		return "Required: " + sampler.OneOf(g.src, missingItems)
	default:
		return ""
	}
}

// documentNumber prefixes the digits with the first three letters of the document type
func documentNumber(docType domain.DocumentType, digits string) string {
	return strings.ToUpper(string(docType)[:3]) + digits
}
