package customer

import (
	"strings"
	"time"

	"github.com/simaogato/banksynth/internal/domain"
	"github.com/simaogato/banksynth/internal/usecase/identity"
	"github.com/simaogato/banksynth/internal/usecase/sampler"
)

const (
	minIncome      = 30000
	maxIncome      = 250000
	minCreditScore = 300
	maxCreditScore = 850
)

var (
	earliestBirth        = domain.NewDate(1950, time.January, 1)
	latestBirth          = domain.NewDate(2005, time.December, 31)
	earliestRegistration = domain.NewDate(2020, time.January, 1)
	latestRegistration   = domain.NewDate(2024, time.December, 31)

	genders = []domain.Gender{domain.GenderMale, domain.GenderFemale}
)

// Generator produces the customer table
type Generator struct {
	src   *sampler.Source
	ids   *identity.Pool
	today domain.Date
}

// NewGenerator creates a customer Generator; today anchors the age computation
func NewGenerator(src *sampler.Source, ids *identity.Pool, today domain.Date) *Generator {
	return &Generator{src: src, ids: ids, today: today}
}

// Generate produces count customers.
//
// Logic:
//   - Gender is uniform over M/F and conditions the first name
//   - Date of birth is uniform over 1950-2005; age is the year difference only
//   - Income and credit score are sampled independently of each other
//   - Contact, address and employment fields come from the seeded faker
func (g *Generator) Generate(count int) []domain.Customer {
	customers := make([]domain.Customer, 0, count)
	for i := 0; i < count; i++ {
		customers = append(customers, g.generateOne())
	}
	return customers
}

func (g *Generator) generateOne() domain.Customer {
	faker := g.src.Faker()

	gender := sampler.OneOf(g.src, genders)
	names := femaleFirstNames
	if gender == domain.GenderMale {
		names = maleFirstNames
	}
	firstName := sampler.OneOf(g.src, names)
	lastName := faker.LastName()
	dob := g.src.DateBetween(earliestBirth, latestBirth)

	return domain.Customer{
		CustomerID:       g.ids.NextCustomerID(),
		FirstName:        firstName,
		LastName:         lastName,
		Gender:           gender,
		DateOfBirth:      dob,
		Age:              g.today.Year() - dob.Year(),
		Email:            emailAddress(firstName, lastName, sampler.OneOf(g.src, emailDomains)),
		PhoneNumber:      faker.Phone(),
		Nationality:      faker.Country(),
		AddressLine1:     faker.Street(),
		City:             faker.City(),
		State:            faker.State(),
		PostalCode:       faker.Zip(),
		Country:          faker.Country(),
		Occupation:       faker.JobTitle(),
		Employer:         faker.Company(),
		AnnualIncome:     g.src.Money(minIncome, maxIncome),
		RegistrationDate: g.src.DateBetween(earliestRegistration, latestRegistration),
		CreditScore:      g.src.IntRange(minCreditScore, maxCreditScore),
	}
}

// emailAddress builds "first.last@domain" in lower case with whitespace removed
func emailAddress(first, last, host string) string {
	local := strings.ToLower(first) + "." + strings.ToLower(last)
	return strings.Join(strings.Fields(local), "") + "@" + host
}
