package domain

import (
	"errors"
	"regexp"

	"github.com/shopspring/decimal"
)

// CustomerID identifies a customer: "CUST" followed by 7 digits
type CustomerID string

// Gender represents the customer's recorded gender
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

var customerIDPattern = regexp.MustCompile(`^CUST\d{7}$`)

// Customer represents an onboarded bank customer
type Customer struct {
	CustomerID       CustomerID      `json:"customer_id"`
	FirstName        string          `json:"first_name"`
	LastName         string          `json:"last_name"`
	Gender           Gender          `json:"gender"`
	DateOfBirth      Date            `json:"date_of_birth"`
	Age              int             `json:"age"`
	Email            string          `json:"email"`
	PhoneNumber      string          `json:"phone_number"`
	Nationality      string          `json:"nationality"`
	AddressLine1     string          `json:"address_line1"`
	City             string          `json:"city"`
	State            string          `json:"state"`
	PostalCode       string          `json:"postal_code"`
	Country          string          `json:"country"`
	Occupation       string          `json:"occupation"`
	Employer         string          `json:"employer"`
	AnnualIncome     decimal.Decimal `json:"annual_income"`
	RegistrationDate Date            `json:"registration_date"`
	CreditScore      int             `json:"credit_score"`
}

// FullName returns "First Last"
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// IsValidCustomerID reports whether id matches the CUST + 7 digits format
func IsValidCustomerID(id CustomerID) bool {
	return customerIDPattern.MatchString(string(id))
}

// Validate ensures the customer adheres to domain rules
func (c *Customer) Validate() error {
	if !IsValidCustomerID(c.CustomerID) {
		return errors.New("customer id must be CUST followed by 7 digits")
	}

	if c.Gender != GenderMale && c.Gender != GenderFemale {
		return errors.New("customer gender must be M or F")
	}

	if c.RegistrationDate.IsZero() || c.DateOfBirth.IsZero() {
		return errors.New("customer dates must be set")
	}

	if c.CreditScore < 300 || c.CreditScore > 850 {
		return errors.New("credit score must be between 300 and 850")
	}

	if c.AnnualIncome.IsNegative() {
		return errors.New("annual income cannot be negative")
	}

	return nil
}
