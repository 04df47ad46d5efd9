package ledger

import (
	"fmt"
	"strings"

	"github.com/simaogato/banksynth/internal/domain"
	"github.com/simaogato/banksynth/internal/usecase/sampler"
)

var (
	depositDescriptions = []string{
		"Salary deposit", "Cash deposit", "Check deposit", "Direct deposit",
		"Transfer in", "Mobile deposit", "Refund from %s",
	}
	refundMerchants = []string{"Amazon", "Walmart", "Target", "Best Buy", "Apple Store", "Gas Station", "Department Store"}

	withdrawalDescriptions = []string{
		"ATM withdrawal", "Cash withdrawal", "Teller withdrawal", "Check withdrawal", "Transfer out",
	}

	transferDescriptions = []string{
		"Transfer to account ending in %d", "Transfer from account ending in %d",
		"Online transfer", "Scheduled transfer", "Recurring transfer", "Transfer to %s",
	}

	feeDescriptions = []string{
		"Monthly service fee", "ATM fee", "Overdraft fee", "Wire transfer fee",
		"Late payment fee", "Foreign transaction fee", "Account maintenance fee",
	}

	paymentCategories = []string{
		"Utilities", "Shopping", "Groceries", "Entertainment", "Travel",
		"Dining", "Healthcare", "Education", "Housing", "Transportation",
	}

	paymentDescriptions = map[string][]string{
		"Utilities":      {"Electric bill", "Water bill", "Gas bill", "Internet bill", "Phone bill"},
		"Shopping":       {"Amazon purchase", "Online shopping", "Department store purchase", "%s purchase"},
		"Groceries":      {"Grocery shopping", "Supermarket", "Food store"},
		"Entertainment":  {"Movie tickets", "Streaming service", "Concert tickets", "Game purchase"},
		"Travel":         {"Airline tickets", "Hotel booking", "Car rental", "Travel agency"},
		"Dining":         {"Restaurant payment", "Coffee shop", "Fast food", "Food delivery"},
		"Healthcare":     {"Doctor's visit", "Pharmacy", "Health insurance", "Dental payment"},
		"Education":      {"Tuition payment", "Book purchase", "Course fee", "School supplies"},
		"Housing":        {"Rent payment", "Mortgage payment", "Property tax", "HOA dues"},
		"Transportation": {"Gas station", "Car payment", "Public transport", "Ride sharing"},
	}
	shoppingMerchants = []string{"Amazon", "Walmart", "Target", "Best Buy", "Apple", "Nike", "Adidas", "H&M", "Macy's"}

	payees = []string{
		"Amazon", "Netflix", "Spotify", "Apple", "Google", "Uber", "Lyft",
		"Walmart", "Target", "Costco", "Whole Foods", "Safeway", "AT&T",
		"Verizon", "Comcast", "PG&E", "State Farm", "Geico", "Bank of America",
		"Chase", "Wells Fargo", "American Express", "Capital One",
	}

	channels = []string{"Online Banking", "Mobile App", "ATM", "Branch", "Automated/System"}
)

const ownAccount = "Own account"

// details holds the descriptive columns of a transaction
type details struct {
	description         string
	category            *string
	counterpartyName    *string
	counterpartyAccount *string
}

// describe fills the descriptive columns for a transaction type.
// Payments draw their category first so that the description matches it.
func describe(src *sampler.Source, txType domain.TransactionType) details {
	var d details

	switch txType {
	case domain.TransactionTypeDeposit:
		d.description = sampler.OneOf(src, depositDescriptions)
		if strings.Contains(d.description, "%s") {
			d.description = fmt.Sprintf(d.description, sampler.OneOf(src, refundMerchants))
		}
	case domain.TransactionTypeWithdrawal:
		d.description = sampler.OneOf(src, withdrawalDescriptions)
	case domain.TransactionTypeTransfer:
		d.description = sampler.OneOf(src, transferDescriptions)
		switch {
		case strings.Contains(d.description, "%d"):
			d.description = fmt.Sprintf(d.description, src.IntRange(1000, 9999))
		case strings.Contains(d.description, "%s"):
			d.description = fmt.Sprintf(d.description, src.Faker().Name())
		}
		name := ownAccount
		if src.Bernoulli(0.5) {
			name = src.Faker().Name()
		}
		account := "ACCT" + src.Digits(7)
		d.counterpartyName = &name
		d.counterpartyAccount = &account
	case domain.TransactionTypePayment:
		category := sampler.OneOf(src, paymentCategories)
		d.description = sampler.OneOf(src, paymentDescriptions[category])
		if strings.Contains(d.description, "%s") {
			d.description = fmt.Sprintf(d.description, sampler.OneOf(src, shoppingMerchants))
		}
		payee := sampler.OneOf(src, payees)
		d.category = &category
		d.counterpartyName = &payee
	case domain.TransactionTypeFee:
		d.description = sampler.OneOf(src, feeDescriptions)
	default:
		d.description = "Interest payment"
	}

	return d
}
