package identity

import (
	"strconv"

	"github.com/simaogato/banksynth/internal/domain"
	"github.com/simaogato/banksynth/internal/usecase/sampler"
)

const (
	customerPrefix = "CUST"
	accountPrefix  = "ACCT"

	customerMin = 1000000
	customerMax = 9999999
	accountMin  = 10000000
	accountMax  = 99999999
)

// Pool allocates collision-free customer and account identifiers for one generation run.
// Identifiers are drawn from fixed-width numeric namespaces; a lookup set detects
// collisions and sampling is retried until a fresh value is found.
// Keyspace exhaustion is not handled: the namespaces dwarf any supported run size.
type Pool struct {
	src       *sampler.Source
	customers map[domain.CustomerID]struct{}
	accounts  map[domain.AccountID]struct{}
}

// NewPool creates an empty Pool drawing from src
func NewPool(src *sampler.Source) *Pool {
	return &Pool{
		src:       src,
		customers: make(map[domain.CustomerID]struct{}),
		accounts:  make(map[domain.AccountID]struct{}),
	}
}

// NextCustomerID returns a customer id never previously returned by this pool
func (p *Pool) NextCustomerID() domain.CustomerID {
	for {
		id := domain.CustomerID(customerPrefix + strconv.Itoa(p.src.IntRange(customerMin, customerMax)))
		if _, taken := p.customers[id]; !taken {
			p.customers[id] = struct{}{}
			return id
		}
	}
}

// NextAccountID returns an account id never previously returned by this pool
func (p *Pool) NextAccountID() domain.AccountID {
	for {
		id := domain.AccountID(accountPrefix + strconv.Itoa(p.src.IntRange(accountMin, accountMax)))
		if _, taken := p.accounts[id]; !taken {
			p.accounts[id] = struct{}{}
			return id
		}
	}
}

// Allocated returns how many customer and account ids have been handed out
func (p *Pool) Allocated() (customers, accounts int) {
	return len(p.customers), len(p.accounts)
}
