package sampler

import (
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/banksynth/internal/domain"
)

// poissonChunk bounds the lambda handed to Knuth's algorithm, whose exp(-lambda)
// underflows for large means
const poissonChunk = 30.0

// Source is the single seeded random stream of a generation run.
// The numeric generator, the faker and UUID generation all draw from the same PCG state,
// so two runs with the same seed consume identical values in identical order.
// A Source is not safe for concurrent use.
type Source struct {
	rng   *rand.Rand
	faker *gofakeit.Faker
}

// New creates a Source seeded with seed
func New(seed uint64) *Source {
	pcg := rand.NewPCG(seed, seed)
	return &Source{
		rng:   rand.New(pcg),
		faker: gofakeit.NewFaker(pcg, false),
	}
}

// Faker exposes the person/address faker backed by the same stream
func (s *Source) Faker() *gofakeit.Faker {
	return s.faker
}

// Float64 returns a uniform value in [0, 1)
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// IntN returns a uniform value in [0, n); n must be positive
func (s *Source) IntN(n int) int {
	return s.rng.IntN(n)
}

// IntRange returns a uniform value in [lo, hi], inclusive; hi below lo yields lo
func (s *Source) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}

// Bernoulli returns true with probability p
func (s *Source) Bernoulli(p float64) bool {
	return s.rng.Float64() < p
}

// Uniform returns a uniform value in [lo, hi); hi below lo yields lo
func (s *Source) Uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}

// Money returns a uniform amount in [lo, hi] rounded to cents, never above hi.
// A degenerate range (hi below lo) clamps to lo.
func (s *Source) Money(lo, hi float64) decimal.Decimal {
	v := decimal.NewFromFloat(s.Uniform(lo, hi)).Round(2)
	if hi <= lo {
		return v
	}
	// rounding to cents can overshoot a cap with more than two decimals
	ceiling := decimal.NewFromFloat(hi).RoundDown(2)
	return decimal.Min(v, ceiling)
}

// Rate returns a uniform rate in [lo, hi] rounded to 4 places
func (s *Source) Rate(lo, hi float64) decimal.Decimal {
	return decimal.NewFromFloat(s.Uniform(lo, hi)).Round(4)
}

// Digits returns a random n-digit number without a leading zero
func (s *Source) Digits(n int) string {
	lo := int(math.Pow10(n - 1))
	hi := int(math.Pow10(n)) - 1
	return strconv.Itoa(s.IntRange(lo, hi))
}

// DateBetween returns a uniform calendar day in [from, to]; to before from yields from
func (s *Source) DateBetween(from, to domain.Date) domain.Date {
	return from.AddDays(s.IntRange(0, from.DaysUntil(to)))
}

// UUID returns a version 4 UUID drawn from the seeded stream
func (s *Source) UUID() uuid.UUID {
	id, err := uuid.NewRandomFromReader(s)
	if err != nil {
		// Read never fails
		panic(err)
	}
	return id
}

// Read fills p with random bytes, letting the stream act as an io.Reader
func (s *Source) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := s.rng.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}

// Poisson samples a Poisson-distributed count with mean lambda.
// Logic:
//   - lambda <= 0 always yields 0
//   - The mean is split into chunks of at most 30, each sampled with Knuth's algorithm
//   - The chunk samples are summed (a sum of independent Poissons is Poisson)
func (s *Source) Poisson(lambda float64) int {
	if lambda <= 0 {
		return 0
	}

	total := 0
	for lambda > 0 {
		chunk := math.Min(lambda, poissonChunk)
		lambda -= chunk
		total += s.knuth(chunk)
	}
	return total
}

func (s *Source) knuth(lambda float64) int {
	limit := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		p *= s.rng.Float64()
		if p <= limit {
			return k
		}
		k++
	}
}
