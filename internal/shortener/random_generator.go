package shortener

import (
	"math/rand"
	"sync"
	"time"
)

// Base62 characters: A-Z, a-z, 0-9 (case sensitive)
const base62Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomGenerator generates codes by sampling each character independently
// and uniformly from the base62 alphabet. Codes are not secrets (they gate
// a redirect, not an authorization decision), so math/rand is sufficient.
type RandomGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomGenerator creates a generator seeded from the current time
func NewRandomGenerator() *RandomGenerator {
	return NewRandomGeneratorWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewRandomGeneratorWithSource creates a generator backed by the given
// randomness source, so tests can inject a deterministic one
func NewRandomGeneratorWithSource(src rand.Source) *RandomGenerator {
	return &RandomGenerator{
		rng: rand.New(src),
	}
}

// GenerateCode returns a random code of the given length
func (g *RandomGenerator) GenerateCode(length int) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	buf := make([]byte, length)
	for i := range buf {
		buf[i] = base62Chars[g.rng.Intn(len(base62Chars))]
	}
	return string(buf)
}

// Ensure RandomGenerator implements Generator interface
var _ Generator = (*RandomGenerator)(nil)
