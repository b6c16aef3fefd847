package shortener

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgrewal/tinylink/internal/domain"
)

// sequenceGenerator returns pre-scripted codes for deterministic tests
type sequenceGenerator struct {
	codes []string
	next  int
}

func (g *sequenceGenerator) GenerateCode(length int) string {
	code := g.codes[g.next%len(g.codes)]
	g.next++
	return code
}

// stubChecker answers existence probes from a fixed set and counts calls
type stubChecker struct {
	taken map[string]bool
	err   error
	calls int
}

func (c *stubChecker) CodeExists(ctx context.Context, code string) (bool, error) {
	c.calls++
	if c.err != nil {
		return false, c.err
	}
	return c.taken[code], nil
}

func TestAllocator_Allocate_FirstAttempt(t *testing.T) {
	gen := &sequenceGenerator{codes: []string{"aaaaaa"}}
	store := &stubChecker{taken: map[string]bool{}}

	alloc := NewAllocator(gen, store)
	code, err := alloc.Allocate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "aaaaaa", code)
	assert.Equal(t, 1, store.calls)
}

func TestAllocator_Allocate_RetriesOnCollision(t *testing.T) {
	gen := &sequenceGenerator{codes: []string{"taken1", "taken2", "freeAA"}}
	store := &stubChecker{taken: map[string]bool{"taken1": true, "taken2": true}}

	alloc := NewAllocator(gen, store)
	code, err := alloc.Allocate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "freeAA", code)
	assert.Equal(t, 3, store.calls)
}

func TestAllocator_Allocate_Exhausted(t *testing.T) {
	gen := &sequenceGenerator{codes: []string{"taken1"}}
	store := &stubChecker{taken: map[string]bool{"taken1": true}}

	alloc := NewAllocator(gen, store)
	code, err := alloc.Allocate(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCodeSpaceExhausted)
	assert.Empty(t, code)
	assert.Equal(t, MaxAllocationAttempts, store.calls)
}

func TestAllocator_Allocate_StoreError(t *testing.T) {
	gen := &sequenceGenerator{codes: []string{"aaaaaa"}}
	store := &stubChecker{err: fmt.Errorf("connection refused")}

	alloc := NewAllocator(gen, store)
	_, err := alloc.Allocate(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCodeSpaceExhausted)
	// A failing store is not retried
	assert.Equal(t, 1, store.calls)
}
