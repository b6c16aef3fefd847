package shortener

import (
	"context"
	"fmt"

	"github.com/sgrewal/tinylink/internal/domain"
)

// Allocator produces a currently-unused code by generating candidates and
// probing the store. The probe is an optimization to avoid wasted inserts;
// a concurrent allocator can still race past it, and the store's unique
// constraint remains the real collision detector.
type Allocator struct {
	generator Generator
	store     ExistenceChecker
}

// NewAllocator creates an allocator over the given generator and store
func NewAllocator(generator Generator, store ExistenceChecker) *Allocator {
	return &Allocator{
		generator: generator,
		store:     store,
	}
}

// Allocate returns an unused code, or domain.ErrCodeSpaceExhausted after
// MaxAllocationAttempts consecutive collisions
func (a *Allocator) Allocate(ctx context.Context) (string, error) {
	for i := 0; i < MaxAllocationAttempts; i++ {
		candidate := a.generator.GenerateCode(DefaultCodeLength)

		exists, err := a.store.CodeExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check code existence: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", domain.ErrCodeSpaceExhausted
}
