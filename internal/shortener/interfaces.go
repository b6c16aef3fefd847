package shortener

import (
	"context"
)

// Generator defines the interface for producing short code candidates
type Generator interface {
	// GenerateCode returns a candidate code of the given length
	GenerateCode(length int) string
}

// ExistenceChecker reports whether a code is already taken in the store.
// Satisfied by repository.LinkRepository.
type ExistenceChecker interface {
	CodeExists(ctx context.Context, code string) (bool, error)
}

const (
	// DefaultCodeLength is the length of generated codes
	DefaultCodeLength = 6

	// MaxAllocationAttempts bounds the generate-and-probe loop. With a
	// 62^6 code space, repeated collisions indicate a nearly-full or
	// misbehaving store rather than expected contention; the bound exists
	// to avoid looping forever on a persistent failure.
	MaxAllocationAttempts = 5
)
