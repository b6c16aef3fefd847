package repository

import (
	"context"
	"time"

	"github.com/sgrewal/tinylink/internal/domain"
)

// LinkRepository defines the interface for link data operations
type LinkRepository interface {
	// CreateLink inserts a new link and returns the persisted record.
	// Returns domain.ErrCodeConflict if the code is already taken.
	CreateLink(ctx context.Context, code, url string) (*domain.Link, error)

	// GetLink retrieves a link by its code.
	// Returns domain.ErrNotFound if no row matches.
	GetLink(ctx context.Context, code string) (*domain.Link, error)

	// GetAllLinks retrieves all links ordered by creation date (desc)
	GetAllLinks(ctx context.Context) ([]*domain.Link, error)

	// DeleteLink removes a link by its code.
	// Returns domain.ErrNotFound if no row matched.
	DeleteLink(ctx context.Context, code string) error

	// CodeExists checks if a code is already taken
	CodeExists(ctx context.Context, code string) (bool, error)

	// RegisterClick atomically increments the click counter and sets the
	// last-clicked timestamp for the given code
	RegisterClick(ctx context.Context, code string, at time.Time) error

	// Ping verifies the store connection is alive
	Ping(ctx context.Context) error

	// Close closes the repository connection
	Close() error
}
