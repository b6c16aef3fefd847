package service

import (
	"context"

	"github.com/sgrewal/tinylink/internal/domain"
)

// LinkService defines the interface for link operations
type LinkService interface {
	// ListLinks retrieves all links, most recently created first
	ListLinks(ctx context.Context) ([]*domain.Link, error)

	// GetLink retrieves a single link by its code
	GetLink(ctx context.Context, code string) (*domain.Link, error)

	// CreateLink validates and persists a new link. When code is empty a
	// random unused code is allocated.
	CreateLink(ctx context.Context, url, code string) (*domain.Link, error)

	// DeleteLink removes a link by its code
	DeleteLink(ctx context.Context, code string) error

	// ResolveLink looks up the target URL for a code and records the click
	ResolveLink(ctx context.Context, code string) (string, error)

	// Ping verifies the backing store is reachable
	Ping(ctx context.Context) error

	// Close closes the service and its dependencies
	Close() error
}
