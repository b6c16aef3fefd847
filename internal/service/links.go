package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sgrewal/tinylink/internal/domain"
	"github.com/sgrewal/tinylink/internal/repository"
	"github.com/sgrewal/tinylink/internal/shortener"
)

// linkService implements LinkService interface
type linkService struct {
	repo      repository.LinkRepository
	allocator *shortener.Allocator
}

// NewLinkService creates a new link service
func NewLinkService(repo repository.LinkRepository, generator shortener.Generator) LinkService {
	return &linkService{
		repo:      repo,
		allocator: shortener.NewAllocator(generator, repo),
	}
}

// ListLinks retrieves all links, most recently created first
func (s *linkService) ListLinks(ctx context.Context) ([]*domain.Link, error) {
	links, err := s.repo.GetAllLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

// GetLink retrieves a single link by its code
func (s *linkService) GetLink(ctx context.Context, code string) (*domain.Link, error) {
	return s.repo.GetLink(ctx, code)
}

// CreateLink validates and persists a new link. Validation happens before
// any store round-trip; the insert itself is what decides a code conflict.
func (s *linkService) CreateLink(ctx context.Context, url, code string) (*domain.Link, error) {
	if !shortener.ValidURL(url) {
		return nil, domain.ErrInvalidURL
	}

	if code != "" {
		if !shortener.ValidCode(code) {
			return nil, domain.ErrInvalidCode
		}
	} else {
		allocated, err := s.allocator.Allocate(ctx)
		if err != nil {
			return nil, err
		}
		code = allocated
	}

	return s.repo.CreateLink(ctx, code, url)
}

// DeleteLink removes a link by its code. Deleting a missing code is a
// not-found condition, never silently ignored.
func (s *linkService) DeleteLink(ctx context.Context, code string) error {
	return s.repo.DeleteLink(ctx, code)
}

// ResolveLink looks up the target URL for a code and records the click.
// Once the URL has been read the request is answered with it regardless;
// the counter update is best-effort and a failure is logged and dropped,
// not surfaced to the visitor.
func (s *linkService) ResolveLink(ctx context.Context, code string) (string, error) {
	link, err := s.repo.GetLink(ctx, code)
	if err != nil {
		return "", err
	}

	if err := s.repo.RegisterClick(ctx, code, time.Now()); err != nil {
		log.Printf("[WARN] Failed to register click for code '%s': %v", code, err)
	}

	return link.URL, nil
}

// Ping verifies the backing store is reachable
func (s *linkService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// Close closes the service and its dependencies
func (s *linkService) Close() error {
	if err := s.repo.Close(); err != nil {
		return fmt.Errorf("failed to close repository: %w", err)
	}
	return nil
}

// Ensure linkService implements LinkService interface
var _ LinkService = (*linkService)(nil)
