package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sgrewal/tinylink/internal/domain"
)

// LinkService is a mock implementation of service.LinkService
type LinkService struct {
	mock.Mock
}

// ListLinks retrieves all links, most recently created first
func (m *LinkService) ListLinks(ctx context.Context) ([]*domain.Link, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Link), args.Error(1)
}

// GetLink retrieves a single link by its code
func (m *LinkService) GetLink(ctx context.Context, code string) (*domain.Link, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Link), args.Error(1)
}

// CreateLink validates and persists a new link
func (m *LinkService) CreateLink(ctx context.Context, url, code string) (*domain.Link, error) {
	args := m.Called(ctx, url, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Link), args.Error(1)
}

// DeleteLink removes a link by its code
func (m *LinkService) DeleteLink(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

// ResolveLink looks up the target URL for a code and records the click
func (m *LinkService) ResolveLink(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

// Ping verifies the backing store is reachable
func (m *LinkService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Close closes the service and its dependencies
func (m *LinkService) Close() error {
	args := m.Called()
	return args.Error(0)
}
