package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/sgrewal/tinylink/internal/domain"
	"github.com/sgrewal/tinylink/internal/repository"
)

// Repository implements repository.LinkRepository using SQLite
type Repository struct {
	db *sql.DB
}

// New creates a new SQLite repository
func New(databasePath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", databasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys and WAL mode for better performance
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	repo := &Repository{db: db}

	if err := repo.runMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return repo, nil
}

// CreateLink inserts a new link and returns the persisted record. The
// primary key constraint on code is the real collision detector; its
// violation is surfaced as domain.ErrCodeConflict.
func (r *Repository) CreateLink(ctx context.Context, code, url string) (*domain.Link, error) {
	createdAt := time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO links (code, url, clicks, created_at) VALUES (?, ?, 0, ?)",
		code, url, createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrCodeConflict
		}
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	return &domain.Link{
		Code:      code,
		URL:       url,
		Clicks:    0,
		CreatedAt: createdAt,
	}, nil
}

// GetLink retrieves a link by its code
func (r *Repository) GetLink(ctx context.Context, code string) (*domain.Link, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT code, url, clicks, last_clicked_at, created_at FROM links WHERE code = ?",
		code)

	link, err := scanLink(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get link: %w", err)
	}

	return link, nil
}

// GetAllLinks retrieves all links ordered by creation date (desc)
func (r *Repository) GetAllLinks(ctx context.Context) ([]*domain.Link, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT code, url, clicks, last_clicked_at, created_at FROM links ORDER BY created_at DESC, code DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to get all links: %w", err)
	}
	defer rows.Close()

	var links []*domain.Link
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, link)
	}

	return links, rows.Err()
}

// DeleteLink removes a link by its code
func (r *Repository) DeleteLink(ctx context.Context, code string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM links WHERE code = ?", code)
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// CodeExists checks if a code is already taken
func (r *Repository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM links WHERE code = ?", code).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}
	return count > 0, nil
}

// RegisterClick atomically increments the click counter and sets the
// last-clicked timestamp for the given code. The increment happens in the
// store so concurrent clicks each count.
func (r *Repository) RegisterClick(ctx context.Context, code string, at time.Time) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE links SET clicks = clicks + 1, last_clicked_at = ? WHERE code = ?",
		at.UTC(), code)
	if err != nil {
		return fmt.Errorf("failed to register click: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Ping verifies the store connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close closes the repository connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanLink(s scanner) (*domain.Link, error) {
	var link domain.Link
	var lastClickedAt sql.NullTime

	if err := s.Scan(&link.Code, &link.URL, &link.Clicks, &lastClickedAt, &link.CreatedAt); err != nil {
		return nil, err
	}

	if lastClickedAt.Valid {
		link.LastClickedAt = &lastClickedAt.Time
	}

	return &link, nil
}

// isUniqueViolation reports whether err is a sqlite unique/primary key
// constraint failure
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

// Ensure Repository implements the interface
var _ repository.LinkRepository = (*Repository)(nil)
