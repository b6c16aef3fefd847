package domain

import (
	"time"
)

// Link represents a shortened link with its click statistics
type Link struct {
	Code          string     `json:"code"`
	URL           string     `json:"url"`
	Clicks        int        `json:"clicks"`
	LastClickedAt *time.Time `json:"last_clicked_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

// CreateLinkRequest represents the request to create a short link.
// Code is optional; when empty the server allocates one.
type CreateLinkRequest struct {
	URL  string `json:"url"`
	Code string `json:"code,omitempty"`
}

// ErrorResponse is the JSON error body returned by the API
type ErrorResponse struct {
	Error string `json:"error"`
}
