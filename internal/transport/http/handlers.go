package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/sgrewal/tinylink/internal/domain"
	"github.com/sgrewal/tinylink/internal/service"
)

// Handler holds the HTTP handlers for the link API
type Handler struct {
	links   service.LinkService
	baseURL string
}

// NewHandler creates a new HTTP handler
func NewHandler(links service.LinkService, baseURL string) *Handler {
	return &Handler{
		links:   links,
		baseURL: baseURL,
	}
}

// CreateLink handles POST /api/links
func (h *Handler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Invalid JSON in create link request: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	link, err := h.links.CreateLink(r.Context(), strings.TrimSpace(req.URL), strings.TrimSpace(req.Code))
	if err != nil {
		h.writeCreateError(w, &req, err)
		return
	}

	writeJSON(w, http.StatusCreated, link)
}

// writeCreateError maps create failures to status codes. Conflict and
// exhaustion are reported distinctly so callers can retry with a different
// code or give up.
func (h *Handler) writeCreateError(w http.ResponseWriter, req *domain.CreateLinkRequest, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidURL):
		writeError(w, http.StatusBadRequest, "Invalid URL. Use http(s) URLs only.")
	case errors.Is(err, domain.ErrInvalidCode):
		writeError(w, http.StatusBadRequest, "Code must match [A-Za-z0-9]{6,8}.")
	case errors.Is(err, domain.ErrCodeConflict):
		writeError(w, http.StatusConflict, "Code already exists.")
	case errors.Is(err, domain.ErrCodeSpaceExhausted):
		log.Printf("[ERROR] Code space exhausted creating link for '%s'", req.URL)
		writeError(w, http.StatusInternalServerError, "Could not generate unique code.")
	default:
		log.Printf("[ERROR] Failed to create link for '%s': %v", req.URL, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// GetLink handles GET /api/links/{code}
func (h *Handler) GetLink(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimPrefix(r.URL.Path, "/api/links/")
	if code == "" {
		writeError(w, http.StatusBadRequest, "Code is required.")
		return
	}

	link, err := h.links.GetLink(r.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Not found")
			return
		}
		log.Printf("[ERROR] Failed to get link for code '%s': %v", code, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, link)
}

// DeleteLink handles DELETE /api/links/{code}
func (h *Handler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimPrefix(r.URL.Path, "/api/links/")
	if code == "" {
		writeError(w, http.StatusBadRequest, "Code is required.")
		return
	}

	if err := h.links.DeleteLink(r.Context(), code); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Not found")
			return
		}
		log.Printf("[ERROR] Failed to delete link with code '%s': %v", code, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListLinks handles GET /api/links
func (h *Handler) ListLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.links.ListLinks(r.Context())
	if err != nil {
		log.Printf("[ERROR] Failed to list links: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if links == nil {
		links = []*domain.Link{}
	}
	writeJSON(w, http.StatusOK, links)
}

// Redirect handles GET /{code}: resolve-and-count, then 302 to the target.
// This is the one surface hit by arbitrary third parties, so failures never
// carry internal detail.
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimPrefix(r.URL.Path, "/")
	if code == "" {
		h.Dashboard(w, r)
		return
	}
	if strings.HasPrefix(code, "api/") {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	targetURL, err := h.links.ResolveLink(r.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Not found")
			return
		}
		log.Printf("[ERROR] Failed to resolve code '%s': %v", code, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.Redirect(w, r, targetURL, http.StatusFound)
}

// Healthz handles GET /healthz
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.links.Ping(r.Context()); err != nil {
		log.Printf("[ERROR] Health check failed: %v", err)
		writeError(w, http.StatusServiceUnavailable, "store unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// LinksHandler handles both POST /api/links and GET /api/links
func (h *Handler) LinksHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.CreateLink(w, r)
	case http.MethodGet:
		h.ListLinks(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// LinksDetailHandler handles GET /api/links/{code} and DELETE /api/links/{code}
func (h *Handler) LinksDetailHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.GetLink(w, r)
	case http.MethodDelete:
		h.DeleteLink(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, domain.ErrorResponse{Error: msg})
}
