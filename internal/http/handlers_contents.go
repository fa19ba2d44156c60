package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/kwakyosong/platform-ui/internal/domain/model"
)

// ContentHandlers provides the JSON API over the content catalog. The read
// endpoint is public like the discovery view; mutations sit behind the admin
// contents gate, wired up in routes.go.
type ContentHandlers struct {
	Svc ContentsService
}

// List handles GET /api/contents with optional category, q, and expr params.
// expr is a JMESPath expression evaluated against each item.
func (h *ContentHandlers) List(w http.ResponseWriter, r *http.Request) {
	filter := contentFilterFromQuery(r)
	expr := strings.TrimSpace(r.URL.Query().Get("expr"))

	contents, err := h.Svc.AdminList(r.Context(), filter, expr)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_expression", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"contents": contents})
}

// GetByID handles GET /api/contents/{id}.
func (h *ContentHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	content, err := h.Svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, content)
}

// Create handles POST /api/contents.
func (h *ContentHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.Content
	if !DecodeJSON(w, r, &req) {
		return
	}
	if sess := GetSessionFromContext(r.Context()); sess != nil {
		req.CreatedBy = sess.Email
	}

	created, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_content", Err: err})
		return
	}
	WriteJSON(w, http.StatusCreated, created)
}

// Update handles PUT /api/contents/{id}.
func (h *ContentHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.Content
	if !DecodeJSON(w, r, &req) {
		return
	}

	updated, err := h.Svc.Update(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/contents/{id}.
func (h *ContentHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "delete_failed", Err: err})
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errors.New("content not found")})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ValidateExpr handles POST /api/contents/validate-expr, letting the admin UI
// check a filter expression before applying it.
func (h *ContentHandlers) ValidateExpr(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Expr string `json:"expr"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Svc.ValidateExpr(req.Expr); err != nil {
		WriteJSON(w, http.StatusOK, map[string]any{"valid": false, "message": err.Error()})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"valid": true})
}
