package httpx

import (
	"errors"
	"net/http"
	"strings"

	domainauth "github.com/kwakyosong/platform-ui/internal/domain/auth"
	"github.com/kwakyosong/platform-ui/internal/domain/model"
)

// AccountHandlers provides the JSON API over accounts, gated to user
// administration in routes.go.
type AccountHandlers struct {
	Svc AccountsService
}

// List handles GET /api/accounts with optional role and q filters.
func (h *AccountHandlers) List(w http.ResponseWriter, r *http.Request) {
	filter := model.AccountFilter{
		Role:  domainauth.Role(strings.TrimSpace(r.URL.Query().Get("role"))),
		Query: r.URL.Query().Get("q"),
	}

	accounts, err := h.Svc.List(r.Context(), filter)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"accounts": accounts})
}

// GetByID handles GET /api/accounts/{id}.
func (h *AccountHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	account, err := h.Svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, account)
}

// Delete handles DELETE /api/accounts/{id}.
func (h *AccountHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "delete_failed", Err: err})
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errors.New("account not found")})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DashboardHandlers exposes the aggregate statistics endpoint backing the
// admin dashboard's periodic refresh.
type DashboardHandlers struct {
	Svc DashboardStatsService
}

// Stats handles GET /api/dashboard/stats.
func (h *DashboardHandlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Stats(r.Context())
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "stats_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}
