package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nmbt2910/iheartev-sub001/internal/profile"
	"github.com/nmbt2910/iheartev-sub001/pkg/httputil"
	"github.com/nmbt2910/iheartev-sub001/pkg/validator"
)

// ProfileGetter aggregates profiles for the handler. *service.ProfileService
// satisfies this.
type ProfileGetter interface {
	GetSellerProfile(ctx context.Context, partyID string, recentLimit int) (*profile.Summary, error)
	GetBuyerProfile(ctx context.Context, partyID string, recentLimit int) (*profile.Summary, error)
}

// ProfileHandler handles HTTP requests for profile endpoints.
type ProfileHandler struct {
	service ProfileGetter
	logger  *slog.Logger
}

// NewProfileHandler creates a new profile HTTP handler.
func NewProfileHandler(svc ProfileGetter, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: svc,
		logger:  logger,
	}
}

// recentQuery carries the optional ?recent= parameter.
type recentQuery struct {
	Recent int `validate:"gte=1,lte=50"`
}

// parseRecent reads the optional ?recent= query parameter. Zero means the
// caller wants the default.
func parseRecent(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("recent")
	if raw == "" {
		return 0, true
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_PARAMETER", Message: "recent must be an integer"},
		})
		return 0, false
	}

	if err := validator.Validate(recentQuery{Recent: n}); err != nil {
		httputil.WriteValidationError(w, err)
		return 0, false
	}

	return n, true
}

// GetSellerProfile handles GET /api/v1/sellers/{id}/profile
func (h *ProfileHandler) GetSellerProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	recent, ok := parseRecent(w, r)
	if !ok {
		return
	}

	summary, err := h.service.GetSellerProfile(r.Context(), id.String(), recent)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: newSellerProfileView(summary)})
}

// GetBuyerProfile handles GET /api/v1/buyers/{id}/profile
func (h *ProfileHandler) GetBuyerProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	recent, ok := parseRecent(w, r)
	if !ok {
		return
	}

	summary, err := h.service.GetBuyerProfile(r.Context(), id.String(), recent)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: newBuyerProfileView(summary)})
}
