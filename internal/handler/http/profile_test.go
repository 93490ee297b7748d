package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nmbt2910/iheartev-sub001/internal/domain"
	"github.com/nmbt2910/iheartev-sub001/internal/profile"
	apperrors "github.com/nmbt2910/iheartev-sub001/pkg/errors"
	"github.com/nmbt2910/iheartev-sub001/pkg/httputil"
)

const (
	sellerID = "550e8400-e29b-41d4-a716-446655440000"
	buyerID  = "650e8400-e29b-41d4-a716-446655440001"
)

type mockProfileService struct {
	mock.Mock
}

func (m *mockProfileService) GetSellerProfile(ctx context.Context, partyID string, recentLimit int) (*profile.Summary, error) {
	args := m.Called(ctx, partyID, recentLimit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Summary), args.Error(1)
}

func (m *mockProfileService) GetBuyerProfile(ctx context.Context, partyID string, recentLimit int) (*profile.Summary, error) {
	args := m.Called(ctx, partyID, recentLimit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Summary), args.Error(1)
}

func newTestRouter(svc ProfileGetter) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	h := NewProfileHandler(svc, logger)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Get("/sellers/{id}/profile", h.GetSellerProfile)
		r.Get("/buyers/{id}/profile", h.GetBuyerProfile)
	})
	return r
}

func sellerSummary() *profile.Summary {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return &profile.Summary{
		Party: domain.Party{
			ID:       sellerID,
			FullName: "Nguyen Van An",
			Email:    "an.nguyen@example.com",
			Role:     domain.RoleSeller,
		},
		Buckets: profile.Buckets{
			Active: []domain.Transaction{
				{
					ID:        "tx-1",
					Amount:    260_000_000,
					Status:    domain.TransactionStatusActive,
					CreatedAt: now,
					Listing:   &domain.Listing{Brand: "VinFast", Model: "VF 8", Year: 2023},
				},
			},
			Sold: []domain.Transaction{
				{ID: "tx-2", Amount: 90_000_000, Status: domain.TransactionStatusSold, CreatedAt: now},
			},
		},
		Rating: domain.RatingSummary{Average: 4.4666667, Total: 3},
		Stars:  domain.Stars(4.4666667),
		Recent: []profile.ReviewEntry{
			{
				Review: domain.Review{ID: "r-1", Rating: 4.5, ReviewerName: "Tran Thi Binh", Comment: "Xe rat tot", CreatedAt: now},
				Stars:  domain.Stars(4.5),
				Link: profile.LinkOutcome{
					State:         profile.LinkResolved,
					TransactionID: "tx-2",
					Amount:        "90.000.000 ₫",
					Listing:       &profile.ListingSummary{Brand: "VinFast", Model: "VF e34", Year: 2022},
				},
			},
			{
				Review: domain.Review{ID: "r-2", Rating: 5, ReviewerName: "Le Van Cuong", OrderID: "ord-gone", CreatedAt: now},
				Stars:  domain.Stars(5),
				Link:   profile.LinkOutcome{State: profile.LinkUnresolved, Ref: "ord-gone"},
			},
			{
				Review: domain.Review{ID: "r-3", Rating: 4, ReviewerName: "Pham Thi Dung", CreatedAt: now},
				Stars:  domain.Stars(4),
				Link:   profile.LinkOutcome{State: profile.LinkNone},
			},
		},
	}
}

func doGet(t *testing.T, router http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetSellerProfile(t *testing.T) {
	svc := new(mockProfileService)
	svc.On("GetSellerProfile", mock.Anything, sellerID, 0).Return(sellerSummary(), nil)

	rec := doGet(t, newTestRouter(svc), "/api/v1/sellers/"+sellerID+"/profile")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data SellerProfileView `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	view := resp.Data
	assert.Equal(t, sellerID, view.Seller.ID)
	assert.Equal(t, "Nguyen Van An", view.Seller.FullName)

	require.Len(t, view.ActiveListing, 1)
	assert.Equal(t, "260.000.000 ₫", view.ActiveListing[0].Amount)
	require.NotNil(t, view.ActiveListing[0].Listing)
	assert.Equal(t, "VinFast", view.ActiveListing[0].Listing.Brand)

	require.Len(t, view.SoldListings, 1)
	assert.Nil(t, view.SoldListings[0].Listing)

	// Average rounded to one decimal for display.
	assert.InDelta(t, 4.5, view.AverageRating, 1e-9)
	assert.Equal(t, 3, view.TotalReviews)
	assert.Equal(t, StarsView{Full: 4, Half: 0, Empty: 1}, view.Stars)

	require.Len(t, view.Reviews, 3)

	resolved := view.Reviews[0]
	require.NotNil(t, resolved.Order)
	assert.Equal(t, "tx-2", resolved.Order.ID)
	assert.Equal(t, "90.000.000 ₫", resolved.Order.Amount)
	require.NotNil(t, resolved.Order.Listing)
	assert.Equal(t, "VF e34", resolved.Order.Listing.Model)
	assert.Empty(t, resolved.OrderRef)
	assert.Equal(t, StarsView{Full: 4, Half: 1, Empty: 0}, resolved.Stars)

	unresolved := view.Reviews[1]
	assert.Nil(t, unresolved.Order)
	assert.Equal(t, "ord-gone", unresolved.OrderRef)

	none := view.Reviews[2]
	assert.Nil(t, none.Order)
	assert.Empty(t, none.OrderRef)

	svc.AssertExpectations(t)
}

func TestGetBuyerProfile(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	summary := &profile.Summary{
		Party: domain.Party{ID: buyerID, FullName: "Tran Thi Binh", Role: domain.RoleBuyer},
		Buckets: profile.Buckets{
			Completed: []domain.Transaction{
				{ID: "tx-9", Amount: 120_000_000, Status: domain.TransactionStatusCompleted, CreatedAt: now},
			},
		},
		Rating: domain.RatingSummary{Average: 5, Total: 1},
		Stars:  domain.Stars(5),
	}

	svc := new(mockProfileService)
	svc.On("GetBuyerProfile", mock.Anything, buyerID, 0).Return(summary, nil)

	rec := doGet(t, newTestRouter(svc), "/api/v1/buyers/"+buyerID+"/profile")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data BuyerProfileView `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, buyerID, resp.Data.Buyer.ID)
	require.Len(t, resp.Data.SuccessfulPurchases, 1)
	assert.Equal(t, "120.000.000 ₫", resp.Data.SuccessfulPurchases[0].Amount)
	assert.NotNil(t, resp.Data.Reviews)
	assert.Empty(t, resp.Data.Reviews)
}

func TestGetSellerProfileInvalidID(t *testing.T) {
	svc := new(mockProfileService)

	rec := doGet(t, newTestRouter(svc), "/api/v1/sellers/not-a-uuid/profile")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "GetSellerProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetSellerProfileNotFound(t *testing.T) {
	svc := new(mockProfileService)
	svc.On("GetSellerProfile", mock.Anything, sellerID, 0).Return(nil, apperrors.NotFound("party", sellerID))

	rec := doGet(t, newTestRouter(svc), "/api/v1/sellers/"+sellerID+"/profile")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp httputil.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestGetSellerProfileRecentParam(t *testing.T) {
	svc := new(mockProfileService)
	svc.On("GetSellerProfile", mock.Anything, sellerID, 10).Return(sellerSummary(), nil)

	rec := doGet(t, newTestRouter(svc), "/api/v1/sellers/"+sellerID+"/profile?recent=10")

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestGetSellerProfileRecentParamInvalid(t *testing.T) {
	svc := new(mockProfileService)

	tests := []struct {
		name  string
		query string
	}{
		{name: "not an integer", query: "recent=abc"},
		{name: "zero", query: "recent=0"},
		{name: "too large", query: "recent=500"},
		{name: "negative", query: "recent=-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(t, newTestRouter(svc), "/api/v1/sellers/"+sellerID+"/profile?"+tt.query)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	svc.AssertNotCalled(t, "GetSellerProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetBuyerProfileServiceUnavailable(t *testing.T) {
	svc := new(mockProfileService)
	svc.On("GetBuyerProfile", mock.Anything, buyerID, 0).Return(nil, apperrors.Unavailable("user service is temporarily unavailable"))

	rec := doGet(t, newTestRouter(svc), "/api/v1/buyers/"+buyerID+"/profile")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestContentTypeJSONRejectsXML(t *testing.T) {
	svc := new(mockProfileService)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sellers/"+sellerID+"/profile", nil)
	req.Header.Set("Content-Type", "application/xml")
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}
