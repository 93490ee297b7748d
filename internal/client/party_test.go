package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmbt2910/iheartev-sub001/internal/domain"
	apperrors "github.com/nmbt2910/iheartev-sub001/pkg/errors"
	"github.com/nmbt2910/iheartev-sub001/pkg/httpclient"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *PartyClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	hc := httpclient.New(httpclient.Config{
		Timeout:         2 * time.Second,
		MaxRetries:      0,
		RetryWaitMin:    time.Millisecond,
		RetryWaitMax:    time.Millisecond,
		MaxConnsPerHost: 10,
	})
	return NewPartyClient(hc, srv.URL)
}

func TestGetParty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/parties/p-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": domain.Party{
				ID:       "p-1",
				FullName: "Nguyen Van An",
				Email:    "an.nguyen@example.com",
				Role:     domain.RoleSeller,
			},
		})
	})

	party, err := c.GetParty(t.Context(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, "p-1", party.ID)
	assert.Equal(t, "Nguyen Van An", party.FullName)
	assert.Equal(t, domain.RoleSeller, party.Role)
}

func TestGetPartyNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"code": "NOT_FOUND", "message": "party not found"},
		})
	})

	_, err := c.GetParty(t.Context(), "p-missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetPartyEmptyBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":null}`))
	})

	_, err := c.GetParty(t.Context(), "p-1")
	assert.Error(t, err)
}

func TestGetPartyServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.GetParty(t.Context(), "p-1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}
