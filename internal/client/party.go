package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/nmbt2910/iheartev-sub001/internal/domain"
	apperrors "github.com/nmbt2910/iheartev-sub001/pkg/errors"
	"github.com/nmbt2910/iheartev-sub001/pkg/httpclient"
)

// HTTPDoer is the interface for executing HTTP requests.
// Both httpclient.Client and httpclient.CircuitBreakerClient satisfy this.
type HTTPDoer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// PartyClient fetches party records from the user service over HTTP.
type PartyClient struct {
	httpClient HTTPDoer
	baseURL    string
}

// NewPartyClient creates a client against the user service base URL.
func NewPartyClient(httpClient HTTPDoer, baseURL string) *PartyClient {
	return &PartyClient{httpClient: httpClient, baseURL: baseURL}
}

// partyResponse is the user service's response envelope for a party lookup.
type partyResponse struct {
	Data *domain.Party `json:"data"`
}

// GetParty fetches a party by ID. A 404 from the user service maps to
// ErrNotFound; a tripped circuit breaker maps to ErrServiceUnavail.
func (c *PartyClient) GetParty(ctx context.Context, partyID string) (*domain.Party, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/parties/"+partyID, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create party request: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		if errors.Is(err, httpclient.ErrCircuitOpen) {
			return nil, apperrors.Unavailable("user service is temporarily unavailable")
		}
		return nil, fmt.Errorf("call user service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, httpclient.ParseResponseError(resp, "user")
	}

	var partyResp partyResponse
	if err := json.NewDecoder(resp.Body).Decode(&partyResp); err != nil {
		return nil, fmt.Errorf("decode party response: %w", err)
	}
	if partyResp.Data == nil {
		return nil, fmt.Errorf("user service returned empty party body")
	}

	return partyResp.Data, nil
}
