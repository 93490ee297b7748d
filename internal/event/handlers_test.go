package event

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmbt2910/iheartev-sub001/pkg/kafka"
)

type recordingInvalidator struct {
	invalidated []string
}

func (r *recordingInvalidator) Invalidate(_ context.Context, partyID string) {
	r.invalidated = append(r.invalidated, partyID)
}

func newHandlers() (*Handlers, *recordingInvalidator) {
	rec := &recordingInvalidator{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandlers(rec, logger), rec
}

func TestHandleDispatch(t *testing.T) {
	h, rec := newHandlers()

	ev, err := kafka.NewEvent(EventTypeReviewCreated, "r-1", "review", "review-service", map[string]string{
		"review_id": "r-1",
		"party_id":  "p-1",
	})
	require.NoError(t, err)

	require.NoError(t, h.Handle(t.Context(), ev))
	assert.Equal(t, []string{"p-1"}, rec.invalidated)
}

func TestHandleUnknownEventType(t *testing.T) {
	h, rec := newHandlers()

	ev, err := kafka.NewEvent("listing.deleted", "l-1", "listing", "listing-service", nil)
	require.NoError(t, err)

	require.NoError(t, h.Handle(t.Context(), ev))
	assert.Empty(t, rec.invalidated)
}

func TestHandleReviewCreated(t *testing.T) {
	h, rec := newHandlers()

	ev, err := kafka.NewEvent("review.created", "r-1", "review", "review-service", map[string]string{
		"review_id": "r-1",
		"party_id":  "p-1",
	})
	require.NoError(t, err)

	require.NoError(t, h.HandleReviewCreated(t.Context(), ev))
	assert.Equal(t, []string{"p-1"}, rec.invalidated)
}

func TestHandleReviewCreatedMissingParty(t *testing.T) {
	h, rec := newHandlers()

	ev, err := kafka.NewEvent("review.created", "r-1", "review", "review-service", map[string]string{
		"review_id": "r-1",
	})
	require.NoError(t, err)

	assert.Error(t, h.HandleReviewCreated(t.Context(), ev))
	assert.Empty(t, rec.invalidated)
}

func TestHandleOrderStatusChanged(t *testing.T) {
	h, rec := newHandlers()

	ev, err := kafka.NewEvent("order.status_changed", "o-1", "order", "order-service", map[string]string{
		"order_id":  "o-1",
		"buyer_id":  "p-buyer",
		"seller_id": "p-seller",
		"status":    "completed",
	})
	require.NoError(t, err)

	require.NoError(t, h.HandleOrderStatusChanged(t.Context(), ev))
	assert.Equal(t, []string{"p-seller", "p-buyer"}, rec.invalidated)
}

func TestHandleOrderStatusChangedOneParty(t *testing.T) {
	h, rec := newHandlers()

	ev, err := kafka.NewEvent("order.status_changed", "o-1", "order", "order-service", map[string]string{
		"order_id":  "o-1",
		"seller_id": "p-seller",
	})
	require.NoError(t, err)

	require.NoError(t, h.HandleOrderStatusChanged(t.Context(), ev))
	assert.Equal(t, []string{"p-seller"}, rec.invalidated)
}

func TestHandleOrderStatusChangedNoParties(t *testing.T) {
	h, rec := newHandlers()

	ev, err := kafka.NewEvent("order.status_changed", "o-1", "order", "order-service", map[string]string{
		"order_id": "o-1",
	})
	require.NoError(t, err)

	assert.Error(t, h.HandleOrderStatusChanged(t.Context(), ev))
	assert.Empty(t, rec.invalidated)
}
