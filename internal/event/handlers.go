package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nmbt2910/iheartev-sub001/pkg/kafka"
)

// Invalidator evicts cached profiles for a party. *cache.ProfileCache
// satisfies this.
type Invalidator interface {
	Invalidate(ctx context.Context, partyID string)
}

// Handlers reacts to marketplace events by invalidating cached profiles. The
// service owns no write paths for reviews or orders; consuming the events is
// how it keeps read-side profiles fresh.
type Handlers struct {
	cache  Invalidator
	logger *slog.Logger
}

// NewHandlers creates the event handler set.
func NewHandlers(cache Invalidator, logger *slog.Logger) *Handlers {
	return &Handlers{cache: cache, logger: logger}
}

// reviewCreatedPayload is the data section of iheartev.review.created.
type reviewCreatedPayload struct {
	ReviewID string `json:"review_id"`
	PartyID  string `json:"party_id"`
}

// orderStatusChangedPayload is the data section of iheartev.order.status_changed.
type orderStatusChangedPayload struct {
	OrderID  string `json:"order_id"`
	BuyerID  string `json:"buyer_id"`
	SellerID string `json:"seller_id"`
	Status   string `json:"status"`
}

// HandleReviewCreated evicts the reviewed party's cached profiles.
func (h *Handlers) HandleReviewCreated(ctx context.Context, event *kafka.Event) error {
	var payload reviewCreatedPayload
	if err := event.UnmarshalData(&payload); err != nil {
		return fmt.Errorf("unmarshal review.created payload: %w", err)
	}
	if payload.PartyID == "" {
		return fmt.Errorf("review.created event %s has no party_id", event.EventID)
	}

	h.cache.Invalidate(ctx, payload.PartyID)

	h.logger.InfoContext(ctx, "profile cache invalidated",
		slog.String("trigger", event.EventType),
		slog.String("party_id", payload.PartyID),
		slog.String("review_id", payload.ReviewID),
	)
	return nil
}

// HandleOrderStatusChanged evicts both transaction parties' cached profiles.
func (h *Handlers) HandleOrderStatusChanged(ctx context.Context, event *kafka.Event) error {
	var payload orderStatusChangedPayload
	if err := event.UnmarshalData(&payload); err != nil {
		return fmt.Errorf("unmarshal order.status_changed payload: %w", err)
	}
	if payload.BuyerID == "" && payload.SellerID == "" {
		return fmt.Errorf("order.status_changed event %s names no parties", event.EventID)
	}

	if payload.SellerID != "" {
		h.cache.Invalidate(ctx, payload.SellerID)
	}
	if payload.BuyerID != "" {
		h.cache.Invalidate(ctx, payload.BuyerID)
	}

	h.logger.InfoContext(ctx, "profile cache invalidated",
		slog.String("trigger", event.EventType),
		slog.String("order_id", payload.OrderID),
		slog.String("seller_id", payload.SellerID),
		slog.String("buyer_id", payload.BuyerID),
	)
	return nil
}
