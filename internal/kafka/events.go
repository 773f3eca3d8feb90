package kafka

import (
	"time"

	"github.com/nguyentranbao-ct/price-scout/internal/models"
)

const (
	EventTypeAccountCreated  = "account.created"
	EventTypeFavoriteAdded   = "favorite.added"
	EventTypeFavoriteRemoved = "favorite.removed"
)

// Event is the envelope for every domain event published by the service.
// Events are informational: consumers must tolerate loss, publishing is
// best-effort and never fails the originating use case.
type Event struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	UserID    string          `json:"user_id"`
	ProductID string          `json:"product_id,omitempty"`
	Product   *models.Product `json:"product,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}
