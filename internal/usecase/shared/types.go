package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cuponera/internal/domain/offer"
)

// OfferPurchaseSnapshot is the locked state a purchase decision runs against.
type OfferPurchaseSnapshot struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Title          string
	RegularPrice   decimal.Decimal
	OfferPrice     decimal.Decimal
	StartsAt       time.Time
	EndsAt         time.Time
	RedeemBy       time.Time
	Quantity       *int32
	TicketsSold    int64
	Status         offer.Status
	OwnerFeePct    decimal.Decimal
}

// SoldOut reports whether the quantity limit has been reached.
func (s *OfferPurchaseSnapshot) SoldOut() bool {
	return s.Quantity != nil && s.TicketsSold >= int64(*s.Quantity)
}

// ActiveAt reports whether the offer is available and inside its sale
// window at t. Quantity is checked separately so callers can report
// sold-out distinctly.
func (s *OfferPurchaseSnapshot) ActiveAt(t time.Time) bool {
	if s.Status != offer.StatusAvailable {
		return false
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(s.StartsAt) && !day.After(s.EndsAt)
}
