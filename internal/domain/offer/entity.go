package offer

import (
	"time"

	"github.com/google/uuid"
)

// Offer aggregate. The sales counters (purchases_count, tickets_sold,
// revenue_cents) live only in the database and are incremented inside the
// purchase transaction; they are never read-modify-written here.
type Offer struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	title       Title
	pricing     Pricing
	window      Window
	quantity    *int32
	description *string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewOffer(
	ownerID uuid.UUID,
	title Title,
	pricing Pricing,
	window Window,
	quantity *int32,
	description *string,
	status Status,
) *Offer {
	return &Offer{
		id:          uuid.New(),
		ownerID:     ownerID,
		title:       title,
		pricing:     pricing,
		window:      window,
		quantity:    quantity,
		description: description,
		status:      status,
	}
}

func ReconstructOffer(
	id, ownerID uuid.UUID,
	title Title,
	pricing Pricing,
	window Window,
	quantity *int32,
	description *string,
	status Status,
	createdAt, updatedAt time.Time,
) *Offer {
	return &Offer{
		id:          id,
		ownerID:     ownerID,
		title:       title,
		pricing:     pricing,
		window:      window,
		quantity:    quantity,
		description: description,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// SoldOut reports whether the issued-coupon count has exhausted the
// inventory. Unlimited offers (nil quantity) never sell out.
func (o *Offer) SoldOut(issuedCoupons int64) bool {
	if o.quantity == nil {
		return false
	}
	return issuedCoupons >= int64(*o.quantity)
}

// VisibleAt is the public-catalog rule: available, inside the sale window
// and not sold out.
func (o *Offer) VisibleAt(t time.Time, issuedCoupons int64) bool {
	return o.status == StatusAvailable && o.window.Contains(t) && !o.SoldOut(issuedCoupons)
}

func (o *Offer) IsOwnedBy(userID uuid.UUID) bool {
	return o.ownerID == userID
}

// Equal compares the stored state of two offers, ignoring timestamps. Used
// to detect no-op partial updates.
func (o *Offer) Equal(other *Offer) bool {
	return o.title == other.title &&
		o.pricing.RegularPrice().Equal(other.pricing.RegularPrice()) &&
		o.pricing.OfferPrice().Equal(other.pricing.OfferPrice()) &&
		o.window.StartsAt().Equal(other.window.StartsAt()) &&
		o.window.EndsAt().Equal(other.window.EndsAt()) &&
		o.window.RedeemBy().Equal(other.window.RedeemBy()) &&
		equalInt32Ptr(o.quantity, other.quantity) &&
		equalStringPtr(o.description, other.description) &&
		o.status == other.status
}

func equalInt32Ptr(a, b *int32) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (o *Offer) ID() uuid.UUID        { return o.id }
func (o *Offer) OwnerID() uuid.UUID   { return o.ownerID }
func (o *Offer) Title() Title         { return o.title }
func (o *Offer) Pricing() Pricing     { return o.pricing }
func (o *Offer) Window() Window       { return o.window }
func (o *Offer) Quantity() *int32     { return o.quantity }
func (o *Offer) Description() *string { return o.description }
func (o *Offer) Status() Status       { return o.status }
func (o *Offer) CreatedAt() time.Time { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time { return o.updatedAt }
