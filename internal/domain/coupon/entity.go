package coupon

import (
	"time"

	"github.com/google/uuid"
)

// PerOfferPurchaseCap limits how many active coupons one buyer may hold for
// the same offer.
const PerOfferPurchaseCap = 5

// Coupon is one purchase event: immutable once paid except for its status.
type Coupon struct {
	id        uuid.UUID
	offerID   uuid.UUID
	buyerID   uuid.UUID
	code      string
	status    Status
	split     FeeSplit
	paidAt    time.Time
	cardBrand string
	cardLast4 string
	receiptNo string
}

// NewFromPurchase assembles the coupon issued by a successful purchase.
// The card is reduced to its brand and last four digits here; nothing else
// of it survives.
func NewFromPurchase(
	offerID, buyerID uuid.UUID,
	code, receiptNo string,
	split FeeSplit,
	card Card,
	paidAt time.Time,
) *Coupon {
	return &Coupon{
		id:        uuid.New(),
		offerID:   offerID,
		buyerID:   buyerID,
		code:      code,
		status:    StatusActive,
		split:     split,
		paidAt:    paidAt,
		cardBrand: card.Brand(),
		cardLast4: card.Last4(),
		receiptNo: receiptNo,
	}
}

func (c *Coupon) ID() uuid.UUID      { return c.id }
func (c *Coupon) OfferID() uuid.UUID { return c.offerID }
func (c *Coupon) BuyerID() uuid.UUID { return c.buyerID }
func (c *Coupon) Code() string       { return c.code }
func (c *Coupon) Status() Status     { return c.status }
func (c *Coupon) Split() FeeSplit    { return c.split }
func (c *Coupon) PaidAt() time.Time  { return c.paidAt }
func (c *Coupon) CardBrand() string  { return c.cardBrand }
func (c *Coupon) CardLast4() string  { return c.cardLast4 }
func (c *Coupon) ReceiptNo() string  { return c.receiptNo }
