package offer

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTitle        = errors.New("title is required and must be at most 140 characters")
	ErrNegativePrice       = errors.New("prices cannot be negative")
	ErrOfferAboveRegular   = errors.New("offer price must not exceed regular price")
	ErrInvalidDateOrder    = errors.New("dates must satisfy starts_at <= ends_at <= redeem_by")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrInvalidStatus       = errors.New("invalid offer status")
)

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 140 {
		return Title{}, ErrInvalidTitle
	}
	return Title{value: s}, nil
}

func (t Title) Value() string {
	return t.value
}

// Pricing keeps the pair of prices valid together: both non-negative and
// the discounted price never above the regular one.
type Pricing struct {
	regularPrice decimal.Decimal
	offerPrice   decimal.Decimal
}

func NewPricing(regular, offered decimal.Decimal) (Pricing, error) {
	if regular.IsNegative() || offered.IsNegative() {
		return Pricing{}, ErrNegativePrice
	}
	if offered.GreaterThan(regular) {
		return Pricing{}, ErrOfferAboveRegular
	}
	return Pricing{
		regularPrice: regular.Round(2),
		offerPrice:   offered.Round(2),
	}, nil
}

func (p Pricing) RegularPrice() decimal.Decimal { return p.regularPrice }
func (p Pricing) OfferPrice() decimal.Decimal   { return p.offerPrice }

// DiscountPercent is derived, rounded to whole percent. Zero when the
// regular price is zero.
func (p Pricing) DiscountPercent() int {
	if p.regularPrice.IsZero() {
		return 0
	}
	diff := p.regularPrice.Sub(p.offerPrice)
	return int(diff.Div(p.regularPrice).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

// Window is the offer's sale window plus the redeem deadline, date precision.
type Window struct {
	startsAt time.Time
	endsAt   time.Time
	redeemBy time.Time
}

func NewWindow(startsAt, endsAt, redeemBy time.Time) (Window, error) {
	startsAt = truncateToDate(startsAt)
	endsAt = truncateToDate(endsAt)
	redeemBy = truncateToDate(redeemBy)

	if endsAt.Before(startsAt) || redeemBy.Before(endsAt) {
		return Window{}, ErrInvalidDateOrder
	}
	return Window{startsAt: startsAt, endsAt: endsAt, redeemBy: redeemBy}, nil
}

func (w Window) StartsAt() time.Time { return w.startsAt }
func (w Window) EndsAt() time.Time   { return w.endsAt }
func (w Window) RedeemBy() time.Time { return w.redeemBy }

func (w Window) Contains(t time.Time) bool {
	day := truncateToDate(t)
	return !day.Before(w.startsAt) && !day.After(w.endsAt)
}

func NewQuantity(q *int32) (*int32, error) {
	if q != nil && *q < 1 {
		return nil, ErrInvalidQuantity
	}
	return q, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
