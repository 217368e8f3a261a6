package coupon

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCardNumber = errors.New("card number must be 13-19 digits")
	ErrInvalidExpMonth   = errors.New("expiration month must be between 1 and 12")
	ErrInvalidExpYear    = errors.New("expiration year must not be in the past")
	ErrCardExpired       = errors.New("card is expired")
	ErrInvalidCVC        = errors.New("cvc must be 3-4 digits")
)

var (
	cardNumberRegex = regexp.MustCompile(`^[0-9]{13,19}$`)
	cvcRegex        = regexp.MustCompile(`^[0-9]{3,4}$`)
)

// Card holds a validated payment card. Only the derived brand and the last
// four digits ever leave this value; the full number and cvc are never
// persisted or echoed.
type Card struct {
	number   string
	expMonth int
	expYear  int
}

func NewCard(number string, expMonth, expYear int, cvc string, now time.Time) (Card, error) {
	if !cardNumberRegex.MatchString(number) {
		return Card{}, ErrInvalidCardNumber
	}
	if expMonth < 1 || expMonth > 12 {
		return Card{}, ErrInvalidExpMonth
	}
	if expYear < now.Year() {
		return Card{}, ErrInvalidExpYear
	}
	if !cvcRegex.MatchString(cvc) {
		return Card{}, ErrInvalidCVC
	}

	// Card is valid through the last day of its expiration month.
	endOfMonth := time.Date(expYear, time.Month(expMonth), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 1, 0).Add(-time.Second)
	if endOfMonth.Before(now) {
		return Card{}, ErrCardExpired
	}

	return Card{number: number, expMonth: expMonth, expYear: expYear}, nil
}

func (c Card) Brand() string {
	switch c.number[0] {
	case '4':
		return "visa"
	case '5':
		return "mastercard"
	case '3':
		return "amex"
	default:
		return "card"
	}
}

func (c Card) Last4() string {
	return c.number[len(c.number)-4:]
}

// FeeSplit is the payment snapshot written onto a coupon: the platform's cut
// and the business remainder always sum back to the unit price exactly,
// because the business amount is computed by subtraction.
type FeeSplit struct {
	unitPrice      decimal.Decimal
	feePercent     decimal.Decimal
	feeAmount      decimal.Decimal
	businessAmount decimal.Decimal
}

func NewFeeSplit(unitPrice, feePercent decimal.Decimal) FeeSplit {
	feeAmount := unitPrice.Mul(feePercent).Div(decimal.NewFromInt(100)).Round(2)
	return FeeSplit{
		unitPrice:      unitPrice.Round(2),
		feePercent:     feePercent.Round(2),
		feeAmount:      feeAmount,
		businessAmount: unitPrice.Round(2).Sub(feeAmount),
	}
}

func (f FeeSplit) UnitPrice() decimal.Decimal      { return f.unitPrice }
func (f FeeSplit) FeePercent() decimal.Decimal     { return f.feePercent }
func (f FeeSplit) FeeAmount() decimal.Decimal      { return f.feeAmount }
func (f FeeSplit) BusinessAmount() decimal.Decimal { return f.businessAmount }

// RevenueCents is the full sale value in cents for the offer counter.
func (f FeeSplit) RevenueCents() int64 {
	return f.unitPrice.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

const (
	codeLength  = 12
	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateCode produces a random redemption code. Uniqueness is enforced by
// the database; callers retry on collision.
func GenerateCode() (string, error) {
	buf := make([]byte, codeLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeCharset))))
		if err != nil {
			return "", err
		}
		buf[i] = codeCharset[n.Int64()]
	}
	return string(buf), nil
}

// GenerateReceiptNo produces a human-readable receipt number such as
// R-20260828-483920. Uniqueness is enforced by the database.
func GenerateReceiptNo(now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("R-%s-%06d", now.Format("20060102"), n.Int64()), nil
}
