//go:build unit

package offer_test

import (
	"testing"
	"time"

	"cuponera/internal/domain/offer"
	"cuponera/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y int, m time.Month, dd int) time.Time {
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}

func TestNewPricing(t *testing.T) {
	tests := []struct {
		name    string
		regular string
		offered string
		errIs   error
	}{
		{name: "discounted", regular: "10.00", offered: "6.00"},
		{name: "equal prices", regular: "10.00", offered: "10.00"},
		{name: "free offer", regular: "0", offered: "0"},
		{name: "negative regular", regular: "-1", offered: "0", errIs: offer.ErrNegativePrice},
		{name: "negative offered", regular: "10", offered: "-0.01", errIs: offer.ErrNegativePrice},
		{name: "offered above regular", regular: "5.00", offered: "5.01", errIs: offer.ErrOfferAboveRegular},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := offer.NewPricing(d(tt.regular), d(tt.offered))
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPricingDiscountPercent(t *testing.T) {
	tests := []struct {
		name    string
		regular string
		offered string
		want    int
	}{
		{name: "forty percent off", regular: "10.00", offered: "6.00", want: 40},
		{name: "no discount", regular: "10.00", offered: "10.00", want: 0},
		{name: "rounded to nearest", regular: "3.00", offered: "2.00", want: 33},
		{name: "zero regular price", regular: "0", offered: "0", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pricing, err := offer.NewPricing(d(tt.regular), d(tt.offered))
			require.NoError(t, err)
			assert.Equal(t, tt.want, pricing.DiscountPercent())
		})
	}
}

func TestNewWindow(t *testing.T) {
	start := day(2026, 8, 1)
	end := day(2026, 8, 31)
	redeem := day(2026, 9, 30)

	t.Run("valid window", func(t *testing.T) {
		w, err := offer.NewWindow(start, end, redeem)
		require.NoError(t, err)
		assert.Equal(t, start, w.StartsAt())
		assert.Equal(t, end, w.EndsAt())
	})

	t.Run("single day window", func(t *testing.T) {
		_, err := offer.NewWindow(start, start, start)
		assert.NoError(t, err)
	})

	t.Run("time of day is dropped", func(t *testing.T) {
		w, err := offer.NewWindow(start.Add(23*time.Hour), end, redeem)
		require.NoError(t, err)
		assert.Equal(t, start, w.StartsAt())
	})

	t.Run("ends before starts", func(t *testing.T) {
		_, err := offer.NewWindow(end, start, redeem)
		assert.ErrorIs(t, err, offer.ErrInvalidDateOrder)
	})

	t.Run("redeem before ends", func(t *testing.T) {
		_, err := offer.NewWindow(start, end, day(2026, 8, 30))
		assert.ErrorIs(t, err, offer.ErrInvalidDateOrder)
	})
}

func TestWindowContains(t *testing.T) {
	w, err := offer.NewWindow(day(2026, 8, 1), day(2026, 8, 31), day(2026, 9, 30))
	require.NoError(t, err)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{name: "first day", at: day(2026, 8, 1), want: true},
		{name: "last day late evening", at: time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC), want: true},
		{name: "day before start", at: day(2026, 7, 31), want: false},
		{name: "day after end", at: day(2026, 9, 1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Contains(tt.at))
		})
	}
}

func TestOfferSoldOut(t *testing.T) {
	qty := int32(3)

	t.Run("limited offer sells out", func(t *testing.T) {
		o, err := builder.NewOfferBuilder().WithQuantity(&qty).BuildDomain()
		require.NoError(t, err)
		assert.False(t, o.SoldOut(2))
		assert.True(t, o.SoldOut(3))
		assert.True(t, o.SoldOut(4))
	})

	t.Run("unlimited offer never sells out", func(t *testing.T) {
		o, err := builder.NewOfferBuilder().WithQuantity(nil).BuildDomain()
		require.NoError(t, err)
		assert.False(t, o.SoldOut(1_000_000))
	})
}

func TestOfferVisibleAt(t *testing.T) {
	inWindow := time.Now().UTC()
	qty := int32(3)

	t.Run("available inside window", func(t *testing.T) {
		o, err := builder.NewOfferBuilder().WithQuantity(&qty).BuildDomain()
		require.NoError(t, err)
		assert.True(t, o.VisibleAt(inWindow, 0))
	})

	t.Run("hidden when unavailable", func(t *testing.T) {
		o, err := builder.NewOfferBuilder().AsUnavailable().BuildDomain()
		require.NoError(t, err)
		assert.False(t, o.VisibleAt(inWindow, 0))
	})

	t.Run("hidden when sold out", func(t *testing.T) {
		o, err := builder.NewOfferBuilder().WithQuantity(&qty).BuildDomain()
		require.NoError(t, err)
		assert.False(t, o.VisibleAt(inWindow, 3))
	})

	t.Run("hidden outside window", func(t *testing.T) {
		o, err := builder.NewOfferBuilder().BuildDomain()
		require.NoError(t, err)
		assert.False(t, o.VisibleAt(inWindow.AddDate(0, 0, 30), 0))
	})
}
