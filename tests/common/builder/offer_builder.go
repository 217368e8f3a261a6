//go:build unit || e2e

package builder

import (
	"time"

	"cuponera/internal/domain/offer"
	reqdto "cuponera/internal/handler/dto/request"
	"cuponera/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OfferBuilder struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Title        string
	Description  *string
	RegularPrice decimal.Decimal
	OfferPrice   decimal.Decimal
	StartsAt     time.Time
	EndsAt       time.Time
	RedeemBy     time.Time
	Quantity     *int32
	TicketsSold  int64
	Status       string
}

func NewOfferBuilder() *OfferBuilder {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	qty := int32(50)
	return &OfferBuilder{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		Title:        "Two pupusas for one",
		RegularPrice: decimal.NewFromInt(10),
		OfferPrice:   decimal.NewFromInt(6),
		StartsAt:     today.AddDate(0, 0, -1),
		EndsAt:       today.AddDate(0, 0, 7),
		RedeemBy:     today.AddDate(0, 0, 30),
		Quantity:     &qty,
		Status:       "available",
	}
}

func (b *OfferBuilder) BuildDomain() (*offer.Offer, error) {
	title, err := offer.NewTitle(b.Title)
	if err != nil {
		return nil, err
	}
	pricing, err := offer.NewPricing(b.RegularPrice, b.OfferPrice)
	if err != nil {
		return nil, err
	}
	window, err := offer.NewWindow(b.StartsAt, b.EndsAt, b.RedeemBy)
	if err != nil {
		return nil, err
	}
	status, err := offer.NewStatus(b.Status)
	if err != nil {
		return nil, err
	}
	return offer.NewOffer(b.OwnerID, title, pricing, window, b.Quantity, b.Description, status), nil
}

func (b *OfferBuilder) BuildView() *queries.OfferView {
	return &queries.OfferView{
		ID:             b.ID,
		BusinessID:     b.OwnerID,
		BusinessName:   "Test Business",
		Title:          b.Title,
		Description:    b.Description,
		RegularPrice:   b.RegularPrice,
		OfferPrice:     b.OfferPrice,
		StartsAt:       b.StartsAt,
		EndsAt:         b.EndsAt,
		RedeemBy:       b.RedeemBy,
		Quantity:       b.Quantity,
		PurchasesCount: b.TicketsSold,
		TicketsSold:    b.TicketsSold,
		Status:         b.Status,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}

func (b *OfferBuilder) BuildCreateDTO() reqdto.CreateOfferRequest {
	return reqdto.CreateOfferRequest{
		Title:        b.Title,
		Description:  b.Description,
		RegularPrice: b.RegularPrice,
		OfferPrice:   b.OfferPrice,
		StartsAt:     b.StartsAt.Format(time.DateOnly),
		EndsAt:       b.EndsAt.Format(time.DateOnly),
		RedeemBy:     b.RedeemBy.Format(time.DateOnly),
		Quantity:     b.Quantity,
	}
}

func (b *OfferBuilder) WithTitle(title string) *OfferBuilder {
	b.Title = title
	return b
}

func (b *OfferBuilder) WithPrices(regular, offered decimal.Decimal) *OfferBuilder {
	b.RegularPrice = regular
	b.OfferPrice = offered
	return b
}

func (b *OfferBuilder) WithWindow(startsAt, endsAt, redeemBy time.Time) *OfferBuilder {
	b.StartsAt = startsAt
	b.EndsAt = endsAt
	b.RedeemBy = redeemBy
	return b
}

func (b *OfferBuilder) WithOwner(ownerID uuid.UUID) *OfferBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *OfferBuilder) WithQuantity(qty *int32) *OfferBuilder {
	b.Quantity = qty
	return b
}

func (b *OfferBuilder) WithTicketsSold(sold int64) *OfferBuilder {
	b.TicketsSold = sold
	return b
}

func (b *OfferBuilder) AsUnavailable() *OfferBuilder {
	b.Status = "unavailable"
	return b
}
