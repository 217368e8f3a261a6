package request

import (
	"time"

	"github.com/shopspring/decimal"

	"cuponera/internal/usecase/commands"
)

type CreateOfferRequest struct {
	Title        string          `json:"title" binding:"required,max=140"`
	Description  *string         `json:"description,omitempty"`
	RegularPrice decimal.Decimal `json:"regular_price" binding:"required"`
	OfferPrice   decimal.Decimal `json:"offer_price"`
	StartsAt     string          `json:"starts_at" binding:"required"`
	EndsAt       string          `json:"ends_at" binding:"required"`
	RedeemBy     string          `json:"redeem_by" binding:"required"`
	Quantity     *int32          `json:"quantity,omitempty"`
	Status       *string         `json:"status,omitempty"`
}

func (r *CreateOfferRequest) ToCommand() (commands.CreateOfferCommand, error) {
	startsAt, err := time.Parse(time.DateOnly, r.StartsAt)
	if err != nil {
		return commands.CreateOfferCommand{}, err
	}
	endsAt, err := time.Parse(time.DateOnly, r.EndsAt)
	if err != nil {
		return commands.CreateOfferCommand{}, err
	}
	redeemBy, err := time.Parse(time.DateOnly, r.RedeemBy)
	if err != nil {
		return commands.CreateOfferCommand{}, err
	}
	return commands.CreateOfferCommand{
		Title:        r.Title,
		Description:  r.Description,
		RegularPrice: r.RegularPrice,
		OfferPrice:   r.OfferPrice,
		StartsAt:     startsAt,
		EndsAt:       endsAt,
		RedeemBy:     redeemBy,
		Quantity:     r.Quantity,
		Status:       r.Status,
	}, nil
}

type UpdateOfferRequest struct {
	Title        *string          `json:"title,omitempty" binding:"omitempty,max=140"`
	Description  *string          `json:"description,omitempty"`
	RegularPrice *decimal.Decimal `json:"regular_price,omitempty"`
	OfferPrice   *decimal.Decimal `json:"offer_price,omitempty"`
	StartsAt     *string          `json:"starts_at,omitempty"`
	EndsAt       *string          `json:"ends_at,omitempty"`
	RedeemBy     *string          `json:"redeem_by,omitempty"`
	Quantity     *int32           `json:"quantity,omitempty"`
	Status       *string          `json:"status,omitempty"`
}

func (r *UpdateOfferRequest) ToCommand() (commands.UpdateOfferCommand, error) {
	cmd := commands.UpdateOfferCommand{
		Title:        r.Title,
		Description:  r.Description,
		RegularPrice: r.RegularPrice,
		OfferPrice:   r.OfferPrice,
		Quantity:     r.Quantity,
		Status:       r.Status,
	}

	var err error
	if cmd.StartsAt, err = parseDatePtr(r.StartsAt); err != nil {
		return commands.UpdateOfferCommand{}, err
	}
	if cmd.EndsAt, err = parseDatePtr(r.EndsAt); err != nil {
		return commands.UpdateOfferCommand{}, err
	}
	if cmd.RedeemBy, err = parseDatePtr(r.RedeemBy); err != nil {
		return commands.UpdateOfferCommand{}, err
	}
	return cmd, nil
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	parsed, err := time.Parse(time.DateOnly, *s)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
