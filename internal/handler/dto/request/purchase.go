package request

import (
	"github.com/google/uuid"

	"cuponera/internal/usecase/commands"
)

type BuyOfferRequest struct {
	CardNumber   string `json:"card_number" binding:"required,numeric,min=13,max=19"`
	CardExpMonth int    `json:"card_exp_month" binding:"required,min=1,max=12"`
	CardExpYear  int    `json:"card_exp_year" binding:"required"`
	CardCVC      string `json:"card_cvc" binding:"required,numeric,min=3,max=4"`
}

func (r *BuyOfferRequest) ToCommand(offerID uuid.UUID) commands.PurchaseCommand {
	return commands.PurchaseCommand{
		OfferID: offerID,
		Card: commands.CardInput{
			Number:   r.CardNumber,
			ExpMonth: r.CardExpMonth,
			ExpYear:  r.CardExpYear,
			CVC:      r.CardCVC,
		},
	}
}
