package request

import (
	"github.com/shopspring/decimal"

	"cuponera/internal/usecase/commands"
)

type SubmitBusinessRequest struct {
	CompanyName        string          `json:"company_name" binding:"required,max=255"`
	NIT                *string         `json:"nit,omitempty"`
	ContactEmail       *string         `json:"contact_email,omitempty" binding:"omitempty,email"`
	ContactPhone       *string         `json:"contact_phone,omitempty"`
	Address            *string         `json:"address,omitempty"`
	Description        *string         `json:"description,omitempty"`
	PlatformFeePercent decimal.Decimal `json:"platform_fee_percent" binding:"required"`
}

func (r *SubmitBusinessRequest) ToCommand() commands.SubmitBusinessRequestCommand {
	return commands.SubmitBusinessRequestCommand{
		CompanyName:        r.CompanyName,
		NIT:                r.NIT,
		ContactEmail:       r.ContactEmail,
		ContactPhone:       r.ContactPhone,
		Address:            r.Address,
		Description:        r.Description,
		PlatformFeePercent: r.PlatformFeePercent,
	}
}
