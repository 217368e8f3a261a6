package response

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cuponera/internal/usecase/queries"
)

type PurchaseResponse struct {
	CouponID          uuid.UUID       `json:"coupon_id"`
	Code              string          `json:"code"`
	ReceiptNo         string          `json:"receipt_no"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	PlatformFeeAmount decimal.Decimal `json:"platform_fee_amount"`
	BusinessAmount    decimal.Decimal `json:"business_amount"`
}

type CouponListResponse struct {
	Coupons    []*queries.CouponView `json:"coupons"`
	NextCursor *string               `json:"next_cursor,omitempty"`
}

func NewCouponListResponse(views []*queries.CouponView, next *queries.Cursor) CouponListResponse {
	resp := CouponListResponse{Coupons: views}
	if resp.Coupons == nil {
		resp.Coupons = []*queries.CouponView{}
	}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}
