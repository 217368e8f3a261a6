package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CompanySalesRow aggregates one business account's sales: how many coupons
// it sold, the gross amount paid by buyers and how that splits between the
// platform and the business.
type CompanySalesRow struct {
	BusinessID   uuid.UUID       `json:"business_id"`
	BusinessName string          `json:"business_name"`
	CouponsSold  int64           `json:"coupons_sold"`
	GrossSales   decimal.Decimal `json:"gross_sales"`
	PlatformGain decimal.Decimal `json:"platform_gain"`
	BusinessGain decimal.Decimal `json:"business_gain"`
}

type CompanyOfferRow struct {
	OfferID      uuid.UUID       `json:"offer_id"`
	Title        string          `json:"title"`
	CouponsSold  int64           `json:"coupons_sold"`
	GrossSales   decimal.Decimal `json:"gross_sales"`
	PlatformGain decimal.Decimal `json:"platform_gain"`
	BusinessGain decimal.Decimal `json:"business_gain"`
}

type CompanyDetailReport struct {
	Company CompanySalesRow    `json:"company"`
	Offers  []*CompanyOfferRow `json:"offers"`
}

type ReportQueries interface {
	SalesByCompany(ctx context.Context) ([]*CompanySalesRow, error)
	CompanyDetail(ctx context.Context, businessID uuid.UUID) (*CompanyDetailReport, error)
}

type ReportReadStore interface {
	SalesByCompany(ctx context.Context) ([]*CompanySalesRow, error)
	CompanySales(ctx context.Context, businessID uuid.UUID) (*CompanySalesRow, error)
	SalesByOffer(ctx context.Context, businessID uuid.UUID) ([]*CompanyOfferRow, error)
}

type reportQueriesImpl struct {
	store ReportReadStore
}

func NewReportQueries(store ReportReadStore) ReportQueries {
	return &reportQueriesImpl{store: store}
}

func (q *reportQueriesImpl) SalesByCompany(ctx context.Context) ([]*CompanySalesRow, error) {
	return q.store.SalesByCompany(ctx)
}

func (q *reportQueriesImpl) CompanyDetail(ctx context.Context, businessID uuid.UUID) (*CompanyDetailReport, error) {
	company, err := q.store.CompanySales(ctx, businessID)
	if err != nil {
		return nil, err
	}
	offers, err := q.store.SalesByOffer(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return &CompanyDetailReport{Company: *company, Offers: offers}, nil
}
