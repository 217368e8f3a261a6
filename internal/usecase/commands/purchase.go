package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cuponera/internal/domain/coupon"
	"cuponera/internal/infra"
	"cuponera/internal/pkg/clock"
	"cuponera/internal/pkg/errs"
	"cuponera/internal/usecase/shared"
)

var (
	ErrOfferNotPurchasable = errs.New("offer is not purchasable")
	ErrOfferSoldOut        = errs.New("offer is sold out")
	ErrSelfPurchase        = errs.New("businesses cannot buy their own offers")
	ErrPurchaseLimit       = errs.New("active coupon limit reached for this offer")
	ErrInvalidCard         = errs.New("card validation failed")
)

// codeRetries bounds regeneration when a generated coupon code or receipt
// number collides with an existing one.
const codeRetries = 3

type CardInput struct {
	Number   string
	ExpMonth int
	ExpYear  int
	CVC      string
}

type PurchaseCommand struct {
	OfferID uuid.UUID
	Card    CardInput
}

type PurchaseResult struct {
	CouponID          uuid.UUID
	Code              string
	ReceiptNo         string
	UnitPrice         decimal.Decimal
	PlatformFeeAmount decimal.Decimal
	BusinessAmount    decimal.Decimal
}

type PurchaseCommands interface {
	Buy(ctx context.Context, buyerID uuid.UUID, cmd PurchaseCommand) (*PurchaseResult, error)
}

type purchaseCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPurchaseCommands(uow shared.UnitOfWork, clk clock.Clock) PurchaseCommands {
	return &purchaseCommandsImpl{uow: uow, clock: clk}
}

// Buy runs the whole purchase inside one transaction. The offer row is
// locked first, so the quantity and per-buyer cap checks are race-free and
// the counters stay consistent with the issued coupon.
func (c *purchaseCommandsImpl) Buy(ctx context.Context, buyerID uuid.UUID, cmd PurchaseCommand) (*PurchaseResult, error) {
	now := c.clock.Now()

	var result *PurchaseResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Offers().FindForPurchase(ctx, cmd.OfferID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrOfferNotFound)
			}
			return err
		}

		if !snap.ActiveAt(now) {
			return ErrOfferNotPurchasable
		}
		if snap.OwnerID == buyerID {
			return ErrSelfPurchase
		}

		activeCount, err := tx.Coupons().CountActiveByBuyerAndOffer(ctx, buyerID, cmd.OfferID)
		if err != nil {
			return err
		}
		if activeCount >= coupon.PerOfferPurchaseCap {
			return ErrPurchaseLimit
		}

		if snap.SoldOut() {
			return ErrOfferSoldOut
		}

		card, err := coupon.NewCard(cmd.Card.Number, cmd.Card.ExpMonth, cmd.Card.ExpYear, cmd.Card.CVC, now)
		if err != nil {
			return errs.Mark(err, ErrInvalidCard)
		}

		split := coupon.NewFeeSplit(snap.OfferPrice, snap.OwnerFeePct)

		issued, err := c.issueCoupon(ctx, tx, snap.ID, buyerID, split, card)
		if err != nil {
			return err
		}

		if err := tx.Offers().RecordSale(ctx, snap.ID, split.RevenueCents()); err != nil {
			return err
		}

		result = &PurchaseResult{
			CouponID:          issued.ID(),
			Code:              issued.Code(),
			ReceiptNo:         issued.ReceiptNo(),
			UnitPrice:         split.UnitPrice(),
			PlatformFeeAmount: split.FeeAmount(),
			BusinessAmount:    split.BusinessAmount(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// issueCoupon inserts the coupon, regenerating code and receipt number on
// the rare unique collision.
func (c *purchaseCommandsImpl) issueCoupon(
	ctx context.Context,
	tx shared.Tx,
	offerID, buyerID uuid.UUID,
	split coupon.FeeSplit,
	card coupon.Card,
) (*coupon.Coupon, error) {
	now := c.clock.Now()

	var lastErr error
	for attempt := 0; attempt < codeRetries; attempt++ {
		code, err := coupon.GenerateCode()
		if err != nil {
			return nil, errs.Wrap(err, "failed to generate coupon code")
		}
		receiptNo, err := coupon.GenerateReceiptNo(now)
		if err != nil {
			return nil, errs.Wrap(err, "failed to generate receipt number")
		}

		issued := coupon.NewFromPurchase(offerID, buyerID, code, receiptNo, split, card, now)
		if err := tx.Coupons().Create(ctx, issued); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				lastErr = err
				continue
			}
			return nil, err
		}
		return issued, nil
	}
	return nil, errs.Wrap(lastErr, "failed to issue coupon after retries")
}
