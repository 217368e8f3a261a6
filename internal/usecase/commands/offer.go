package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cuponera/internal/domain/offer"
	"cuponera/internal/domain/user"
	"cuponera/internal/infra"
	"cuponera/internal/pkg/errs"
	"cuponera/internal/pkg/patch"
	"cuponera/internal/usecase/shared"
)

var (
	ErrOfferNotFound   = errs.New("offer not found")
	ErrNotOfferOwner   = errs.New("offer belongs to another business")
	ErrOfferHasCoupons = errs.New("offer has issued coupons")
	ErrOfferValidation = errs.New("invalid offer data")
)

// Actor identifies who is executing a command.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsAdmin() bool { return a.Role == user.RoleAdmin }

type CreateOfferCommand struct {
	Title        string
	Description  *string
	RegularPrice decimal.Decimal
	OfferPrice   decimal.Decimal
	StartsAt     time.Time
	EndsAt       time.Time
	RedeemBy     time.Time
	Quantity     *int32
	Status       *string
}

type UpdateOfferCommand struct {
	Title        *string
	Description  *string
	RegularPrice *decimal.Decimal
	OfferPrice   *decimal.Decimal
	StartsAt     *time.Time
	EndsAt       *time.Time
	RedeemBy     *time.Time
	Quantity     *int32
	Status       *string
}

type OfferCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, cmd CreateOfferCommand) (uuid.UUID, error)
	// Update reports whether a write actually happened; a patch that
	// changes nothing is a no-op.
	Update(ctx context.Context, actor Actor, offerID uuid.UUID, cmd UpdateOfferCommand) (bool, error)
	Delete(ctx context.Context, actor Actor, offerID uuid.UUID) error
}

type offerCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewOfferCommands(uow shared.UnitOfWork) OfferCommands {
	return &offerCommandsImpl{uow: uow}
}

func (c *offerCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, cmd CreateOfferCommand) (uuid.UUID, error) {
	title, err := offer.NewTitle(cmd.Title)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrOfferValidation)
	}
	pricing, err := offer.NewPricing(cmd.RegularPrice, cmd.OfferPrice)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrOfferValidation)
	}
	window, err := offer.NewWindow(cmd.StartsAt, cmd.EndsAt, cmd.RedeemBy)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrOfferValidation)
	}
	quantity, err := offer.NewQuantity(cmd.Quantity)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrOfferValidation)
	}
	status := offer.StatusAvailable
	if cmd.Status != nil {
		if status, err = offer.NewStatus(*cmd.Status); err != nil {
			return uuid.Nil, errs.Mark(err, ErrOfferValidation)
		}
	}

	newOffer := offer.NewOffer(ownerID, title, pricing, window, quantity, cmd.Description, status)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Offers().Create(ctx, newOffer)
	})
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to create offer")
	}
	return newOffer.ID(), nil
}

func (c *offerCommandsImpl) Update(ctx context.Context, actor Actor, offerID uuid.UUID, cmd UpdateOfferCommand) (bool, error) {
	var updated bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Offers().FindByID(ctx, offerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrOfferNotFound)
			}
			return err
		}
		if !current.IsOwnedBy(actor.ID) && !actor.IsAdmin() {
			return ErrNotOfferOwner
		}

		merged, err := mergeOffer(current, cmd)
		if err != nil {
			return err
		}
		if merged.Equal(current) {
			return nil
		}
		if err := tx.Offers().Update(ctx, merged); err != nil {
			return err
		}
		updated = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

func (c *offerCommandsImpl) Delete(ctx context.Context, actor Actor, offerID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Offers().FindByID(ctx, offerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrOfferNotFound)
			}
			return err
		}
		if !current.IsOwnedBy(actor.ID) && !actor.IsAdmin() {
			return ErrNotOfferOwner
		}

		if err := tx.Offers().Delete(ctx, offerID); err != nil {
			// Sold coupons reference the offer and block deletion
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrOfferHasCoupons)
			}
			return err
		}
		return nil
	})
}

// mergeOffer applies the partial update on top of the stored offer,
// re-validating the combined state.
func mergeOffer(current *offer.Offer, cmd UpdateOfferCommand) (*offer.Offer, error) {
	title, err := offer.NewTitle(patch.Coalesce(cmd.Title, current.Title().Value()))
	if err != nil {
		return nil, errs.Mark(err, ErrOfferValidation)
	}
	pricing, err := offer.NewPricing(
		patch.Coalesce(cmd.RegularPrice, current.Pricing().RegularPrice()),
		patch.Coalesce(cmd.OfferPrice, current.Pricing().OfferPrice()),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrOfferValidation)
	}
	window, err := offer.NewWindow(
		patch.Coalesce(cmd.StartsAt, current.Window().StartsAt()),
		patch.Coalesce(cmd.EndsAt, current.Window().EndsAt()),
		patch.Coalesce(cmd.RedeemBy, current.Window().RedeemBy()),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrOfferValidation)
	}

	quantity := current.Quantity()
	if cmd.Quantity != nil {
		if quantity, err = offer.NewQuantity(cmd.Quantity); err != nil {
			return nil, errs.Mark(err, ErrOfferValidation)
		}
	}

	status := current.Status()
	if cmd.Status != nil {
		if status, err = offer.NewStatus(*cmd.Status); err != nil {
			return nil, errs.Mark(err, ErrOfferValidation)
		}
	}

	description := current.Description()
	if cmd.Description != nil {
		description = cmd.Description
	}

	return offer.ReconstructOffer(
		current.ID(), current.OwnerID(),
		title, pricing, window,
		quantity, description, status,
		current.CreatedAt(), current.UpdatedAt(),
	), nil
}
