package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cuponera/internal/domain/businessrequest"
	"cuponera/internal/domain/coupon"
	"cuponera/internal/domain/offer"
	"cuponera/internal/domain/user"
)

// UnitOfWork abstracts transaction management away from use cases.
type UnitOfWork interface {
	// Within executes fn in a read-write transaction. Serialization
	// failures are retried transparently.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly executes fn in a read-only transaction.
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes the write-side repositories bound to the current transaction.
type Tx interface {
	Offers() OfferRepository
	Coupons() CouponRepository
	Users() UserRepository
	BusinessRequests() BusinessRequestRepository
}

type OfferRepository interface {
	Create(ctx context.Context, o *offer.Offer) error
	Update(ctx context.Context, o *offer.Offer) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindForPurchase locks the offer row and returns the snapshot a
	// purchase decision needs, including the owner's fee percent.
	FindForPurchase(ctx context.Context, id uuid.UUID) (*OfferPurchaseSnapshot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
	// RecordSale bumps the sold counter and accumulated revenue.
	RecordSale(ctx context.Context, id uuid.UUID, revenueCents int64) error
}

type CouponRepository interface {
	Create(ctx context.Context, c *coupon.Coupon) error
	CountByOffer(ctx context.Context, offerID uuid.UUID) (int64, error)
	CountActiveByBuyerAndOffer(ctx context.Context, buyerID, offerID uuid.UUID) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
	// FindRoleForUpdate locks the user row for a role transition.
	FindRoleForUpdate(ctx context.Context, id uuid.UUID) (user.Role, error)
	SetRole(ctx context.Context, id uuid.UUID, role user.Role) error
	SetPlatformFee(ctx context.Context, id uuid.UUID, fee decimal.Decimal) error
	CountAdmins(ctx context.Context) (int64, error)
	RecordRoleChange(ctx context.Context, userID, changedBy uuid.UUID, oldRole, newRole user.Role) error
}

type BusinessRequestRepository interface {
	Create(ctx context.Context, r *businessrequest.BusinessRequest) error
	// FindForDecision locks the request row for approval or rejection.
	FindForDecision(ctx context.Context, id uuid.UUID) (*businessrequest.BusinessRequest, error)
	SaveDecision(ctx context.Context, r *businessrequest.BusinessRequest) error
	HasPending(ctx context.Context, userID uuid.UUID) (bool, error)
}
