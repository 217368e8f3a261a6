//go:build unit

package commands_test

import (
	"context"

	"cuponera/internal/domain/businessrequest"
	"cuponera/internal/domain/coupon"
	"cuponera/internal/domain/offer"
	"cuponera/internal/domain/user"
	"cuponera/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// stubUoW runs the callback directly against a fixed Tx; transaction
// semantics themselves are covered by the e2e suite.
type stubUoW struct {
	tx shared.Tx
}

func (u *stubUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *stubUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

type stubTx struct {
	offers           *MockOfferRepository
	coupons          *MockCouponRepository
	users            *MockUserRepository
	businessRequests *MockBusinessRequestRepository
}

func newStubTx() *stubTx {
	return &stubTx{
		offers:           &MockOfferRepository{},
		coupons:          &MockCouponRepository{},
		users:            &MockUserRepository{},
		businessRequests: &MockBusinessRequestRepository{},
	}
}

func (t *stubTx) Offers() shared.OfferRepository                     { return t.offers }
func (t *stubTx) Coupons() shared.CouponRepository                   { return t.coupons }
func (t *stubTx) Users() shared.UserRepository                       { return t.users }
func (t *stubTx) BusinessRequests() shared.BusinessRequestRepository { return t.businessRequests }

func (t *stubTx) assertExpectations(tt mock.TestingT) {
	t.offers.AssertExpectations(tt)
	t.coupons.AssertExpectations(tt)
	t.users.AssertExpectations(tt)
	t.businessRequests.AssertExpectations(tt)
}

type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) Create(ctx context.Context, o *offer.Offer) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOfferRepository) Update(ctx context.Context, o *offer.Offer) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOfferRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOfferRepository) FindForPurchase(ctx context.Context, id uuid.UUID) (*shared.OfferPurchaseSnapshot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.OfferPurchaseSnapshot), args.Error(1)
}

func (m *MockOfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}

func (m *MockOfferRepository) RecordSale(ctx context.Context, id uuid.UUID, revenueCents int64) error {
	return m.Called(ctx, id, revenueCents).Error(0)
}

type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) Create(ctx context.Context, c *coupon.Coupon) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCouponRepository) CountByOffer(ctx context.Context, offerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, offerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCouponRepository) CountActiveByBuyerAndOffer(ctx context.Context, buyerID, offerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, buyerID, offerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) FindRoleForUpdate(ctx context.Context, id uuid.UUID) (user.Role, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.Role), args.Error(1)
}

func (m *MockUserRepository) SetRole(ctx context.Context, id uuid.UUID, role user.Role) error {
	return m.Called(ctx, id, role).Error(0)
}

func (m *MockUserRepository) SetPlatformFee(ctx context.Context, id uuid.UUID, fee decimal.Decimal) error {
	return m.Called(ctx, id, fee).Error(0)
}

func (m *MockUserRepository) CountAdmins(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) RecordRoleChange(ctx context.Context, userID, changedBy uuid.UUID, oldRole, newRole user.Role) error {
	return m.Called(ctx, userID, changedBy, oldRole, newRole).Error(0)
}

type MockBusinessRequestRepository struct {
	mock.Mock
}

func (m *MockBusinessRequestRepository) Create(ctx context.Context, r *businessrequest.BusinessRequest) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockBusinessRequestRepository) FindForDecision(ctx context.Context, id uuid.UUID) (*businessrequest.BusinessRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*businessrequest.BusinessRequest), args.Error(1)
}

func (m *MockBusinessRequestRepository) SaveDecision(ctx context.Context, r *businessrequest.BusinessRequest) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockBusinessRequestRepository) HasPending(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}
