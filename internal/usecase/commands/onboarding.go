package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cuponera/internal/domain/businessrequest"
	"cuponera/internal/domain/user"
	"cuponera/internal/infra"
	"cuponera/internal/pkg/clock"
	"cuponera/internal/pkg/errs"
	"cuponera/internal/usecase/shared"
)

var (
	ErrRequestNotFound      = errs.New("business request not found")
	ErrRequestNotPending    = errs.New("business request already decided")
	ErrPendingRequestExists = errs.New("a pending business request already exists")
	ErrAlreadyBusiness      = errs.New("user already holds the business role")
	ErrRequestValidation    = errs.New("invalid business request data")
)

type SubmitBusinessRequestCommand struct {
	CompanyName        string
	NIT                *string
	ContactEmail       *string
	ContactPhone       *string
	Address            *string
	Description        *string
	PlatformFeePercent decimal.Decimal
}

type OnboardingCommands interface {
	Submit(ctx context.Context, userID uuid.UUID, cmd SubmitBusinessRequestCommand) (uuid.UUID, error)
	Approve(ctx context.Context, adminID, requestID uuid.UUID) error
	Reject(ctx context.Context, adminID, requestID uuid.UUID) error
}

type onboardingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOnboardingCommands(uow shared.UnitOfWork, clk clock.Clock) OnboardingCommands {
	return &onboardingCommandsImpl{uow: uow, clock: clk}
}

func (c *onboardingCommandsImpl) Submit(ctx context.Context, userID uuid.UUID, cmd SubmitBusinessRequestCommand) (uuid.UUID, error) {
	company, err := businessrequest.NewCompany(
		cmd.CompanyName, cmd.NIT, cmd.ContactEmail, cmd.ContactPhone, cmd.Address, cmd.Description)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrRequestValidation)
	}
	fee, err := user.NewFeePercent(cmd.PlatformFeePercent)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrRequestValidation)
	}

	request := businessrequest.NewBusinessRequest(userID, company, fee)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		applicant, err := tx.Users().FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if applicant.IsBusiness() {
			return ErrAlreadyBusiness
		}

		pending, err := tx.BusinessRequests().HasPending(ctx, userID)
		if err != nil {
			return err
		}
		if pending {
			return ErrPendingRequestExists
		}

		if err := tx.BusinessRequests().Create(ctx, request); err != nil {
			// The partial unique index catches the race the pre-check misses
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrPendingRequestExists)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return request.ID(), nil
}

// Approve flips the request, grants the business role and copies the fee
// percent onto the user, all in one transaction.
func (c *onboardingCommandsImpl) Approve(ctx context.Context, adminID, requestID uuid.UUID) error {
	now := c.clock.Now()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		request, err := c.lockPending(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if err := request.Approve(adminID, now); err != nil {
			return errs.Mark(err, ErrRequestNotPending)
		}
		if err := tx.BusinessRequests().SaveDecision(ctx, request); err != nil {
			return err
		}

		applicant, err := tx.Users().FindByID(ctx, request.UserID())
		if err != nil {
			return err
		}
		oldRole := applicant.Role()

		if err := tx.Users().SetPlatformFee(ctx, request.UserID(), request.FeePercent().Value()); err != nil {
			return err
		}
		if oldRole == user.RoleBusiness {
			return nil
		}
		if err := tx.Users().SetRole(ctx, request.UserID(), user.RoleBusiness); err != nil {
			return err
		}
		return tx.Users().RecordRoleChange(ctx, request.UserID(), adminID, oldRole, user.RoleBusiness)
	})
}

func (c *onboardingCommandsImpl) Reject(ctx context.Context, adminID, requestID uuid.UUID) error {
	now := c.clock.Now()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		request, err := c.lockPending(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if err := request.Reject(adminID, now); err != nil {
			return errs.Mark(err, ErrRequestNotPending)
		}
		return tx.BusinessRequests().SaveDecision(ctx, request)
	})
}

func (c *onboardingCommandsImpl) lockPending(ctx context.Context, tx shared.Tx, requestID uuid.UUID) (*businessrequest.BusinessRequest, error) {
	request, err := tx.BusinessRequests().FindForDecision(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRequestNotFound)
		}
		return nil, err
	}
	return request, nil
}
