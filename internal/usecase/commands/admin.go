package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"cuponera/internal/domain/user"
	"cuponera/internal/infra"
	"cuponera/internal/pkg/errs"
	"cuponera/internal/usecase/shared"
)

var (
	ErrSelfRoleChange    = errs.New("admins cannot change their own role")
	ErrBusinessPromotion = errs.New("business accounts cannot be promoted to admin")
	ErrLastAdmin         = errs.New("at least one admin must remain")
)

type AdminCommands interface {
	ChangeRole(ctx context.Context, adminID, targetID uuid.UUID, newRole user.Role) error
}

type adminCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewAdminCommands(uow shared.UnitOfWork) AdminCommands {
	return &adminCommandsImpl{uow: uow}
}

// ChangeRole replaces the target's role under a row lock so the last-admin
// check cannot race with a concurrent demotion.
func (c *adminCommandsImpl) ChangeRole(ctx context.Context, adminID, targetID uuid.UUID, newRole user.Role) error {
	if adminID == targetID {
		return ErrSelfRoleChange
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		oldRole, err := tx.Users().FindRoleForUpdate(ctx, targetID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrUserNotFound)
			}
			return err
		}
		if oldRole == newRole {
			return nil
		}

		var admins int64
		if oldRole == user.RoleAdmin {
			if admins, err = tx.Users().CountAdmins(ctx); err != nil {
				return err
			}
		}
		if err := oldRole.CanChangeTo(newRole, admins); err != nil {
			switch {
			case errors.Is(err, user.ErrBusinessPromotion):
				return errs.Mark(err, ErrBusinessPromotion)
			case errors.Is(err, user.ErrLastAdminProtected):
				return errs.Mark(err, ErrLastAdmin)
			}
			return err
		}

		if err := tx.Users().SetRole(ctx, targetID, newRole); err != nil {
			return err
		}
		return tx.Users().RecordRoleChange(ctx, targetID, adminID, oldRole, newRole)
	})
}
