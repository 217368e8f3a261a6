//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cuponera/internal/domain/user"
	"cuponera/internal/infra"
	"cuponera/internal/pkg/errs"
	"cuponera/internal/usecase/commands"
)

func TestAdminCommands_ChangeRole_Success(t *testing.T) {
	t.Parallel()

	adminID := uuid.New()
	targetID := uuid.New()

	tx := newStubTx()
	tx.users.On("FindRoleForUpdate", mock.Anything, targetID).Return(user.RoleUser, nil)
	tx.users.On("SetRole", mock.Anything, targetID, user.RoleAdmin).Return(nil)
	tx.users.On("RecordRoleChange", mock.Anything, targetID, adminID, user.RoleUser, user.RoleAdmin).Return(nil)

	cmds := commands.NewAdminCommands(&stubUoW{tx: tx})
	err := cmds.ChangeRole(context.Background(), adminID, targetID, user.RoleAdmin)

	require.NoError(t, err)
	tx.assertExpectations(t)
}

func TestAdminCommands_ChangeRole_NoOpWhenRoleUnchanged(t *testing.T) {
	t.Parallel()

	adminID := uuid.New()
	targetID := uuid.New()

	tx := newStubTx()
	tx.users.On("FindRoleForUpdate", mock.Anything, targetID).Return(user.RoleUser, nil)

	cmds := commands.NewAdminCommands(&stubUoW{tx: tx})
	err := cmds.ChangeRole(context.Background(), adminID, targetID, user.RoleUser)

	require.NoError(t, err)
	tx.users.AssertNotCalled(t, "SetRole", mock.Anything, mock.Anything, mock.Anything)
	tx.users.AssertNotCalled(t, "RecordRoleChange", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminCommands_ChangeRole_Failures(t *testing.T) {
	t.Parallel()

	adminID := uuid.New()
	targetID := uuid.New()

	tests := []struct {
		name     string
		targetID uuid.UUID
		newRole  user.Role
		setup    func(tx *stubTx)
		wantErr  error
	}{
		{
			name:     "admin changes own role",
			targetID: adminID,
			newRole:  user.RoleUser,
			wantErr:  commands.ErrSelfRoleChange,
		},
		{
			name:     "target not found",
			targetID: targetID,
			newRole:  user.RoleAdmin,
			setup: func(tx *stubTx) {
				tx.users.On("FindRoleForUpdate", mock.Anything, targetID).
					Return(user.Role(""), infra.WrapRepoErr("user not found", errs.New("no rows"), infra.KindNotFound))
			},
			wantErr: commands.ErrUserNotFound,
		},
		{
			name:     "business promoted to admin",
			targetID: targetID,
			newRole:  user.RoleAdmin,
			setup: func(tx *stubTx) {
				tx.users.On("FindRoleForUpdate", mock.Anything, targetID).Return(user.RoleBusiness, nil)
			},
			wantErr: commands.ErrBusinessPromotion,
		},
		{
			name:     "last admin demoted",
			targetID: targetID,
			newRole:  user.RoleUser,
			setup: func(tx *stubTx) {
				tx.users.On("FindRoleForUpdate", mock.Anything, targetID).Return(user.RoleAdmin, nil)
				tx.users.On("CountAdmins", mock.Anything).Return(int64(1), nil)
			},
			wantErr: commands.ErrLastAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tx := newStubTx()
			if tt.setup != nil {
				tt.setup(tx)
			}

			cmds := commands.NewAdminCommands(&stubUoW{tx: tx})
			err := cmds.ChangeRole(context.Background(), adminID, tt.targetID, tt.newRole)

			assert.ErrorIs(t, err, tt.wantErr)
			tx.users.AssertNotCalled(t, "SetRole", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAdminCommands_ChangeRole_DemotionAllowedWithAnotherAdmin(t *testing.T) {
	t.Parallel()

	adminID := uuid.New()
	targetID := uuid.New()

	tx := newStubTx()
	tx.users.On("FindRoleForUpdate", mock.Anything, targetID).Return(user.RoleAdmin, nil)
	tx.users.On("CountAdmins", mock.Anything).Return(int64(2), nil)
	tx.users.On("SetRole", mock.Anything, targetID, user.RoleUser).Return(nil)
	tx.users.On("RecordRoleChange", mock.Anything, targetID, adminID, user.RoleAdmin, user.RoleUser).Return(nil)

	cmds := commands.NewAdminCommands(&stubUoW{tx: tx})
	err := cmds.ChangeRole(context.Background(), adminID, targetID, user.RoleUser)

	require.NoError(t, err)
	tx.assertExpectations(t)
}
