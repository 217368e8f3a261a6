//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cuponera/internal/domain/businessrequest"
	"cuponera/internal/domain/user"
	"cuponera/internal/infra"
	"cuponera/internal/pkg/clock"
	"cuponera/internal/pkg/errs"
	"cuponera/internal/usecase/commands"
	"cuponera/tests/common/builder"
)

var onboardingNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func submitCommand() commands.SubmitBusinessRequestCommand {
	return commands.SubmitBusinessRequestCommand{
		CompanyName:        "Pupuseria El Buen Gusto",
		PlatformFeePercent: decimal.NewFromInt(10),
	}
}

func pendingRequest(t *testing.T, userID uuid.UUID) *businessrequest.BusinessRequest {
	t.Helper()
	company, err := businessrequest.NewCompany("Pupuseria El Buen Gusto", nil, nil, nil, nil, nil)
	require.NoError(t, err)
	fee, err := user.NewFeePercent(decimal.NewFromInt(10))
	require.NoError(t, err)
	return businessrequest.NewBusinessRequest(userID, company, fee)
}

func newOnboardingHarness() (commands.OnboardingCommands, *stubTx) {
	tx := newStubTx()
	cmds := commands.NewOnboardingCommands(&stubUoW{tx: tx}, clock.NewMockClock(onboardingNow))
	return cmds, tx
}

func TestOnboardingCommands_Submit_Success(t *testing.T) {
	t.Parallel()

	applicant, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)
	userID := applicant.ID()

	cmds, tx := newOnboardingHarness()
	tx.users.On("FindByID", mock.Anything, userID).Return(applicant, nil)
	tx.businessRequests.On("HasPending", mock.Anything, userID).Return(false, nil)

	var created *businessrequest.BusinessRequest
	tx.businessRequests.On("Create", mock.Anything, mock.AnythingOfType("*businessrequest.BusinessRequest")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*businessrequest.BusinessRequest) }).
		Return(nil)

	requestID, err := cmds.Submit(context.Background(), userID, submitCommand())

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.ID(), requestID)
	assert.Equal(t, userID, created.UserID())
	assert.True(t, created.IsPending())
	assert.Equal(t, "Pupuseria El Buen Gusto", created.Company().Name)
	tx.assertExpectations(t)
}

func TestOnboardingCommands_Submit_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cmd     commands.SubmitBusinessRequestCommand
		setup   func(tx *stubTx, userID uuid.UUID) error
		wantErr error
	}{
		{
			name: "empty company name",
			cmd: commands.SubmitBusinessRequestCommand{
				CompanyName:        "   ",
				PlatformFeePercent: decimal.NewFromInt(10),
			},
			wantErr: commands.ErrRequestValidation,
		},
		{
			name: "fee percent out of range",
			cmd: commands.SubmitBusinessRequestCommand{
				CompanyName:        "Pupuseria El Buen Gusto",
				PlatformFeePercent: decimal.NewFromInt(101),
			},
			wantErr: commands.ErrRequestValidation,
		},
		{
			name: "applicant already business",
			cmd:  submitCommand(),
			setup: func(tx *stubTx, userID uuid.UUID) error {
				applicant, err := builder.NewUserBuilder().WithRole("business").BuildDomain()
				if err != nil {
					return err
				}
				tx.users.On("FindByID", mock.Anything, userID).Return(applicant, nil)
				return nil
			},
			wantErr: commands.ErrAlreadyBusiness,
		},
		{
			name: "pending request exists",
			cmd:  submitCommand(),
			setup: func(tx *stubTx, userID uuid.UUID) error {
				applicant, err := builder.NewUserBuilder().BuildDomain()
				if err != nil {
					return err
				}
				tx.users.On("FindByID", mock.Anything, userID).Return(applicant, nil)
				tx.businessRequests.On("HasPending", mock.Anything, userID).Return(true, nil)
				return nil
			},
			wantErr: commands.ErrPendingRequestExists,
		},
		{
			name: "concurrent submit loses the insert race",
			cmd:  submitCommand(),
			setup: func(tx *stubTx, userID uuid.UUID) error {
				applicant, err := builder.NewUserBuilder().BuildDomain()
				if err != nil {
					return err
				}
				tx.users.On("FindByID", mock.Anything, userID).Return(applicant, nil)
				tx.businessRequests.On("HasPending", mock.Anything, userID).Return(false, nil)
				tx.businessRequests.On("Create", mock.Anything, mock.Anything).
					Return(infra.WrapRepoErr("pending request exists", errs.New("unique violation"), infra.KindDuplicateKey))
				return nil
			},
			wantErr: commands.ErrPendingRequestExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			userID := uuid.New()
			cmds, tx := newOnboardingHarness()
			if tt.setup != nil {
				require.NoError(t, tt.setup(tx, userID))
			}

			requestID, err := cmds.Submit(context.Background(), userID, tt.cmd)

			assert.Equal(t, uuid.Nil, requestID)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOnboardingCommands_Approve_Success(t *testing.T) {
	t.Parallel()

	adminID := uuid.New()
	applicant, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)
	request := pendingRequest(t, applicant.ID())

	cmds, tx := newOnboardingHarness()
	tx.businessRequests.On("FindForDecision", mock.Anything, request.ID()).Return(request, nil)
	tx.businessRequests.On("SaveDecision", mock.Anything, request).Return(nil)
	tx.users.On("FindByID", mock.Anything, applicant.ID()).Return(applicant, nil)
	tx.users.On("SetPlatformFee", mock.Anything, applicant.ID(), decimal.NewFromInt(10).Round(2)).Return(nil)
	tx.users.On("SetRole", mock.Anything, applicant.ID(), user.RoleBusiness).Return(nil)
	tx.users.On("RecordRoleChange", mock.Anything, applicant.ID(), adminID, user.RoleUser, user.RoleBusiness).Return(nil)

	require.NoError(t, cmds.Approve(context.Background(), adminID, request.ID()))

	assert.Equal(t, businessrequest.StatusApproved, request.Status())
	require.NotNil(t, request.DecidedBy())
	assert.Equal(t, adminID, *request.DecidedBy())
	require.NotNil(t, request.DecidedAt())
	assert.True(t, request.DecidedAt().Equal(onboardingNow))
	tx.assertExpectations(t)
}

func TestOnboardingCommands_Approve_SkipsRoleChangeForExistingBusiness(t *testing.T) {
	t.Parallel()

	adminID := uuid.New()
	applicant, err := builder.NewUserBuilder().WithRole("business").BuildDomain()
	require.NoError(t, err)
	request := pendingRequest(t, applicant.ID())

	cmds, tx := newOnboardingHarness()
	tx.businessRequests.On("FindForDecision", mock.Anything, request.ID()).Return(request, nil)
	tx.businessRequests.On("SaveDecision", mock.Anything, request).Return(nil)
	tx.users.On("FindByID", mock.Anything, applicant.ID()).Return(applicant, nil)
	tx.users.On("SetPlatformFee", mock.Anything, applicant.ID(), decimal.NewFromInt(10).Round(2)).Return(nil)

	require.NoError(t, cmds.Approve(context.Background(), adminID, request.ID()))

	tx.users.AssertNotCalled(t, "SetRole", mock.Anything, mock.Anything, mock.Anything)
	tx.users.AssertNotCalled(t, "RecordRoleChange", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOnboardingCommands_Approve_Failures(t *testing.T) {
	t.Parallel()

	adminID := uuid.New()

	t.Run("request not found", func(t *testing.T) {
		t.Parallel()

		requestID := uuid.New()
		cmds, tx := newOnboardingHarness()
		tx.businessRequests.On("FindForDecision", mock.Anything, requestID).
			Return(nil, infra.WrapRepoErr("request not found", errs.New("no rows"), infra.KindNotFound))

		err := cmds.Approve(context.Background(), adminID, requestID)
		assert.ErrorIs(t, err, commands.ErrRequestNotFound)
	})

	t.Run("request already decided", func(t *testing.T) {
		t.Parallel()

		request := pendingRequest(t, uuid.New())
		require.NoError(t, request.Reject(uuid.New(), onboardingNow))

		cmds, tx := newOnboardingHarness()
		tx.businessRequests.On("FindForDecision", mock.Anything, request.ID()).Return(request, nil)

		err := cmds.Approve(context.Background(), adminID, request.ID())
		assert.ErrorIs(t, err, commands.ErrRequestNotPending)
		tx.businessRequests.AssertNotCalled(t, "SaveDecision", mock.Anything, mock.Anything)
	})
}

func TestOnboardingCommands_Reject(t *testing.T) {
	t.Parallel()

	adminID := uuid.New()
	request := pendingRequest(t, uuid.New())

	cmds, tx := newOnboardingHarness()
	tx.businessRequests.On("FindForDecision", mock.Anything, request.ID()).Return(request, nil)
	tx.businessRequests.On("SaveDecision", mock.Anything, request).Return(nil)

	require.NoError(t, cmds.Reject(context.Background(), adminID, request.ID()))

	assert.Equal(t, businessrequest.StatusRejected, request.Status())
	tx.users.AssertNotCalled(t, "SetRole", mock.Anything, mock.Anything, mock.Anything)
	tx.users.AssertNotCalled(t, "SetPlatformFee", mock.Anything, mock.Anything, mock.Anything)
	tx.assertExpectations(t)
}
