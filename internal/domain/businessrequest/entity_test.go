//go:build unit

package businessrequest_test

import (
	"testing"
	"time"

	"cuponera/internal/domain/businessrequest"
	"cuponera/internal/domain/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingRequest(t *testing.T) *businessrequest.BusinessRequest {
	t.Helper()
	company, err := businessrequest.NewCompany("Pupuseria El Buen Gusto", nil, nil, nil, nil, nil)
	require.NoError(t, err)
	fee, err := user.NewFeePercent(decimal.NewFromInt(10))
	require.NoError(t, err)
	return businessrequest.NewBusinessRequest(uuid.New(), company, fee)
}

func TestNewCompany(t *testing.T) {
	t.Run("name required", func(t *testing.T) {
		_, err := businessrequest.NewCompany("", nil, nil, nil, nil, nil)
		assert.ErrorIs(t, err, businessrequest.ErrInvalidCompanyName)
	})

	t.Run("whitespace only name rejected", func(t *testing.T) {
		_, err := businessrequest.NewCompany("   ", nil, nil, nil, nil, nil)
		assert.ErrorIs(t, err, businessrequest.ErrInvalidCompanyName)
	})

	t.Run("optional fields stay nil", func(t *testing.T) {
		company, err := businessrequest.NewCompany("Acme", nil, nil, nil, nil, nil)
		require.NoError(t, err)
		assert.Nil(t, company.NIT)
		assert.Nil(t, company.Email)
	})
}

func TestApprove(t *testing.T) {
	adminID := uuid.New()
	at := time.Now()

	t.Run("pending request is approved", func(t *testing.T) {
		r := newPendingRequest(t)
		require.True(t, r.IsPending())

		err := r.Approve(adminID, at)
		require.NoError(t, err)
		assert.Equal(t, businessrequest.StatusApproved, r.Status())
		require.NotNil(t, r.DecidedBy())
		assert.Equal(t, adminID, *r.DecidedBy())
		require.NotNil(t, r.DecidedAt())
	})

	t.Run("already decided request cannot be approved again", func(t *testing.T) {
		r := newPendingRequest(t)
		require.NoError(t, r.Approve(adminID, at))

		err := r.Approve(adminID, at)
		assert.ErrorIs(t, err, businessrequest.ErrNotPending)
	})
}

func TestReject(t *testing.T) {
	adminID := uuid.New()
	at := time.Now()

	t.Run("pending request is rejected", func(t *testing.T) {
		r := newPendingRequest(t)

		err := r.Reject(adminID, at)
		require.NoError(t, err)
		assert.Equal(t, businessrequest.StatusRejected, r.Status())
	})

	t.Run("rejected request cannot flip to approved", func(t *testing.T) {
		r := newPendingRequest(t)
		require.NoError(t, r.Reject(adminID, at))

		err := r.Approve(adminID, at)
		assert.ErrorIs(t, err, businessrequest.ErrNotPending)
	})
}
