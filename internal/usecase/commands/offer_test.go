//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cuponera/internal/domain/offer"
	"cuponera/internal/domain/user"
	"cuponera/internal/infra"
	"cuponera/internal/pkg/errs"
	"cuponera/internal/usecase/commands"
	"cuponera/tests/common/builder"
)

func buildOffer(t *testing.T, b *builder.OfferBuilder) *offer.Offer {
	t.Helper()
	o, err := b.BuildDomain()
	require.NoError(t, err)
	return o
}

func createOfferCommand() commands.CreateOfferCommand {
	return commands.CreateOfferCommand{
		Title:        "Two pupusas for one",
		RegularPrice: decimal.NewFromInt(10),
		OfferPrice:   decimal.NewFromInt(6),
		StartsAt:     day(-1),
		EndsAt:       day(7),
		RedeemBy:     day(30),
	}
}

func TestOfferCommands_Create(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		ownerID := uuid.New()
		tx := newStubTx()

		var created *offer.Offer
		tx.offers.On("Create", mock.Anything, mock.AnythingOfType("*offer.Offer")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*offer.Offer) }).
			Return(nil)

		cmds := commands.NewOfferCommands(&stubUoW{tx: tx})
		id, err := cmds.Create(context.Background(), ownerID, createOfferCommand())

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, created.ID(), id)
		assert.Equal(t, ownerID, created.OwnerID())
		assert.Equal(t, offer.StatusAvailable, created.Status())
	})

	t.Run("validation failures", func(t *testing.T) {
		t.Parallel()

		badStatus := "retired"
		badQty := int32(0)

		tests := []struct {
			name   string
			mutate func(cmd *commands.CreateOfferCommand)
		}{
			{name: "empty title", mutate: func(cmd *commands.CreateOfferCommand) { cmd.Title = "" }},
			{name: "offer price above regular", mutate: func(cmd *commands.CreateOfferCommand) {
				cmd.OfferPrice = decimal.NewFromInt(12)
			}},
			{name: "window ends before it starts", mutate: func(cmd *commands.CreateOfferCommand) {
				cmd.EndsAt = day(-3)
			}},
			{name: "unknown status", mutate: func(cmd *commands.CreateOfferCommand) { cmd.Status = &badStatus }},
			{name: "zero quantity", mutate: func(cmd *commands.CreateOfferCommand) { cmd.Quantity = &badQty }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				cmd := createOfferCommand()
				tt.mutate(&cmd)

				tx := newStubTx()
				cmds := commands.NewOfferCommands(&stubUoW{tx: tx})
				id, err := cmds.Create(context.Background(), uuid.New(), cmd)

				assert.Equal(t, uuid.Nil, id)
				assert.ErrorIs(t, err, commands.ErrOfferValidation)
				tx.offers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})
}

func TestOfferCommands_Update(t *testing.T) {
	t.Parallel()

	t.Run("owner updates price and title", func(t *testing.T) {
		t.Parallel()

		ownerID := uuid.New()
		current := buildOffer(t, builder.NewOfferBuilder().WithOwner(ownerID))

		tx := newStubTx()
		tx.offers.On("FindByID", mock.Anything, current.ID()).Return(current, nil)

		var written *offer.Offer
		tx.offers.On("Update", mock.Anything, mock.AnythingOfType("*offer.Offer")).
			Run(func(args mock.Arguments) { written = args.Get(1).(*offer.Offer) }).
			Return(nil)

		newTitle := "Three pupusas for two"
		newPrice := decimal.NewFromInt(8)
		cmds := commands.NewOfferCommands(&stubUoW{tx: tx})
		updated, err := cmds.Update(context.Background(),
			commands.Actor{ID: ownerID, Role: user.RoleBusiness},
			current.ID(),
			commands.UpdateOfferCommand{Title: &newTitle, OfferPrice: &newPrice},
		)

		require.NoError(t, err)
		assert.True(t, updated)
		require.NotNil(t, written)
		assert.Equal(t, current.ID(), written.ID())
		assert.Equal(t, newTitle, written.Title().Value())
		assert.True(t, written.Pricing().OfferPrice().Equal(newPrice))
		// Untouched fields survive the merge
		assert.True(t, written.Pricing().RegularPrice().Equal(current.Pricing().RegularPrice()))
	})

	t.Run("empty patch writes nothing", func(t *testing.T) {
		t.Parallel()

		ownerID := uuid.New()
		current := buildOffer(t, builder.NewOfferBuilder().WithOwner(ownerID))

		tx := newStubTx()
		tx.offers.On("FindByID", mock.Anything, current.ID()).Return(current, nil)

		cmds := commands.NewOfferCommands(&stubUoW{tx: tx})
		updated, err := cmds.Update(context.Background(),
			commands.Actor{ID: ownerID, Role: user.RoleBusiness},
			current.ID(),
			commands.UpdateOfferCommand{},
		)

		require.NoError(t, err)
		assert.False(t, updated)
		tx.offers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("patch restating the stored values writes nothing", func(t *testing.T) {
		t.Parallel()

		ownerID := uuid.New()
		current := buildOffer(t, builder.NewOfferBuilder().WithOwner(ownerID))

		tx := newStubTx()
		tx.offers.On("FindByID", mock.Anything, current.ID()).Return(current, nil)

		sameTitle := current.Title().Value()
		samePrice := current.Pricing().OfferPrice()
		cmds := commands.NewOfferCommands(&stubUoW{tx: tx})
		updated, err := cmds.Update(context.Background(),
			commands.Actor{ID: ownerID, Role: user.RoleBusiness},
			current.ID(),
			commands.UpdateOfferCommand{Title: &sameTitle, OfferPrice: &samePrice},
		)

		require.NoError(t, err)
		assert.False(t, updated)
		tx.offers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("admin may update any offer", func(t *testing.T) {
		t.Parallel()

		current := buildOffer(t, builder.NewOfferBuilder().WithOwner(uuid.New()))

		tx := newStubTx()
		tx.offers.On("FindByID", mock.Anything, current.ID()).Return(current, nil)
		tx.offers.On("Update", mock.Anything, mock.Anything).Return(nil)

		newTitle := "Updated by admin"
		cmds := commands.NewOfferCommands(&stubUoW{tx: tx})
		updated, err := cmds.Update(context.Background(),
			commands.Actor{ID: uuid.New(), Role: user.RoleAdmin},
			current.ID(),
			commands.UpdateOfferCommand{Title: &newTitle},
		)
		require.NoError(t, err)
		assert.True(t, updated)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		t.Parallel()

		current := buildOffer(t, builder.NewOfferBuilder().WithOwner(uuid.New()))

		tx := newStubTx()
		tx.offers.On("FindByID", mock.Anything, current.ID()).Return(current, nil)

		newTitle := "Hijacked"
		cmds := commands.NewOfferCommands(&stubUoW{tx: tx})
		_, err := cmds.Update(context.Background(),
			commands.Actor{ID: uuid.New(), Role: user.RoleBusiness},
			current.ID(),
			commands.UpdateOfferCommand{Title: &newTitle},
		)

		assert.ErrorIs(t, err, commands.ErrNotOfferOwner)
		tx.offers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("merged state is revalidated", func(t *testing.T) {
		t.Parallel()

		ownerID := uuid.New()
		// Regular price 10, so raising only the offer price past it must fail
		current := buildOffer(t, builder.NewOfferBuilder().WithOwner(ownerID))

		tx := newStubTx()
		tx.offers.On("FindByID", mock.Anything, current.ID()).Return(current, nil)

		tooHigh := decimal.NewFromInt(15)
		cmds := commands.NewOfferCommands(&stubUoW{tx: tx})
		_, err := cmds.Update(context.Background(),
			commands.Actor{ID: ownerID, Role: user.RoleBusiness},
			current.ID(),
			commands.UpdateOfferCommand{OfferPrice: &tooHigh},
		)

		assert.ErrorIs(t, err, commands.ErrOfferValidation)
		tx.offers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing offer", func(t *testing.T) {
		t.Parallel()

		offerID := uuid.New()
		tx := newStubTx()
		tx.offers.On("FindByID", mock.Anything, offerID).
			Return(nil, infra.WrapRepoErr("offer not found", errs.New("no rows"), infra.KindNotFound))

		cmds := commands.NewOfferCommands(&stubUoW{tx: tx})
		_, err := cmds.Update(context.Background(),
			commands.Actor{ID: uuid.New(), Role: user.RoleAdmin},
			offerID,
			commands.UpdateOfferCommand{},
		)
		assert.ErrorIs(t, err, commands.ErrOfferNotFound)
	})
}

func TestOfferCommands_Delete(t *testing.T) {
	t.Parallel()

	t.Run("owner deletes an unsold offer", func(t *testing.T) {
		t.Parallel()

		ownerID := uuid.New()
		current := buildOffer(t, builder.NewOfferBuilder().WithOwner(ownerID))

		tx := newStubTx()
		tx.offers.On("FindByID", mock.Anything, current.ID()).Return(current, nil)
		tx.offers.On("Delete", mock.Anything, current.ID()).Return(nil)

		cmds := commands.NewOfferCommands(&stubUoW{tx: tx})
		err := cmds.Delete(context.Background(),
			commands.Actor{ID: ownerID, Role: user.RoleBusiness}, current.ID())

		require.NoError(t, err)
		tx.assertExpectations(t)
	})

	t.Run("sold coupons block deletion", func(t *testing.T) {
		t.Parallel()

		ownerID := uuid.New()
		current := buildOffer(t, builder.NewOfferBuilder().WithOwner(ownerID))

		tx := newStubTx()
		tx.offers.On("FindByID", mock.Anything, current.ID()).Return(current, nil)
		tx.offers.On("Delete", mock.Anything, current.ID()).
			Return(infra.WrapRepoErr("offer referenced", errs.New("fk violation"), infra.KindForeignKeyViolated))

		cmds := commands.NewOfferCommands(&stubUoW{tx: tx})
		err := cmds.Delete(context.Background(),
			commands.Actor{ID: ownerID, Role: user.RoleBusiness}, current.ID())

		assert.ErrorIs(t, err, commands.ErrOfferHasCoupons)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		t.Parallel()

		current := buildOffer(t, builder.NewOfferBuilder().WithOwner(uuid.New()))

		tx := newStubTx()
		tx.offers.On("FindByID", mock.Anything, current.ID()).Return(current, nil)

		cmds := commands.NewOfferCommands(&stubUoW{tx: tx})
		err := cmds.Delete(context.Background(),
			commands.Actor{ID: uuid.New(), Role: user.RoleUser}, current.ID())

		assert.ErrorIs(t, err, commands.ErrNotOfferOwner)
		tx.offers.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
