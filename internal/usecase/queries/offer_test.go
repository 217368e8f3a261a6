//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cuponera/internal/usecase/queries"
)

type stubOfferReadStore struct {
	rows []*queries.OfferListItem
	err  error

	gotSearch  string
	gotAfterAt time.Time
	gotAfterID uuid.UUID
	gotLimit   int32
}

func (s *stubOfferReadStore) FindVisible(_ context.Context, _ time.Time, search string, afterAt time.Time, afterID uuid.UUID, limit int32) ([]*queries.OfferListItem, error) {
	s.gotSearch = search
	s.gotAfterAt = afterAt
	s.gotAfterID = afterID
	s.gotLimit = limit
	return s.rows, s.err
}

func (s *stubOfferReadStore) FindVisibleByID(context.Context, uuid.UUID, time.Time) (*queries.OfferView, error) {
	return nil, nil
}

func (s *stubOfferReadStore) FindByID(context.Context, uuid.UUID) (*queries.OfferView, error) {
	return nil, nil
}

func (s *stubOfferReadStore) FindByOwner(context.Context, uuid.UUID) ([]*queries.OfferView, error) {
	return nil, nil
}

func listItems(n int) []*queries.OfferListItem {
	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	items := make([]*queries.OfferListItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, &queries.OfferListItem{
			ID:        uuid.New(),
			Title:     "Two pupusas for one",
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		})
	}
	return items
}

func TestOfferQueriesListVisible(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	t.Run("full page yields a next cursor pointing at the last row", func(t *testing.T) {
		store := &stubOfferReadStore{rows: listItems(20)}
		q := queries.NewOfferQueries(store)

		rows, next, err := q.ListVisible(context.Background(), now, "", nil, 20)
		require.NoError(t, err)
		assert.Len(t, rows, 20)
		require.NotNil(t, next)

		last := rows[len(rows)-1]
		afterAt, afterID, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, last.ID, afterID)
		assert.Equal(t, last.CreatedAt.UnixMicro(), afterAt.UnixMicro())
	})

	t.Run("short page means no next cursor", func(t *testing.T) {
		store := &stubOfferReadStore{rows: listItems(3)}
		q := queries.NewOfferQueries(store)

		rows, next, err := q.ListVisible(context.Background(), now, "", nil, 20)
		require.NoError(t, err)
		assert.Nil(t, next)
		if diff := cmp.Diff(store.rows, rows); diff != "" {
			t.Errorf("rows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("search term reaches the store unchanged", func(t *testing.T) {
		store := &stubOfferReadStore{rows: nil}
		q := queries.NewOfferQueries(store)

		_, _, err := q.ListVisible(context.Background(), now, "pupusa", nil, 20)
		require.NoError(t, err)
		assert.Equal(t, "pupusa", store.gotSearch)
	})

	t.Run("cursor is decoded and handed to the store", func(t *testing.T) {
		lastAt := now.Add(-time.Hour)
		lastID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(lastAt, lastID)}

		store := &stubOfferReadStore{rows: nil}
		q := queries.NewOfferQueries(store)

		_, _, err := q.ListVisible(context.Background(), now, "", cursor, 7)
		require.NoError(t, err)
		assert.Equal(t, lastID, store.gotAfterID)
		assert.Equal(t, lastAt.UnixMicro(), store.gotAfterAt.UnixMicro())
		assert.Equal(t, int32(7), store.gotLimit)
	})

	t.Run("out of range limits are clamped", func(t *testing.T) {
		store := &stubOfferReadStore{rows: nil}
		q := queries.NewOfferQueries(store)

		_, _, err := q.ListVisible(context.Background(), now, "", nil, 500)
		require.NoError(t, err)
		assert.Equal(t, int32(queries.MaxListLimit), store.gotLimit)

		_, _, err = q.ListVisible(context.Background(), now, "", nil, 0)
		require.NoError(t, err)
		assert.Equal(t, int32(20), store.gotLimit)
	})

	t.Run("garbage cursor is rejected before the store is hit", func(t *testing.T) {
		store := &stubOfferReadStore{rows: listItems(1)}
		q := queries.NewOfferQueries(store)

		_, _, err := q.ListVisible(context.Background(), now, "", &queries.Cursor{After: "garbage"}, 20)
		assert.Error(t, err)
		assert.Equal(t, int32(0), store.gotLimit)
	})
}
