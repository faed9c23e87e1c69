package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/cellar-backend/internal/model"
	"github.com/georgemunganga/cellar-backend/internal/modules/inventory/mocks"
	"github.com/georgemunganga/cellar-backend/internal/store"
)

var seededAt = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

func newStoreService(t *testing.T) (*service, *store.Store) {
	t.Helper()

	st := store.New()
	svc := NewService(NewMemoryRepository(st)).(*service)
	svc.now = func() time.Time { return seededAt.Add(time.Hour) }
	return svc, st
}

func addWine(t *testing.T, st *store.Store) string {
	t.Helper()

	id := gofakeit.UUID()
	require.NoError(t, st.Update(context.Background(), func(tx *store.Tx) error {
		tx.InsertWine(model.Wine{ID: id, Name: gofakeit.Word(), GlassesPerBottle: 5})
		tx.InsertInventory(model.NewSeedInventory(id, seededAt))
		return nil
	}))
	return id
}

func TestGetInventoryReturnsFirstRecord(t *testing.T) {
	t.Parallel()

	svc, st := newStoreService(t)
	ctx := context.Background()
	wineID := addWine(t, st)

	_, err := svc.UpdateInventory(ctx, wineID, UpdateInventoryRequest{BottlesCount: lo.ToPtr(4), Location: "bar"})
	require.NoError(t, err)

	item, err := svc.GetInventory(ctx, wineID, "")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultLocation, item.Location)
	assert.Equal(t, 0, item.BottlesCount)

	bar, err := svc.GetInventory(ctx, wineID, " bar ")
	require.NoError(t, err)
	assert.Equal(t, 4, bar.BottlesCount)

	_, err = svc.GetInventory(ctx, wineID, "restaurant")
	assert.ErrorIs(t, err, model.ErrInventoryNotFound)

	_, err = svc.GetInventory(ctx, gofakeit.UUID(), "")
	assert.ErrorIs(t, err, model.ErrInventoryNotFound)
}

func TestUpdateInventoryIsAbsolute(t *testing.T) {
	t.Parallel()

	svc, st := newStoreService(t)
	ctx := context.Background()
	wineID := addWine(t, st)

	for _, count := range []int{10, 3, 3} {
		item, err := svc.UpdateInventory(ctx, wineID, UpdateInventoryRequest{BottlesCount: lo.ToPtr(count)})
		require.NoError(t, err)
		assert.Equal(t, count, item.BottlesCount)
		assert.Equal(t, seededAt, item.CreatedAt)
		assert.Equal(t, seededAt.Add(time.Hour), item.UpdatedAt)
	}

	items, err := svc.ListInventory(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].BottlesCount)
}

func TestUpdateInventoryErrors(t *testing.T) {
	t.Parallel()

	svc, st := newStoreService(t)
	ctx := context.Background()
	wineID := addWine(t, st)

	tests := []struct {
		name    string
		wineID  string
		req     UpdateInventoryRequest
		wantErr error
	}{
		{"missing bottles_count", wineID, UpdateInventoryRequest{}, model.ErrValidation},
		{"unknown wine without location", gofakeit.UUID(), UpdateInventoryRequest{BottlesCount: lo.ToPtr(1)}, model.ErrInventoryNotFound},
		{"unknown wine at location", gofakeit.UUID(), UpdateInventoryRequest{BottlesCount: lo.ToPtr(1), Location: "bar"}, model.ErrWineNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := svc.UpdateInventory(ctx, tt.wineID, tt.req)
			require.Error(t, err)
			assert.Nil(t, item)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	items, err := svc.ListInventory(ctx, "")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestUpdateInventoryIntroducesLocationOnce(t *testing.T) {
	t.Parallel()

	svc, st := newStoreService(t)
	ctx := context.Background()
	wineID := addWine(t, st)

	_, err := svc.UpdateInventory(ctx, wineID, UpdateInventoryRequest{BottlesCount: lo.ToPtr(6), Location: "restaurant"})
	require.NoError(t, err)
	_, err = svc.UpdateInventory(ctx, wineID, UpdateInventoryRequest{BottlesCount: lo.ToPtr(2), Location: "restaurant"})
	require.NoError(t, err)

	restaurant, err := svc.ListInventory(ctx, "restaurant")
	require.NoError(t, err)
	require.Len(t, restaurant, 1)
	assert.Equal(t, 2, restaurant[0].BottlesCount)

	all, err := svc.ListInventory(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestServiceUsesFirstMatchWithoutLocation(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockRepository(t)
	svc := NewService(repo)
	want := &model.InventoryItem{WineID: "w-1", Location: model.DefaultLocation, BottlesCount: 8}

	repo.On("SetBottles", mock.Anything, "w-1", "", 8, mock.AnythingOfType("time.Time")).
		Return(want, nil).Once()

	got, err := svc.UpdateInventory(context.Background(), "w-1", UpdateInventoryRequest{BottlesCount: lo.ToPtr(8), Location: "  "})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	repo.AssertNotCalled(t, "PutBottles", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestServicePropagatesRepositoryErrors(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("store unavailable")
	repo := mocks.NewMockRepository(t)
	svc := NewService(repo)

	repo.On("ListInventory", mock.Anything, "").Return(nil, dbErr).Once()
	repo.On("GetInventory", mock.Anything, "w-1", "").Return(nil, dbErr).Once()

	_, err := svc.ListInventory(context.Background(), "")
	assert.ErrorIs(t, err, dbErr)
	assert.ErrorContains(t, err, "inventory.service.ListInventory")

	_, err = svc.GetInventory(context.Background(), "w-1", "")
	assert.ErrorIs(t, err, dbErr)
	assert.ErrorContains(t, err, "inventory.service.GetInventory")
}
