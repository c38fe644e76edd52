package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motix/motix/internal/models"
)

func seedSector(t *testing.T, store *MemoryStore, code string) models.Sector {
	t.Helper()
	sec := models.Sector{ID: uuid.New(), Code: code}
	require.NoError(t, store.Sectors().Create(context.Background(), &sec))
	return sec
}

func seedMotorcycle(t *testing.T, store *MemoryStore, plate string, sectorID uuid.UUID) models.Motorcycle {
	t.Helper()
	m := models.Motorcycle{ID: uuid.New(), Plate: plate, SectorID: sectorID}
	require.NoError(t, store.Motorcycles().Create(context.Background(), &m))
	return m
}

func seedMovement(t *testing.T, store *MemoryStore, motoID, sectorID uuid.UUID, at time.Time) models.Movement {
	t.Helper()
	mv := models.Movement{ID: uuid.New(), MotorcycleID: motoID, SectorID: sectorID, OccurredAt: at}
	require.NoError(t, store.Movements().Create(context.Background(), &mv))
	return mv
}

func TestMemoryStore_SectorListOrdering(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	seedSector(t, store, "C")
	seedSector(t, store, "A")
	seedSector(t, store, "B")

	items, total, err := store.Sectors().List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 3)
	assert.Equal(t, "A", items[0].Code)
	assert.Equal(t, "B", items[1].Code)
	assert.Equal(t, "C", items[2].Code)
}

func TestMemoryStore_MovementListNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sec := seedSector(t, store, "A")
	moto := seedMotorcycle(t, store, "ABC1234", sec.ID)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	old := seedMovement(t, store, moto.ID, sec.ID, base)
	mid := seedMovement(t, store, moto.ID, sec.ID, base.Add(time.Hour))
	newest := seedMovement(t, store, moto.ID, sec.ID, base.Add(2*time.Hour))

	items, total, err := store.Movements().List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 3)
	assert.Equal(t, newest.ID, items[0].ID)
	assert.Equal(t, mid.ID, items[1].ID)
	assert.Equal(t, old.ID, items[2].ID)
}

func TestMemoryStore_ListPaging(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, code := range []string{"A", "B", "C", "D", "E"} {
		seedSector(t, store, code)
	}

	items, total, err := store.Sectors().List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, items, 2)
	assert.Equal(t, "C", items[0].Code)
	assert.Equal(t, "D", items[1].Code)

	// offset past the end yields an empty page, not an error
	items, total, err = store.Sectors().List(ctx, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Empty(t, items)
}

func TestMemoryStore_SectorDeleteCascades(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	doomed := seedSector(t, store, "A")
	kept := seedSector(t, store, "B")

	inDoomed := seedMotorcycle(t, store, "AAA1111", doomed.ID)
	inKept := seedMotorcycle(t, store, "BBB2222", kept.ID)

	now := time.Now().UTC()
	seedMovement(t, store, inDoomed.ID, doomed.ID, now)
	// movement of the doomed sector's motorcycle into the kept sector is
	// still removed because its motorcycle is gone
	seedMovement(t, store, inDoomed.ID, kept.ID, now)
	surviving := seedMovement(t, store, inKept.ID, kept.ID, now)

	require.NoError(t, store.Sectors().Delete(ctx, doomed.ID))

	got, err := store.Motorcycles().GetByID(ctx, inDoomed.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = store.Motorcycles().GetByID(ctx, inKept.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)

	items, total, err := store.Movements().List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, surviving.ID, items[0].ID)
}

func TestMemoryStore_MotorcycleDeleteCascades(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sec := seedSector(t, store, "A")
	doomed := seedMotorcycle(t, store, "AAA1111", sec.ID)
	kept := seedMotorcycle(t, store, "BBB2222", sec.ID)

	now := time.Now().UTC()
	seedMovement(t, store, doomed.ID, sec.ID, now)
	surviving := seedMovement(t, store, kept.ID, sec.ID, now)

	require.NoError(t, store.Motorcycles().Delete(ctx, doomed.ID))

	items, total, err := store.Movements().List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, surviving.ID, items[0].ID)
}

func TestMemoryStore_GetMissingReturnsNilNil(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sec, err := store.Sectors().GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, sec)

	moto, err := store.Motorcycles().GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, moto)

	mv, err := store.Movements().GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, mv)
}
