package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/motix/motix/internal/models"
)

// MemoryStore is a map-backed Store used by deployment targets without a
// database and by the integration tests. It enforces no foreign keys (the
// services pre-check references explicitly), so cascades on delete are
// applied by hand to match the relational schema.
type MemoryStore struct {
	mu          sync.RWMutex
	sectors     map[uuid.UUID]models.Sector
	motorcycles map[uuid.UUID]models.Motorcycle
	movements   map[uuid.UUID]models.Movement
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sectors:     make(map[uuid.UUID]models.Sector),
		motorcycles: make(map[uuid.UUID]models.Motorcycle),
		movements:   make(map[uuid.UUID]models.Movement),
	}
}

func (s *MemoryStore) Sectors() SectorRepository         { return &memorySectorRepo{s} }
func (s *MemoryStore) Motorcycles() MotorcycleRepository { return &memoryMotorcycleRepo{s} }
func (s *MemoryStore) Movements() MovementRepository     { return &memoryMovementRepo{s} }

func pageSlice[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

/* ---------- sectors ---------- */

type memorySectorRepo struct{ store *MemoryStore }

func (r *memorySectorRepo) Create(_ context.Context, sec *models.Sector) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.sectors[sec.ID] = *sec
	return nil
}

func (r *memorySectorRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Sector, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if sec, ok := r.store.sectors[id]; ok {
		return &sec, nil
	}
	return nil, nil
}

func (r *memorySectorRepo) List(_ context.Context, limit, offset int) ([]models.Sector, int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	all := make([]models.Sector, 0, len(r.store.sectors))
	for _, sec := range r.store.sectors {
		all = append(all, sec)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Code != all[j].Code {
			return all[i].Code < all[j].Code
		}
		return all[i].ID.String() < all[j].ID.String()
	})
	return pageSlice(all, limit, offset), len(all), nil
}

func (r *memorySectorRepo) Update(_ context.Context, sec *models.Sector) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.sectors[sec.ID] = *sec
	return nil
}

func (r *memorySectorRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.sectors, id)
	// manual cascade: motorcycles in the sector, movements referencing
	// either the sector or a removed motorcycle
	for mid, m := range r.store.motorcycles {
		if m.SectorID == id {
			delete(r.store.motorcycles, mid)
		}
	}
	for mvid, mv := range r.store.movements {
		if mv.SectorID == id {
			delete(r.store.movements, mvid)
			continue
		}
		if _, ok := r.store.motorcycles[mv.MotorcycleID]; !ok {
			delete(r.store.movements, mvid)
		}
	}
	return nil
}

func (r *memorySectorRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	_, ok := r.store.sectors[id]
	return ok, nil
}

/* ---------- motorcycles ---------- */

type memoryMotorcycleRepo struct{ store *MemoryStore }

func (r *memoryMotorcycleRepo) Create(_ context.Context, m *models.Motorcycle) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.motorcycles[m.ID] = *m
	return nil
}

func (r *memoryMotorcycleRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Motorcycle, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if m, ok := r.store.motorcycles[id]; ok {
		return &m, nil
	}
	return nil, nil
}

func (r *memoryMotorcycleRepo) List(_ context.Context, limit, offset int) ([]models.Motorcycle, int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	all := make([]models.Motorcycle, 0, len(r.store.motorcycles))
	for _, m := range r.store.motorcycles {
		all = append(all, m)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Plate != all[j].Plate {
			return all[i].Plate < all[j].Plate
		}
		return all[i].ID.String() < all[j].ID.String()
	})
	return pageSlice(all, limit, offset), len(all), nil
}

func (r *memoryMotorcycleRepo) Update(_ context.Context, m *models.Motorcycle) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.motorcycles[m.ID] = *m
	return nil
}

func (r *memoryMotorcycleRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.motorcycles, id)
	for mvid, mv := range r.store.movements {
		if mv.MotorcycleID == id {
			delete(r.store.movements, mvid)
		}
	}
	return nil
}

func (r *memoryMotorcycleRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	_, ok := r.store.motorcycles[id]
	return ok, nil
}

/* ---------- movements ---------- */

type memoryMovementRepo struct{ store *MemoryStore }

func (r *memoryMovementRepo) Create(_ context.Context, mv *models.Movement) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.movements[mv.ID] = *mv
	return nil
}

func (r *memoryMovementRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Movement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if mv, ok := r.store.movements[id]; ok {
		return &mv, nil
	}
	return nil, nil
}

func (r *memoryMovementRepo) List(_ context.Context, limit, offset int) ([]models.Movement, int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	all := make([]models.Movement, 0, len(r.store.movements))
	for _, mv := range r.store.movements {
		all = append(all, mv)
	}
	// newest first, id tiebreak, matching the Postgres ordering
	sort.Slice(all, func(i, j int) bool {
		if !all[i].OccurredAt.Equal(all[j].OccurredAt) {
			return all[i].OccurredAt.After(all[j].OccurredAt)
		}
		return all[i].ID.String() < all[j].ID.String()
	})
	return pageSlice(all, limit, offset), len(all), nil
}

func (r *memoryMovementRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.movements, id)
	return nil
}
