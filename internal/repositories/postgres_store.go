package repositories

// PostgresStore wires the pgx-backed repositories over one connection pool.
type PostgresStore struct {
	sectors     SectorRepository
	motorcycles MotorcycleRepository
	movements   MovementRepository
}

func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{
		sectors:     NewSectorRepository(db),
		motorcycles: NewMotorcycleRepository(db),
		movements:   NewMovementRepository(db),
	}
}

func (s *PostgresStore) Sectors() SectorRepository         { return s.sectors }
func (s *PostgresStore) Motorcycles() MotorcycleRepository { return s.motorcycles }
func (s *PostgresStore) Movements() MovementRepository     { return s.movements }
