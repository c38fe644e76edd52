package app

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/motix/motix/internal/config"
	"github.com/motix/motix/internal/repositories"
	"github.com/motix/motix/internal/services"
	"github.com/motix/motix/internal/utils"
)

// App holds the configured store and services. Handlers keep no entity
// state across requests; everything stateful lives behind the store.
type App struct {
	Config *config.Config

	SectorService     services.SectorService
	MotorcycleService services.MotorcycleService
	MovementService   services.MovementService
	Predictor         services.Predictor

	pool *pgxpool.Pool
}

// NewApp connects the store selected by DB_DRIVER and wires the services.
func NewApp(cfg *config.Config) *App {
	utils.Logger.Info("Initializing motix App")

	var store repositories.Store
	var pool *pgxpool.Pool
	switch cfg.DBDriver {
	case config.DriverMemory:
		store = repositories.NewMemoryStore()
	default:
		var err error
		pool, err = repositories.NewPool(context.Background(), cfg.DBURL)
		if err != nil {
			utils.Logger.WithError(err).Fatal("Failed to connect to Postgres")
		}
		store = repositories.NewPostgresStore(pool)
	}

	a := NewAppWithStore(cfg, store)
	a.pool = pool
	return a
}

// NewAppWithStore wires services over an already-constructed store;
// integration tests use it with the in-memory store.
func NewAppWithStore(cfg *config.Config, store repositories.Store) *App {
	return &App{
		Config:            cfg,
		SectorService:     services.NewSectorService(store.Sectors()),
		MotorcycleService: services.NewMotorcycleService(store.Motorcycles(), store.Sectors()),
		MovementService:   services.NewMovementService(store.Movements(), store.Motorcycles(), store.Sectors()),
		Predictor:         services.NewMLPredictionService(),
	}
}

func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
	utils.Logger.Info("motix app shutting down.")
}
