package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/motix/motix/internal/controllers"
	"github.com/motix/motix/internal/middleware"
	"github.com/motix/motix/internal/routes"
)

// NewRouter builds the full request pipeline: metrics recording, then the
// API-key gate, then the resource handlers. Shared by main and the
// integration tests.
func NewRouter(a *App) *mux.Router {
	healthCtrl := controllers.NewHealthController()
	sectorsCtrl := controllers.NewSectorsController(a.SectorService)
	motorcyclesCtrl := controllers.NewMotorcyclesController(a.MotorcycleService)
	movementsCtrl := controllers.NewMovementsController(a.MovementService)
	mlCtrl := controllers.NewMLController(a.Predictor)

	router := mux.NewRouter()
	router.Use(middleware.RequestMetrics)
	router.Use(middleware.APIKeyAuth(a.Config))

	router.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)
	router.Handle(routes.Metrics, promhttp.Handler()).Methods(http.MethodGet)

	router.HandleFunc(routes.Sectors, sectorsCtrl.List).Methods(http.MethodGet)
	router.HandleFunc(routes.Sectors, sectorsCtrl.Create).Methods(http.MethodPost)
	router.HandleFunc(routes.SectorByID, sectorsCtrl.GetByID).Methods(http.MethodGet)
	router.HandleFunc(routes.SectorByID, sectorsCtrl.Update).Methods(http.MethodPut)
	router.HandleFunc(routes.SectorByID, sectorsCtrl.Delete).Methods(http.MethodDelete)

	router.HandleFunc(routes.Motorcycles, motorcyclesCtrl.List).Methods(http.MethodGet)
	router.HandleFunc(routes.Motorcycles, motorcyclesCtrl.Create).Methods(http.MethodPost)
	router.HandleFunc(routes.MotorcycleByID, motorcyclesCtrl.GetByID).Methods(http.MethodGet)
	router.HandleFunc(routes.MotorcycleByID, motorcyclesCtrl.Update).Methods(http.MethodPut)
	router.HandleFunc(routes.MotorcycleByID, motorcyclesCtrl.Delete).Methods(http.MethodDelete)

	router.HandleFunc(routes.Movements, movementsCtrl.List).Methods(http.MethodGet)
	router.HandleFunc(routes.Movements, movementsCtrl.Create).Methods(http.MethodPost)
	router.HandleFunc(routes.MovementByID, movementsCtrl.GetByID).Methods(http.MethodGet)
	router.HandleFunc(routes.MovementByID, movementsCtrl.Delete).Methods(http.MethodDelete)

	router.HandleFunc(routes.MLPredict, mlCtrl.Predict).Methods(http.MethodPost)

	return router
}
