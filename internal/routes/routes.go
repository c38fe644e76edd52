package routes

const (
	// Health / observability
	Health  = "/health"
	Metrics = "/metrics"

	// Sector endpoints
	Sectors    = "/api/v1/sectors"
	SectorByID = "/api/v1/sectors/{id}"

	// Motorcycle endpoints
	Motorcycles    = "/api/v1/motorcycles"
	MotorcycleByID = "/api/v1/motorcycles/{id}"

	// Movement endpoints (immutable history, no update route)
	Movements    = "/api/v1/movements"
	MovementByID = "/api/v1/movements/{id}"

	// ML endpoints
	MLPredict = "/api/v1/ml/predict"
)
