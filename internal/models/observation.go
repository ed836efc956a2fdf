package models

// Observation statuses reported by the weather source chain.
const (
	SourceStatusReal = "real_data"
	SourceStatusMock = "mock_data"
)

// StatusEstimated marks a surface estimate produced by the seasonal model
// rather than an actual satellite acquisition.
const StatusEstimated = "estimated"

// Observation is a best-effort weather snapshot for a coordinate. Produced
// fresh per prediction call and never cached.
type Observation struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Pressure    float64 `json:"pressure"`
	Status      string  `json:"status"`
}

// SurfaceEstimate is an approximate land-surface temperature for a
// coordinate and date. Same per-call lifecycle as Observation.
type SurfaceEstimate struct {
	LandSurfaceTemperature float64 `json:"land_surface_temperature"`
	SatelliteSource        string  `json:"satellite_source"`
	AcquisitionDate        string  `json:"acquisition_date"`
	Confidence             float64 `json:"confidence"`
	Status                 string  `json:"status"`
}
