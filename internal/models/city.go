package models

import (
	"errors"
	"fmt"
	"math"
)

// Defaults applied when a request omits the corresponding field.
const (
	DefaultLatitude        = 40.0
	DefaultLongitude       = -74.0
	DefaultHourOfDay       = 12
	DefaultBaseTemperature = 20.0
)

// ErrInvalidInput marks a configuration that cannot enter the prediction
// models. Checked with errors.Is.
var ErrInvalidInput = errors.New("invalid city configuration")

// CityRequest is the flat JSON body accepted by the /predict endpoints.
// Land-cover fractions default to zero when absent; pointer fields
// distinguish an omitted value from a legitimate zero (latitude 0 is the
// equator, hour 0 is midnight).
type CityRequest struct {
	ConcreteCoverage     float64 `json:"concrete_coverage"`
	VegetationCoverage   float64 `json:"vegetation_coverage"`
	WaterCoverage        float64 `json:"water_coverage"`
	TreeCoverage         float64 `json:"tree_coverage"`
	BuildingDensity      float64 `json:"building_density"`
	IndustrialBuildings  float64 `json:"industrial_buildings"`
	ResidentialBuildings float64 `json:"residential_buildings"`
	SolarPanelCoverage   float64 `json:"solar_panel_coverage"`
	WindTurbineDensity   float64 `json:"wind_turbine_density"`
	TrafficDensity       float64 `json:"traffic_density"`

	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	HourOfDay       *int     `json:"hour_of_day,omitempty"`
	BaseTemperature *float64 `json:"base_temperature,omitempty"`
}

// ToConfig resolves defaults and produces the configuration the prediction
// models consume. The returned value is never mutated after this point.
func (r CityRequest) ToConfig() CityConfig {
	cfg := CityConfig{
		ConcreteCoverage:     r.ConcreteCoverage,
		VegetationCoverage:   r.VegetationCoverage,
		WaterCoverage:        r.WaterCoverage,
		TreeCoverage:         r.TreeCoverage,
		BuildingDensity:      r.BuildingDensity,
		IndustrialBuildings:  r.IndustrialBuildings,
		ResidentialBuildings: r.ResidentialBuildings,
		SolarPanelCoverage:   r.SolarPanelCoverage,
		WindTurbineDensity:   r.WindTurbineDensity,
		TrafficDensity:       r.TrafficDensity,

		Latitude:        DefaultLatitude,
		Longitude:       DefaultLongitude,
		HourOfDay:       DefaultHourOfDay,
		BaseTemperature: r.BaseTemperature,
	}
	if r.Latitude != nil {
		cfg.Latitude = *r.Latitude
	}
	if r.Longitude != nil {
		cfg.Longitude = *r.Longitude
	}
	if r.HourOfDay != nil {
		cfg.HourOfDay = *r.HourOfDay
	}
	return cfg
}

// CityConfig describes one urban area for a single prediction call.
// Fractions are conventionally in [0,1] but not enforced; the models only
// require finite numbers and an hour within the day.
type CityConfig struct {
	ConcreteCoverage     float64 `json:"concrete_coverage"`
	VegetationCoverage   float64 `json:"vegetation_coverage"`
	WaterCoverage        float64 `json:"water_coverage"`
	TreeCoverage         float64 `json:"tree_coverage"`
	BuildingDensity      float64 `json:"building_density"`
	IndustrialBuildings  float64 `json:"industrial_buildings"`
	ResidentialBuildings float64 `json:"residential_buildings"`
	SolarPanelCoverage   float64 `json:"solar_panel_coverage"`
	WindTurbineDensity   float64 `json:"wind_turbine_density"`
	TrafficDensity       float64 `json:"traffic_density"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	HourOfDay int     `json:"hour_of_day"`

	// BaseTemperature is the optional user override; nil falls back to
	// DefaultBaseTemperature when neither weather nor satellite data is
	// available.
	BaseTemperature *float64 `json:"base_temperature,omitempty"`
}

// Validate reports the first field that would break the prediction formulas.
func (c CityConfig) Validate() error {
	if c.HourOfDay < 0 || c.HourOfDay > 23 {
		return fmt.Errorf("%w: hour_of_day %d outside [0,23]", ErrInvalidInput, c.HourOfDay)
	}

	fields := []struct {
		name  string
		value float64
	}{
		{"concrete_coverage", c.ConcreteCoverage},
		{"vegetation_coverage", c.VegetationCoverage},
		{"water_coverage", c.WaterCoverage},
		{"tree_coverage", c.TreeCoverage},
		{"building_density", c.BuildingDensity},
		{"industrial_buildings", c.IndustrialBuildings},
		{"residential_buildings", c.ResidentialBuildings},
		{"solar_panel_coverage", c.SolarPanelCoverage},
		{"wind_turbine_density", c.WindTurbineDensity},
		{"traffic_density", c.TrafficDensity},
		{"latitude", c.Latitude},
		{"longitude", c.Longitude},
	}
	for _, f := range fields {
		if !isFinite(f.value) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidInput, f.name)
		}
	}
	if c.BaseTemperature != nil && !isFinite(*c.BaseTemperature) {
		return fmt.Errorf("%w: base_temperature is not a finite number", ErrInvalidInput)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
