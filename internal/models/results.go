package models

// Result statuses. Every model returns a value tagged with one of these;
// failures never cross the model boundary as errors or panics.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// TemperatureFactors breaks the predicted temperature into its additive
// terms. Cooling terms are negative.
type TemperatureFactors struct {
	BaseTemperature   float64 `json:"base_temperature"`
	UHIEffect         float64 `json:"uhi_effect"`
	ConcreteHeating   float64 `json:"concrete_heating"`
	BuildingHeating   float64 `json:"building_heating"`
	IndustrialHeating float64 `json:"industrial_heating"`
	TreeCooling       float64 `json:"tree_cooling"`
	VegetationCooling float64 `json:"vegetation_cooling"`
	WaterCooling      float64 `json:"water_cooling"`
	WindCooling       float64 `json:"wind_cooling"`
	DailyVariation    float64 `json:"daily_variation"`
}

// TemperatureResult is the temperature model output. On failure only Status
// and Error are meaningful.
type TemperatureResult struct {
	PredictedTemperature float64             `json:"predicted_temperature"`
	BaseTemperature      float64             `json:"base_temperature"`
	UHIIntensity         float64             `json:"uhi_intensity"`
	DataSource           string              `json:"data_source"`
	Confidence           float64             `json:"confidence"`
	Factors              *TemperatureFactors `json:"factors,omitempty"`
	WeatherConditions    *Observation        `json:"weather_conditions"`
	SatelliteData        *SurfaceEstimate    `json:"satellite_data"`
	Status               string              `json:"status"`
	Error                string              `json:"error,omitempty"`
}

func (r TemperatureResult) IsSuccess() bool { return r.Status == StatusSuccess }

// AirQualityResult is the air quality model output.
type AirQualityResult struct {
	AirQualityIndex    float64      `json:"air_quality_index"`
	Category           string       `json:"category"`
	HealthImplications string       `json:"health_implications"`
	PollutionSources   float64      `json:"pollution_sources"`
	PollutionSinks     float64      `json:"pollution_sinks"`
	WindEffect         float64      `json:"wind_effect"`
	HumidityEffect     float64      `json:"humidity_effect"`
	Recommendations    []string     `json:"recommendations"`
	WeatherConditions  *Observation `json:"weather_conditions"`
	Status             string       `json:"status"`
	Error              string       `json:"error,omitempty"`
}

func (r AirQualityResult) IsSuccess() bool { return r.Status == StatusSuccess }

// EnergyResult is the energy model output. Efficiencies are percentages.
type EnergyResult struct {
	EnergyBalance         float64      `json:"energy_balance"`
	TotalProduction       float64      `json:"total_production"`
	SolarProduction       float64      `json:"solar_production"`
	WindProduction        float64      `json:"wind_production"`
	TotalConsumption      float64      `json:"total_consumption"`
	RenewablePercentage   float64      `json:"renewable_percentage"`
	SustainabilityScore   float64      `json:"sustainability_score"`
	SolarEfficiency       float64      `json:"solar_efficiency"`
	WindEfficiency        float64      `json:"wind_efficiency"`
	ConsumptionMultiplier float64      `json:"consumption_multiplier"`
	WeatherConditions     *Observation `json:"weather_conditions"`
	Status                string       `json:"status"`
	Error                 string       `json:"error,omitempty"`
}

func (r EnergyResult) IsSuccess() bool { return r.Status == StatusSuccess }

// Scores holds the composite sub-scores and the blended overall score, all
// on a 0-100 scale.
type Scores struct {
	OverallScore     float64 `json:"overall_score"`
	TemperatureScore float64 `json:"temperature_score"`
	AirQualityScore  float64 `json:"air_quality_score"`
	EnergyScore      float64 `json:"energy_score"`
}

// DataSources reports which providers fed a complete assessment.
type DataSources struct {
	WeatherAPI      string `json:"weather_api"`
	SatelliteData   string `json:"satellite_data"`
	PredictionModel string `json:"prediction_model"`
}

// Assessment is the complete environmental assessment: the three model
// results plus the composite scores and deduplicated recommendations.
type Assessment struct {
	Temperature     TemperatureResult `json:"temperature"`
	AirQuality      AirQualityResult  `json:"air_quality"`
	Energy          EnergyResult      `json:"energy"`
	Scores          Scores            `json:"scores"`
	Recommendations []string          `json:"recommendations"`
	DataSources     DataSources       `json:"data_sources"`
	Status          string            `json:"status"`
}
