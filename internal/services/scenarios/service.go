package scenarios

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/Nazarious-ucu/environment-prediction-api/internal/models"
)

// Service serves read-only named city presets. An optional YAML file merges
// over the built-ins at startup; a missing file is not an error.
type Service struct {
	logger zerolog.Logger
	byName map[string]models.Scenario
	names  []string
}

func NewService(logger zerolog.Logger, filePath string) (*Service, error) {
	byName := make(map[string]models.Scenario)
	for _, sc := range builtinScenarios() {
		byName[sc.Name] = sc
	}

	if filePath != "" {
		loaded, err := loadFile(filePath)
		if err != nil {
			return nil, err
		}
		for _, sc := range loaded {
			byName[sc.Name] = sc
		}
		logger.Info().
			Str("file", filePath).
			Int("loaded", len(loaded)).
			Int("total", len(byName)).
			Msg("scenario presets merged")
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Service{logger: logger, byName: byName, names: names}, nil
}

// List returns every preset ordered by name.
func (s *Service) List() []models.Scenario {
	out := make([]models.Scenario, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.byName[name])
	}
	return out
}

// Get looks up a preset by name.
func (s *Service) Get(name string) (models.Scenario, bool) {
	sc, ok := s.byName[name]
	return sc, ok
}

func loadFile(path string) ([]models.Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read scenarios file: %w", err)
	}

	var out []models.Scenario
	if err := v.UnmarshalKey("scenarios", &out); err != nil {
		return nil, fmt.Errorf("parse scenarios file: %w", err)
	}
	return out, nil
}

func builtinScenarios() []models.Scenario {
	return []models.Scenario{
		{
			Name:        "downtown_core",
			Description: "Dense commercial center with heavy traffic and little greenery",
			Config: map[string]float64{
				"concrete_coverage":     0.7,
				"vegetation_coverage":   0.1,
				"water_coverage":        0.05,
				"tree_coverage":         0.1,
				"building_density":      0.8,
				"industrial_buildings":  0.15,
				"residential_buildings": 0.5,
				"solar_panel_coverage":  0.05,
				"wind_turbine_density":  0.0,
				"traffic_density":       0.8,
			},
		},
		{
			Name:        "green_district",
			Description: "Park-rich mixed district with strong renewable adoption",
			Config: map[string]float64{
				"concrete_coverage":     0.2,
				"vegetation_coverage":   0.45,
				"water_coverage":        0.15,
				"tree_coverage":         0.4,
				"building_density":      0.3,
				"industrial_buildings":  0.05,
				"residential_buildings": 0.4,
				"solar_panel_coverage":  0.3,
				"wind_turbine_density":  0.1,
				"traffic_density":       0.2,
			},
		},
		{
			Name:        "industrial_zone",
			Description: "Factory belt with high emissions and sparse vegetation",
			Config: map[string]float64{
				"concrete_coverage":     0.6,
				"vegetation_coverage":   0.05,
				"water_coverage":        0.05,
				"tree_coverage":         0.05,
				"building_density":      0.4,
				"industrial_buildings":  0.7,
				"residential_buildings": 0.1,
				"solar_panel_coverage":  0.1,
				"wind_turbine_density":  0.05,
				"traffic_density":       0.6,
			},
		},
		{
			Name:        "suburban_sprawl",
			Description: "Low-rise residential spread with moderate tree cover",
			Config: map[string]float64{
				"concrete_coverage":     0.35,
				"vegetation_coverage":   0.3,
				"water_coverage":        0.05,
				"tree_coverage":         0.25,
				"building_density":      0.25,
				"industrial_buildings":  0.05,
				"residential_buildings": 0.6,
				"solar_panel_coverage":  0.15,
				"wind_turbine_density":  0.02,
				"traffic_density":       0.4,
			},
		},
	}
}
