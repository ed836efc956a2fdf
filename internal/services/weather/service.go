package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"reflect"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/environment-prediction-api/internal/models"
)

// ErrUnavailable is returned when every configured provider failed. Callers
// degrade to their fallback baseline instead of propagating it further.
var ErrUnavailable = errors.New("all weather providers unavailable")

type client interface {
	Fetch(ctx context.Context, lat, lon float64) (models.Observation, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ServiceProvider queries an ordered chain of weather clients; the first
// successful observation wins.
type ServiceProvider struct {
	logger  zerolog.Logger
	clients []client
}

func NewService(logger zerolog.Logger, clients ...client) *ServiceProvider {
	return &ServiceProvider{clients: clients, logger: logger}
}

func getFuncName(fn interface{}) string {
	pc := reflect.ValueOf(fn).Pointer()
	return path.Base(runtime.FuncForPC(pc).Name())
}

// GetByCoords fetches an observation for the coordinate, trying each client
// in order. Returns ErrUnavailable when the whole chain failed.
func (s *ServiceProvider) GetByCoords(ctx context.Context, lat, lon float64) (models.Observation, error) {
	for _, cl := range s.clients {
		s.logger.Debug().
			Ctx(ctx).
			Str("client", getFuncName(cl.Fetch)).
			Float64("lat", lat).
			Float64("lon", lon).
			Msg("calling Fetch")
		data, err := cl.Fetch(ctx, lat, lon)
		if err != nil {
			s.logger.Warn().
				Ctx(ctx).
				Str("client", getFuncName(cl.Fetch)).
				Err(err).
				Msg("fetch failed")
			continue
		}
		s.logger.Debug().
			Ctx(ctx).
			Str("client", getFuncName(cl.Fetch)).
			Str("status", data.Status).
			Msg("fetch succeeded")
		return data, nil
	}
	err := fmt.Errorf("%w: lat=%g lon=%g", ErrUnavailable, lat, lon)
	s.logger.Warn().
		Ctx(ctx).
		Err(err).
		Msg("GetByCoords giving up")
	return models.Observation{}, err
}
