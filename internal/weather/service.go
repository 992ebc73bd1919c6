package weather

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
)

// Service resolves a location and assembles a ForecastResult from the
// upstream endpoints the requested range needs.
type Service struct {
	geocoder  Geocoder
	fetcher   Fetcher
	maxHourly int
}

// NewService creates a new Service. maxHourly <= 0 selects DefaultMaxHourlyItems.
func NewService(geocoder Geocoder, fetcher Fetcher, maxHourly int) *Service {
	if maxHourly <= 0 {
		maxHourly = DefaultMaxHourlyItems
	}
	return &Service{
		geocoder:  geocoder,
		fetcher:   fetcher,
		maxHourly: maxHourly,
	}
}

// GetForecast geocodes locationName and fetches only the endpoints rng maps to,
// concurrently. Failed fetches are logged and leave their section empty; only a
// result without any data is reported as ErrNoData.
func (s *Service) GetForecast(ctx context.Context, locationName string, rng Range) (*ForecastResult, error) {
	if !rng.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRange, rng)
	}

	reqID := uuid.NewString()
	log.Printf("DEBUG: [%s] GetForecast called for %q range=%s", reqID, locationName, rng)

	geo, err := s.geocoder.Resolve(ctx, locationName)
	if err != nil || geo == nil || geo.Coordinates == nil {
		log.Printf("WARN: [%s] could not get valid coordinates for %q: %v", reqID, locationName, err)
		return nil, fmt.Errorf("%w: %s", ErrLocationNotFound, locationName)
	}
	coords := *geo.Coordinates

	var (
		wg      sync.WaitGroup
		current *RawCurrent
		hourly  *RawHourly
		daily   *RawDaily
	)

	// Each goroutine owns exactly one result slot.
	for _, ep := range EndpointsFor(rng) {
		wg.Add(1)
		go func(ep Endpoint) {
			defer wg.Done()

			var err error
			switch ep {
			case EndpointCurrent:
				var r *RawCurrent
				if r, err = s.fetcher.FetchCurrent(ctx, coords); err == nil {
					current = r
				}
			case EndpointHourly:
				var r *RawHourly
				if r, err = s.fetcher.FetchHourly(ctx, coords); err == nil {
					hourly = r
				}
			case EndpointDaily:
				var r *RawDaily
				if r, err = s.fetcher.FetchDaily(ctx, coords); err == nil {
					daily = r
				}
			}
			if err != nil {
				// Partial success is fine; the section stays empty.
				log.Printf("ERROR: [%s] %s fetch failed for %q: %v", reqID, ep, locationName, err)
			}
		}(ep)
	}

	wg.Wait()

	result, err := Normalize(locationName, current, hourly, daily, s.maxHourly)
	if err != nil {
		return nil, err
	}
	result.Location = geo
	result.Range = rng
	return result, nil
}
