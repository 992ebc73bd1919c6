package weather

import (
	"context"
)

// Geocoder resolves a free-form place name to the provider's single best match.
// Any failure is reported as an error wrapping ErrLocationNotFound.
type Geocoder interface {
	Resolve(ctx context.Context, locationName string) (*GeocodingResult, error)
}

// Fetcher abstracts the three upstream forecast endpoints (e.g. OpenWeatherMap
// current weather, hourly forecast and 16-day daily forecast).
type Fetcher interface {
	FetchCurrent(ctx context.Context, c Coordinates) (*RawCurrent, error)
	FetchHourly(ctx context.Context, c Coordinates) (*RawHourly, error)
	FetchDaily(ctx context.Context, c Coordinates) (*RawDaily, error)
}
