package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/i474232898/weathercaster/internal/weather"
	"github.com/sony/gobreaker"
)

// Endpoints holds the OpenWeatherMap URLs the provider talks to.
type Endpoints struct {
	Geocoding string
	Current   string
	Hourly    string
	Daily     string
}

// DefaultEndpoints returns the public OpenWeatherMap endpoints. The hourly
// forecast is only served from the pro host.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Geocoding: "https://api.openweathermap.org/geo/1.0/direct",
		Current:   "https://api.openweathermap.org/data/2.5/weather",
		Hourly:    "https://pro.openweathermap.org/data/2.5/forecast/hourly",
		Daily:     "https://api.openweathermap.org/data/2.5/forecast/daily",
	}
}

// endpointSpec pairs an upstream URL with its query builder.
type endpointSpec struct {
	url   string
	query func(c weather.Coordinates, apiKey string) url.Values
}

// OpenWeatherProvider implements weather.Geocoder and weather.Fetcher for OpenWeatherMap.
type OpenWeatherProvider struct {
	name      string
	apiKey    string
	geocoding string
	endpoints map[weather.Endpoint]endpointSpec
	httpCfg   HTTPClientConfig
	circuits  map[string]*gobreaker.CircuitBreaker
}

var (
	_ weather.Geocoder = (*OpenWeatherProvider)(nil)
	_ weather.Fetcher  = (*OpenWeatherProvider)(nil)
)

func NewOpenWeatherProvider(httpCfg HTTPClientConfig, apiKey string, eps Endpoints) *OpenWeatherProvider {
	p := &OpenWeatherProvider{
		name:      "openweathermap",
		apiKey:    apiKey,
		geocoding: eps.Geocoding,
		endpoints: map[weather.Endpoint]endpointSpec{
			weather.EndpointCurrent: {url: eps.Current, query: forecastQuery},
			weather.EndpointHourly:  {url: eps.Hourly, query: forecastQuery},
			weather.EndpointDaily: {url: eps.Daily, query: func(c weather.Coordinates, apiKey string) url.Values {
				v := forecastQuery(c, apiKey)
				v.Set("cnt", strconv.Itoa(weather.DailyForecastDays))
				return v
			}},
		},
		httpCfg:  httpCfg,
		circuits: make(map[string]*gobreaker.CircuitBreaker),
	}

	for _, name := range []string{"geocoding", string(weather.EndpointCurrent), string(weather.EndpointHourly), string(weather.EndpointDaily)} {
		p.circuits[name] = newBreaker(p.name + "-" + name)
	}
	return p
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

func forecastQuery(c weather.Coordinates, apiKey string) url.Values {
	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(c.Lat, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(c.Lon, 'f', -1, 64))
	values.Set("appid", apiKey)
	values.Set("units", "metric")
	return values
}

type geocodingItem struct {
	Name    string  `json:"name" validate:"required"`
	Lat     float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon     float64 `json:"lon" validate:"gte=-180,lte=180"`
	Country string  `json:"country"`
}

// Resolve asks the geocoding endpoint for the single best match of locationName.
func (p *OpenWeatherProvider) Resolve(ctx context.Context, locationName string) (*weather.GeocodingResult, error) {
	locationName = strings.TrimSpace(locationName)
	if locationName == "" {
		return nil, fmt.Errorf("%w: empty location", weather.ErrLocationNotFound)
	}
	if p.apiKey == "" {
		return nil, fmt.Errorf("%w: openweather api key is not configured", weather.ErrLocationNotFound)
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("q", locationName)
		values.Set("limit", "1")
		values.Set("appid", p.apiKey)
		return http.NewRequest(http.MethodGet, p.geocoding+"?"+values.Encode(), nil)
	}

	body, err := doRequest(ctx, p.httpCfg, p.circuits["geocoding"], buildRequest)
	if err != nil {
		return nil, fmt.Errorf("%w: geocoding %q: %v", weather.ErrLocationNotFound, locationName, err)
	}

	var items []geocodingItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: geocoding %q: %v: %v", weather.ErrLocationNotFound, locationName, errInvalidBody, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no results for %q", weather.ErrLocationNotFound, locationName)
	}

	item := items[0]
	if err := validate.Struct(&item); err != nil {
		return nil, fmt.Errorf("%w: geocoding %q: %v: %v", weather.ErrLocationNotFound, locationName, errInvalidBody, err)
	}
	return &weather.GeocodingResult{
		Coordinates: &weather.Coordinates{Lat: item.Lat, Lon: item.Lon},
		Name:        item.Name,
		Country:     item.Country,
	}, nil
}

func (p *OpenWeatherProvider) FetchCurrent(ctx context.Context, c weather.Coordinates) (*weather.RawCurrent, error) {
	var payload weather.RawCurrent
	if err := p.fetch(ctx, weather.EndpointCurrent, c, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (p *OpenWeatherProvider) FetchHourly(ctx context.Context, c weather.Coordinates) (*weather.RawHourly, error) {
	var payload weather.RawHourly
	if err := p.fetch(ctx, weather.EndpointHourly, c, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (p *OpenWeatherProvider) FetchDaily(ctx context.Context, c weather.Coordinates) (*weather.RawDaily, error) {
	var payload weather.RawDaily
	if err := p.fetch(ctx, weather.EndpointDaily, c, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// fetch runs one upstream call for ep and decodes the validated payload into out.
func (p *OpenWeatherProvider) fetch(ctx context.Context, ep weather.Endpoint, c weather.Coordinates, out interface{}) error {
	if p.apiKey == "" {
		return fmt.Errorf("openweather api key is not configured")
	}
	spec, ok := p.endpoints[ep]
	if !ok {
		return fmt.Errorf("unknown endpoint %q", ep)
	}

	buildRequest := func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, spec.url+"?"+spec.query(c, p.apiKey).Encode(), nil)
	}

	body, err := doRequest(ctx, p.httpCfg, p.circuits[string(ep)], buildRequest)
	if err != nil {
		return fmt.Errorf("%s %s: %w", p.name, ep, err)
	}
	if err := decodeValid(body, out); err != nil {
		return fmt.Errorf("%s %s: %w", p.name, ep, err)
	}
	return nil
}
