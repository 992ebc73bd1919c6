package weather

// Endpoint identifies one of the upstream forecast endpoints.
type Endpoint string

const (
	EndpointCurrent Endpoint = "current"
	EndpointHourly  Endpoint = "hourly"
	EndpointDaily   Endpoint = "daily"
)

// DailyForecastDays is the number of days requested from the daily endpoint.
const DailyForecastDays = 16

// EndpointsFor returns the endpoints that must be fetched to answer r.
// Tomorrow is served from the daily series; the caller picks the day.
func EndpointsFor(r Range) []Endpoint {
	switch r {
	case RangeCurrent:
		return []Endpoint{EndpointCurrent}
	case RangeHourly:
		return []Endpoint{EndpointHourly}
	case RangeDaily, RangeTomorrow:
		return []Endpoint{EndpointDaily}
	default:
		return nil
	}
}
