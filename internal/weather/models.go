package weather

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrLocationNotFound is returned when a place name cannot be resolved to coordinates.
	ErrLocationNotFound = errors.New("location not found")
	// ErrNoData is returned when no forecast section could be assembled.
	ErrNoData = errors.New("no weather data available")
	// ErrInvalidRange is returned for forecast ranges outside the supported set.
	ErrInvalidRange = errors.New("invalid forecast range")
)

// Range is the requested forecast horizon.
type Range string

const (
	RangeCurrent  Range = "current"
	RangeHourly   Range = "hourly"
	RangeDaily    Range = "daily"
	RangeTomorrow Range = "tomorrow"
)

// Valid reports whether r is one of the supported ranges.
func (r Range) Valid() bool {
	switch r {
	case RangeCurrent, RangeHourly, RangeDaily, RangeTomorrow:
		return true
	}
	return false
}

// ParseRange accepts a range name in any case, surrounded by optional whitespace.
func ParseRange(s string) (Range, error) {
	r := Range(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
	return r, nil
}

// Coordinates is a geographic position in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// GeocodingResult is the provider's single best match for a place name.
type GeocodingResult struct {
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Name        string       `json:"name"`
	Country     string       `json:"country"`
}

// Wind holds speed in m/s and the meteorological direction in degrees.
type Wind struct {
	Speed     float64 `json:"speed"`
	Direction int     `json:"direction"`
}

// Daylight holds sunrise and sunset instants (UTC). Either may be nil for
// forecast days where neither the provider nor the current conditions supply it.
type Daylight struct {
	Sunrise *time.Time `json:"sunrise,omitempty"`
	Sunset  *time.Time `json:"sunset,omitempty"`
}

// Current is the simplified current-conditions view.
type Current struct {
	Location             string    `json:"location"`
	DateTime             time.Time `json:"date_time"`
	Condition            string    `json:"condition"`
	Emoji                string    `json:"emoji"`
	Temperature          float64   `json:"temperature"`
	FeelsLikeTemperature float64   `json:"feels_like_temperature"`
	HighTemperature      float64   `json:"high_temperature"`
	LowTemperature       float64   `json:"low_temperature"`
	Wind                 Wind      `json:"wind"`
	Humidity             int       `json:"humidity"`
	Pressure             int       `json:"pressure"`
	Daylight             Daylight  `json:"daylight"`
}

// HourlyPoint is one step of the hourly forecast.
type HourlyPoint struct {
	Time        time.Time `json:"time"`
	Temperature float64   `json:"temperature"`
	Condition   string    `json:"condition"`
	Emoji       string    `json:"emoji"`
	Wind        Wind      `json:"wind"`
	Humidity    int       `json:"humidity"`
	Pressure    int       `json:"pressure"`
}

// DailyPoint is one day of the daily forecast.
// ForecastDate is always midnight UTC of the forecast day.
type DailyPoint struct {
	ForecastDate   time.Time `json:"forecast_date"`
	MaxTemperature float64   `json:"max_temperature"`
	MinTemperature float64   `json:"min_temperature"`
	Condition      string    `json:"condition"`
	Emoji          string    `json:"emoji"`
	Wind           Wind      `json:"wind"`
	Humidity       int       `json:"humidity"`
	Daylight       Daylight  `json:"daylight"`
}

// ForecastResult aggregates whichever sections the requested range produced.
// Hourly and Daily are never nil, only empty.
type ForecastResult struct {
	Location *GeocodingResult `json:"location,omitempty"`
	Range    Range            `json:"range,omitempty"`
	Current  *Current         `json:"current"`
	Hourly   []HourlyPoint    `json:"hourly"`
	Daily    []DailyPoint     `json:"daily"`
}

// Empty reports whether the result carries no data at all.
func (f *ForecastResult) Empty() bool {
	return f == nil || (f.Current == nil && len(f.Hourly) == 0 && len(f.Daily) == 0)
}
