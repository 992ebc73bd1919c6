package weather

import (
	"fmt"
	"log"
	"time"

	"github.com/i474232898/weathercaster/internal/common"
)

// DefaultMaxHourlyItems bounds the hourly series when no limit is configured.
const DefaultMaxHourlyItems = 24

// Normalize flattens the raw provider payloads into a ForecastResult.
// Any of the raw inputs may be nil (skipped or failed fetch). It returns
// ErrNoData when no section ends up with data.
func Normalize(locationName string, current *RawCurrent, hourly *RawHourly, daily *RawDaily, maxHourly int) (*ForecastResult, error) {
	if maxHourly <= 0 {
		maxHourly = DefaultMaxHourlyItems
	}

	result := &ForecastResult{
		Hourly: []HourlyPoint{},
		Daily:  []DailyPoint{},
	}

	if current != nil {
		result.Current = normalizeCurrent(current)
	}

	if hourly != nil {
		items := hourly.List
		if len(items) > maxHourly {
			items = items[:maxHourly]
		}
		for _, item := range items {
			result.Hourly = append(result.Hourly, normalizeHourly(item))
		}
	}

	if daily != nil {
		// Days without their own daylight times borrow today's.
		var fallback Daylight
		if result.Current != nil {
			fallback = result.Current.Daylight
		}
		for _, item := range daily.List {
			result.Daily = append(result.Daily, normalizeDaily(item, fallback))
		}
	}

	if result.Empty() {
		log.Printf("WARN: failed to retrieve sufficient weather data for %s", locationName)
		return nil, fmt.Errorf("%w for %s", ErrNoData, locationName)
	}

	return result, nil
}

func normalizeCurrent(raw *RawCurrent) *Current {
	cond, emoji := describe(raw.Weather)

	c := &Current{
		Location:  raw.Name,
		DateTime:  unixUTC(raw.Dt),
		Condition: cond,
		Emoji:     emoji,
	}
	if raw.Main != nil {
		c.Temperature = raw.Main.Temp
		c.FeelsLikeTemperature = raw.Main.FeelsLike
		c.HighTemperature = raw.Main.TempMax
		c.LowTemperature = raw.Main.TempMin
		c.Humidity = raw.Main.Humidity
		c.Pressure = raw.Main.Pressure
	}
	if raw.Wind != nil {
		c.Wind = Wind{Speed: raw.Wind.Speed, Direction: raw.Wind.Deg}
	}
	if raw.Sys != nil {
		c.Daylight = Daylight{
			Sunrise: daylightTime(raw.Sys.Sunrise),
			Sunset:  daylightTime(raw.Sys.Sunset),
		}
	}
	return c
}

func normalizeHourly(raw RawHourlyItem) HourlyPoint {
	cond, emoji := describe(raw.Weather)

	p := HourlyPoint{
		Time:      unixUTC(raw.Dt),
		Condition: cond,
		Emoji:     emoji,
	}
	if raw.Main != nil {
		p.Temperature = raw.Main.Temp
		p.Humidity = raw.Main.Humidity
		p.Pressure = raw.Main.Pressure
	}
	if raw.Wind != nil {
		p.Wind = Wind{Speed: raw.Wind.Speed, Direction: raw.Wind.Deg}
	}
	return p
}

func normalizeDaily(raw RawDailyItem, fallback Daylight) DailyPoint {
	cond, emoji := describe(raw.Weather)

	ts := unixUTC(raw.Dt)
	p := DailyPoint{
		ForecastDate: time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC),
		Condition:    cond,
		Emoji:        emoji,
		Humidity:     raw.Humidity,
		Daylight:     fallback,
	}

	if raw.Temp != nil {
		p.MaxTemperature = raw.Temp.Day
		p.MinTemperature = raw.Temp.Day
		if raw.Temp.Max != nil {
			p.MaxTemperature = *raw.Temp.Max
		}
		if raw.Temp.Min != nil {
			p.MinTemperature = *raw.Temp.Min
		}
	}

	if raw.Speed != nil {
		p.Wind.Speed = *raw.Speed
	}
	if raw.Deg != nil {
		p.Wind.Direction = *raw.Deg
	}

	if raw.Sunrise != nil && *raw.Sunrise > 0 {
		p.Daylight.Sunrise = unixUTCPtr(*raw.Sunrise)
	}
	if raw.Sunset != nil && *raw.Sunset > 0 {
		p.Daylight.Sunset = unixUTCPtr(*raw.Sunset)
	}

	return p
}

// describe returns the capitalized description and emoji of the first condition.
func describe(conds []RawCondition) (string, string) {
	if len(conds) == 0 {
		return "", UnknownEmoji
	}
	return common.Capitalize(conds[0].Description), EmojiForIcon(conds[0].Icon)
}

func unixUTC(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

func unixUTCPtr(sec int64) *time.Time {
	t := unixUTC(sec)
	return &t
}

// daylightTime maps the 0 upstream sends during polar day or night to nil.
func daylightTime(sec int64) *time.Time {
	if sec <= 0 {
		return nil
	}
	return unixUTCPtr(sec)
}
