// Package format renders forecast results as plain text for the console and
// the text variant of the HTTP API.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/i474232898/weathercaster/internal/weather"
)

const (
	maxHourlyLines = 8
	maxDailyLines  = 5

	stampLayout = "Jan 02, 15:04"
	hourLayout  = "15:04"
	dayLayout   = "Jan 02"
)

// Tomorrow returns the daily point dated the day after now (UTC), if any.
func Tomorrow(daily []weather.DailyPoint, now time.Time) (weather.DailyPoint, bool) {
	now = now.UTC()
	want := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	for _, d := range daily {
		if d.ForecastDate.Equal(want) {
			return d, true
		}
	}
	return weather.DailyPoint{}, false
}

// Summary renders f as human-readable text. For the tomorrow range only the
// next day is shown.
func Summary(f *weather.ForecastResult) string {
	return summaryAt(f, time.Now())
}

func summaryAt(f *weather.ForecastResult, now time.Time) string {
	if f.Empty() {
		return "No weather data available."
	}

	var parts []string

	if c := f.Current; c != nil {
		parts = append(parts,
			fmt.Sprintf("Currently in %s (%s):", c.Location, c.DateTime.Format(stampLayout)),
			fmt.Sprintf("  Condition: %s %s", c.Condition, c.Emoji),
			fmt.Sprintf("  Temperature: %.2f°C (Feels like: %.2f°C)", c.Temperature, c.FeelsLikeTemperature),
			fmt.Sprintf("  High: %.1f°C | Low: %.1f°C", c.HighTemperature, c.LowTemperature),
			fmt.Sprintf("  Wind: %.2f m/s @ %d°", c.Wind.Speed, c.Wind.Direction),
			fmt.Sprintf("  Humidity: %d%%", c.Humidity),
			fmt.Sprintf("  Pressure: %d hPa", c.Pressure),
			fmt.Sprintf("  Sunrise: %s | Sunset: %s", stamp(c.Daylight.Sunrise), stamp(c.Daylight.Sunset)),
		)
	}

	if len(f.Hourly) > 0 {
		parts = append(parts, header(parts, fmt.Sprintf("Hourly Forecast (next %d hours):", len(f.Hourly))))
		for i, h := range f.Hourly {
			if i == maxHourlyLines {
				break
			}
			parts = append(parts, fmt.Sprintf("  %s: %s %s, %.1f°C, Wind: %.1f m/s @ %d°",
				h.Time.Format(hourLayout), h.Condition, h.Emoji, h.Temperature, h.Wind.Speed, h.Wind.Direction))
		}
	}

	if len(f.Daily) > 0 {
		days := f.Daily
		title := fmt.Sprintf("Daily Forecast (next %d days):", min(len(days), maxDailyLines))
		if f.Range == weather.RangeTomorrow {
			d, ok := Tomorrow(days, now)
			if !ok {
				parts = append(parts, header(parts, "No forecast available for tomorrow."))
				return strings.Join(parts, "\n")
			}
			days = []weather.DailyPoint{d}
			title = "Tomorrow's Forecast:"
		}

		parts = append(parts, header(parts, title))
		for i, d := range days {
			if i == maxDailyLines {
				break
			}
			parts = append(parts, fmt.Sprintf("  %s: %s %s, High: %.1f°C, Low: %.1f°C, Wind: %.1f m/s @ %d°",
				d.ForecastDate.Format(dayLayout), d.Condition, d.Emoji, d.MaxTemperature, d.MinTemperature, d.Wind.Speed, d.Wind.Direction))
		}
	}

	return strings.Join(parts, "\n")
}

// header separates a section title from preceding output with a blank line.
func header(prev []string, title string) string {
	if len(prev) == 0 {
		return title
	}
	return "\n" + title
}

func stamp(t *time.Time) string {
	if t == nil {
		return "n/a"
	}
	return t.Format(stampLayout)
}
