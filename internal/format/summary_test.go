package format

import (
	"strings"
	"testing"
	"time"

	"github.com/i474232898/weathercaster/internal/weather"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dailySeries(start time.Time, n int) []weather.DailyPoint {
	out := make([]weather.DailyPoint, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, weather.DailyPoint{
			ForecastDate:   start.AddDate(0, 0, i),
			MaxTemperature: 20 + float64(i),
			MinTemperature: 10 + float64(i),
			Condition:      "Light rain",
			Emoji:          "🌧️",
			Wind:           weather.Wind{Speed: 3.4, Direction: 200},
		})
	}
	return out
}

func TestTomorrow(t *testing.T) {
	daily := dailySeries(day(2024, time.June, 15), 16)

	got, ok := Tomorrow(daily, time.Date(2024, time.June, 15, 22, 30, 0, 0, time.UTC))
	if !ok {
		t.Fatal("expected a match")
	}
	if !got.ForecastDate.Equal(day(2024, time.June, 16)) {
		t.Errorf("ForecastDate = %v", got.ForecastDate)
	}

	// now is compared in UTC: 01:00 at UTC+3 is still Jun 15 in UTC.
	local := time.FixedZone("UTC+3", 3*3600)
	got, ok = Tomorrow(daily, time.Date(2024, time.June, 16, 1, 0, 0, 0, local))
	if !ok || !got.ForecastDate.Equal(day(2024, time.June, 16)) {
		t.Errorf("Tomorrow with offset = %v, %v", got.ForecastDate, ok)
	}

	if _, ok := Tomorrow(daily, day(2024, time.July, 30)); ok {
		t.Error("expected no match outside the series")
	}
}

func TestSummaryCurrent(t *testing.T) {
	sunrise := time.Date(2024, time.June, 15, 3, 45, 0, 0, time.UTC)
	sunset := time.Date(2024, time.June, 15, 20, 20, 0, 0, time.UTC)
	f := &weather.ForecastResult{
		Range: weather.RangeCurrent,
		Current: &weather.Current{
			Location:             "London",
			DateTime:             time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC),
			Condition:            "Clear sky",
			Emoji:                "☀️",
			Temperature:          18.4,
			FeelsLikeTemperature: 17.9,
			HighTemperature:      20.2,
			LowTemperature:       15.1,
			Wind:                 weather.Wind{Speed: 4.1, Direction: 250},
			Humidity:             60,
			Pressure:             1015,
			Daylight:             weather.Daylight{Sunrise: &sunrise, Sunset: &sunset},
		},
		Hourly: []weather.HourlyPoint{},
		Daily:  []weather.DailyPoint{},
	}

	out := Summary(f)
	for _, want := range []string{
		"Currently in London (Jun 15, 10:00):",
		"  Condition: Clear sky ☀️",
		"  Temperature: 18.40°C (Feels like: 17.90°C)",
		"  Wind: 4.10 m/s @ 250°",
		"  Humidity: 60%",
		"  Pressure: 1015 hPa",
		"  Sunrise: Jun 15, 03:45 | Sunset: Jun 15, 20:20",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Hourly") || strings.Contains(out, "Daily") {
		t.Errorf("unexpected series sections:\n%s", out)
	}
}

func TestSummaryHourlyLimitsLines(t *testing.T) {
	var hourly []weather.HourlyPoint
	start := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 24; i++ {
		hourly = append(hourly, weather.HourlyPoint{Time: start.Add(time.Duration(i) * time.Hour), Condition: "Overcast clouds", Emoji: "🌥️"})
	}
	f := &weather.ForecastResult{Range: weather.RangeHourly, Hourly: hourly, Daily: []weather.DailyPoint{}}

	out := Summary(f)
	if !strings.HasPrefix(out, "Hourly Forecast (next 24 hours):") {
		t.Errorf("unexpected header:\n%s", out)
	}
	if n := strings.Count(out, "Overcast clouds"); n != maxHourlyLines {
		t.Errorf("hourly lines = %d, want %d", n, maxHourlyLines)
	}
	if !strings.Contains(out, "  17:00: Overcast clouds") || strings.Contains(out, "18:00") {
		t.Errorf("expected lines 10:00-17:00 only:\n%s", out)
	}
}

func TestSummaryDaily(t *testing.T) {
	f := &weather.ForecastResult{
		Range:  weather.RangeDaily,
		Hourly: []weather.HourlyPoint{},
		Daily:  dailySeries(day(2024, time.June, 15), 16),
	}

	out := Summary(f)
	if !strings.Contains(out, "Daily Forecast (next 5 days):") {
		t.Errorf("missing header:\n%s", out)
	}
	if n := strings.Count(out, "Light rain"); n != maxDailyLines {
		t.Errorf("daily lines = %d, want %d", n, maxDailyLines)
	}
	if !strings.Contains(out, "  Jun 15: Light rain 🌧️, High: 20.0°C, Low: 10.0°C, Wind: 3.4 m/s @ 200°") {
		t.Errorf("unexpected first line:\n%s", out)
	}
}

func TestSummaryTomorrow(t *testing.T) {
	f := &weather.ForecastResult{
		Range:  weather.RangeTomorrow,
		Hourly: []weather.HourlyPoint{},
		Daily:  dailySeries(day(2024, time.June, 15), 16),
	}

	out := summaryAt(f, time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC))
	if !strings.HasPrefix(out, "Tomorrow's Forecast:") {
		t.Errorf("unexpected header:\n%s", out)
	}
	if !strings.Contains(out, "Jun 16") || strings.Contains(out, "Jun 15") || strings.Contains(out, "Jun 17") {
		t.Errorf("expected only Jun 16:\n%s", out)
	}

	out = summaryAt(f, day(2024, time.August, 1))
	if !strings.Contains(out, "No forecast available for tomorrow.") {
		t.Errorf("expected missing-tomorrow message:\n%s", out)
	}
}

func TestSummaryEmpty(t *testing.T) {
	if got := Summary(&weather.ForecastResult{}); got != "No weather data available." {
		t.Errorf("Summary(empty) = %q", got)
	}
	if got := Summary(nil); got != "No weather data available." {
		t.Errorf("Summary(nil) = %q", got)
	}
}
