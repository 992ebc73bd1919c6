// Package console implements the interactive question loop.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/i474232898/weathercaster/internal/format"
	"github.com/i474232898/weathercaster/internal/weather"
)

// Forecaster is the orchestrator contract the loop depends on.
type Forecaster interface {
	GetForecast(ctx context.Context, locationName string, rng weather.Range) (*weather.ForecastResult, error)
}

// Run reads one query per line from in until EOF, "quit" or "exit" and writes
// the answers to out. A query is a location optionally followed by a range,
// e.g. "Paris, FR daily".
func Run(ctx context.Context, in io.Reader, out io.Writer, svc Forecaster) error {
	fmt.Fprintln(out, "WeatherCaster CLI")
	fmt.Fprintln(out, "Ask as: <location> [current|hourly|daily|tomorrow]. Type 'quit' or 'exit' to stop.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "quit") || strings.EqualFold(line, "exit") {
			fmt.Fprintln(out, "Exiting WeatherCaster. Goodbye!")
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		location, rng := ParseQuery(line)
		fmt.Fprintf(out, "WeatherCaster: %s\n", answer(ctx, svc, location, rng))
	}
}

// ParseQuery splits a line into location and range. The last word selects the
// range when it names one; otherwise the range is current.
func ParseQuery(line string) (string, weather.Range) {
	line = strings.TrimSpace(line)
	if i := strings.LastIndexAny(line, " \t"); i >= 0 {
		if rng, err := weather.ParseRange(line[i+1:]); err == nil {
			return strings.TrimSpace(line[:i]), rng
		}
	}
	return line, weather.RangeCurrent
}

func answer(ctx context.Context, svc Forecaster, location string, rng weather.Range) string {
	result, err := svc.GetForecast(ctx, location, rng)
	switch {
	case err == nil:
		return format.Summary(result)
	case errors.Is(err, weather.ErrLocationNotFound):
		return fmt.Sprintf("Sorry, I cannot resolve the location %q.", location)
	case errors.Is(err, weather.ErrNoData):
		return fmt.Sprintf("Sorry, I could not retrieve weather data for %s.", location)
	default:
		return fmt.Sprintf("Sorry, something went wrong: %v", err)
	}
}
