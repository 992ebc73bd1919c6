package weather

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync/atomic"
	"testing"
)

type fakeGeocoder struct {
	known map[string]GeocodingResult
}

func (g *fakeGeocoder) Resolve(_ context.Context, name string) (*GeocodingResult, error) {
	r, ok := g.known[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocationNotFound, name)
	}
	return &r, nil
}

type fakeFetcher struct {
	current, hourly, daily atomic.Int32

	currentErr, hourlyErr, dailyErr error

	rawCurrent *RawCurrent
	rawHourly  *RawHourly
	rawDaily   *RawDaily
	lastCoords atomic.Pointer[Coordinates]
}

func (f *fakeFetcher) FetchCurrent(_ context.Context, c Coordinates) (*RawCurrent, error) {
	f.current.Add(1)
	f.lastCoords.Store(&c)
	if f.currentErr != nil {
		return nil, f.currentErr
	}
	return f.rawCurrent, nil
}

func (f *fakeFetcher) FetchHourly(_ context.Context, c Coordinates) (*RawHourly, error) {
	f.hourly.Add(1)
	f.lastCoords.Store(&c)
	if f.hourlyErr != nil {
		return nil, f.hourlyErr
	}
	return f.rawHourly, nil
}

func (f *fakeFetcher) FetchDaily(_ context.Context, c Coordinates) (*RawDaily, error) {
	f.daily.Add(1)
	f.lastCoords.Store(&c)
	if f.dailyErr != nil {
		return nil, f.dailyErr
	}
	return f.rawDaily, nil
}

func (f *fakeFetcher) calls() (int32, int32, int32) {
	return f.current.Load(), f.hourly.Load(), f.daily.Load()
}

func newFakes() (*fakeGeocoder, *fakeFetcher) {
	geo := &fakeGeocoder{known: map[string]GeocodingResult{
		"London": {Coordinates: &Coordinates{Lat: 51.5073, Lon: -0.1276}, Name: "London", Country: "GB"},
	}}
	f := &fakeFetcher{
		rawCurrent: sampleCurrent(),
		rawHourly:  sampleHourly(48),
		rawDaily:   sampleDaily(16),
	}
	return geo, f
}

func TestServiceGetForecastSelectsEndpoints(t *testing.T) {
	tests := []struct {
		rng                     Range
		wantCur, wantHr, wantDy int32
	}{
		{RangeCurrent, 1, 0, 0},
		{RangeHourly, 0, 1, 0},
		{RangeDaily, 0, 0, 1},
		{RangeTomorrow, 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.rng), func(t *testing.T) {
			geo, f := newFakes()
			svc := NewService(geo, f, 24)

			res, err := svc.GetForecast(context.Background(), "London", tt.rng)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			cur, hr, dy := f.calls()
			if cur != tt.wantCur || hr != tt.wantHr || dy != tt.wantDy {
				t.Fatalf("calls current/hourly/daily = %d/%d/%d, want %d/%d/%d",
					cur, hr, dy, tt.wantCur, tt.wantHr, tt.wantDy)
			}
			if got := f.lastCoords.Load(); got == nil || *got != (Coordinates{Lat: 51.5073, Lon: -0.1276}) {
				t.Errorf("fetch coordinates = %v", got)
			}
			if res.Range != tt.rng {
				t.Errorf("range = %q, want %q", res.Range, tt.rng)
			}
			if res.Location == nil || res.Location.Country != "GB" {
				t.Errorf("location = %+v", res.Location)
			}
		})
	}
}

func TestServiceGetForecastCurrentOnly(t *testing.T) {
	geo, f := newFakes()
	svc := NewService(geo, f, 24)

	res, err := svc.GetForecast(context.Background(), "London", RangeCurrent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Current == nil {
		t.Fatal("expected current section")
	}
	if len(res.Hourly) != 0 || len(res.Daily) != 0 {
		t.Errorf("expected empty series, got %d/%d", len(res.Hourly), len(res.Daily))
	}
	if res.Current.Emoji != "☀️" || res.Current.Condition != "Clear sky" {
		t.Errorf("current = %q %q", res.Current.Condition, res.Current.Emoji)
	}
}

func TestServiceGetForecastUnknownLocation(t *testing.T) {
	for _, rng := range []Range{RangeCurrent, RangeHourly, RangeDaily, RangeTomorrow} {
		t.Run(string(rng), func(t *testing.T) {
			geo, f := newFakes()
			svc := NewService(geo, f, 24)

			res, err := svc.GetForecast(context.Background(), "Unknown Place", rng)
			if !errors.Is(err, ErrLocationNotFound) {
				t.Fatalf("err = %v, want ErrLocationNotFound", err)
			}
			if res != nil {
				t.Errorf("expected nil result")
			}
			if cur, hr, dy := f.calls(); cur+hr+dy != 0 {
				t.Errorf("expected no fetches, got %d/%d/%d", cur, hr, dy)
			}
		})
	}
}

func TestServiceGetForecastFetchFailure(t *testing.T) {
	geo, f := newFakes()
	f.hourlyErr = errors.New("connection refused")
	svc := NewService(geo, f, 24)

	res, err := svc.GetForecast(context.Background(), "London", RangeHourly)
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("err = %v, want ErrNoData", err)
	}
	if res != nil {
		t.Errorf("expected nil result")
	}
}

func TestServiceGetForecastInvalidRange(t *testing.T) {
	geo, f := newFakes()
	svc := NewService(geo, f, 24)

	_, err := svc.GetForecast(context.Background(), "London", Range("weekly"))
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("err = %v, want ErrInvalidRange", err)
	}
	if cur, hr, dy := f.calls(); cur+hr+dy != 0 {
		t.Errorf("expected no fetches, got %d/%d/%d", cur, hr, dy)
	}
}

func TestServiceGetForecastHourlyLimit(t *testing.T) {
	geo, f := newFakes()
	svc := NewService(geo, f, 6)

	res, err := svc.GetForecast(context.Background(), "London", RangeHourly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Hourly) != 6 {
		t.Errorf("len(hourly) = %d, want 6", len(res.Hourly))
	}
}

func TestServiceGetForecastIdempotent(t *testing.T) {
	geo, f := newFakes()
	svc := NewService(geo, f, 24)

	first, err := svc.GetForecast(context.Background(), "London", RangeDaily)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.GetForecast(context.Background(), "London", RangeDaily)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical calls produced different results")
	}
}
