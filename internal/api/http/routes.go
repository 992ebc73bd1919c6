package httpapi

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weathercaster/internal/format"
	"github.com/i474232898/weathercaster/internal/weather"
)

var validate = validator.New()

// Forecaster is the orchestrator contract the routes depend on.
type Forecaster interface {
	GetForecast(ctx context.Context, locationName string, rng weather.Range) (*weather.ForecastResult, error)
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service Forecaster) {
	v1 := app.Group("/api/v1")

	v1.Get("/forecast", func(c *fiber.Ctx) error {
		req, err := parseForecastQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result, err := service.GetForecast(c.UserContext(), req.Location, req.Range)
		if err != nil {
			switch {
			case errors.Is(err, weather.ErrLocationNotFound):
				return fiber.NewError(fiber.StatusNotFound, "cannot resolve location "+req.Location)
			case errors.Is(err, weather.ErrNoData):
				return fiber.NewError(fiber.StatusBadGateway, "could not retrieve weather data for "+req.Location)
			case errors.Is(err, weather.ErrInvalidRange):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			log.Printf("ERROR: forecast for %q failed: %v", req.Location, err)
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
		}

		if req.Format == "text" {
			return c.SendString(format.Summary(result))
		}
		return c.JSON(result)
	})
}

// forecastQuery holds query parameters for the forecast endpoint.
type forecastQuery struct {
	Location string        `validate:"required"`
	Range    weather.Range `validate:"required"`
	Format   string        `validate:"oneof=json text"`
}

func parseForecastQuery(c *fiber.Ctx) (forecastQuery, error) {
	var q forecastQuery

	q.Location = c.Query("location")
	q.Format = c.Query("format", "json")

	rng, err := weather.ParseRange(c.Query("range", string(weather.RangeCurrent)))
	if err != nil {
		return q, err
	}
	q.Range = rng

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}
