package v1

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/duynhne/trip-planner/internal/core/domain"
	"github.com/duynhne/trip-planner/middleware"
)

// dateLayout is the wire format for trip dates, shared with the weather
// upstream.
const dateLayout = "2006-01-02"

// PlannerService runs the trip-planning pipeline: validate the form
// input, fetch the weather timeline, then generate the itinerary. The two
// upstream calls are sequential — a weather failure aborts the pipeline
// before any itinerary call is made, while an itinerary failure degrades
// to fallback text inside the provider.
type PlannerService struct {
	weather   domain.WeatherProvider
	itinerary domain.ItineraryProvider
}

// NewPlannerService creates a PlannerService with the given upstream
// providers.
func NewPlannerService(weather domain.WeatherProvider, itinerary domain.ItineraryProvider) *PlannerService {
	return &PlannerService{
		weather:   weather,
		itinerary: itinerary,
	}
}

// PlanTrip validates the request and composes the weather timeline with
// the generated itinerary.
func (s *PlannerService) PlanTrip(ctx context.Context, req domain.TripRequest) (*domain.TripPlan, error) {
	ctx, span := middleware.StartSpan(ctx, "planner.plan_trip", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("trip.destination", req.Destination),
	))
	defer span.End()

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		return nil, fmt.Errorf("parse start date %q: %w", req.StartDate, ErrInvalidDate)
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		return nil, fmt.Errorf("parse return date %q: %w", req.EndDate, ErrInvalidDate)
	}

	// Whole-day difference; a zero-day (same-day) trip is allowed.
	days := int(end.Sub(start).Hours() / 24)
	if days < 0 {
		span.SetAttributes(attribute.Bool("request.valid", false))
		return nil, fmt.Errorf("trip %s to %s: %w", req.StartDate, req.EndDate, ErrInvalidDateRange)
	}

	span.SetAttributes(
		attribute.Bool("request.valid", true),
		attribute.Int("trip.days", days),
	)

	forecast, err := s.weather.Timeline(ctx, req.Destination, start, end)
	if err != nil {
		span.RecordError(err)
		span.AddEvent("weather.unavailable")
		zerolog.Ctx(ctx).Error().Err(err).
			Str("destination", req.Destination).
			Msg("Weather lookup failed")
		return nil, fmt.Errorf("fetch weather for %q: %w", req.Destination, ErrWeatherUnavailable)
	}

	// Never fails: the provider substitutes fallback text on any upstream
	// error, so a degraded itinerary still renders next to good weather.
	plan := s.itinerary.Generate(ctx, req.Source, req.Destination, start, end, days)

	span.AddEvent("trip.planned")

	return &domain.TripPlan{
		Source:      req.Source,
		Destination: req.Destination,
		StartDate:   start,
		EndDate:     end,
		Days:        days,
		Weather:     forecast,
		Itinerary:   plan,
	}, nil
}
