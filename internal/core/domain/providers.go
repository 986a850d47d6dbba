package domain

import (
	"context"
	"time"
)

// WeatherProvider fetches a per-day weather timeline for a location.
// Implementations live outside the Logic layer (internal/weather).
type WeatherProvider interface {
	// Timeline returns the daily forecast for [start, end] inclusive.
	// Any upstream failure — network error, non-2xx status, undecodable
	// body — is returned as an error; the provider never panics.
	Timeline(ctx context.Context, location string, start, end time.Time) (*Forecast, error)
}

// ItineraryProvider produces itinerary text for a trip.
type ItineraryProvider interface {
	// Generate always returns usable text: upstream failures and empty
	// completions are replaced with a fixed fallback string inside the
	// implementation, never propagated as errors.
	Generate(ctx context.Context, source, destination string, start, end time.Time, days int) string
}
