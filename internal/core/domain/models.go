package domain

import "time"

// User is the authenticated identity carried by a session.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginRequest is the login form payload.
type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// RegisterRequest is the registration form payload. Confirm must repeat
// Password exactly; the mismatch check lives in the Logic layer.
type RegisterRequest struct {
	Name     string `form:"name" json:"name" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
	Confirm  string `form:"password2" json:"password2" binding:"required"`
}

// TripRequest is the trip-planning form payload. Dates arrive as
// YYYY-MM-DD strings and are parsed by the Logic layer so that bad input
// surfaces as a validation error, not a binding failure.
type TripRequest struct {
	Source      string `form:"source" json:"source" binding:"required"`
	Destination string `form:"destination" json:"destination" binding:"required"`
	StartDate   string `form:"date" json:"date" binding:"required"`
	EndDate     string `form:"return" json:"return" binding:"required"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ForecastDay is one day of weather for the destination.
type ForecastDay struct {
	Date        string  `json:"datetime"`
	Temp        float64 `json:"temp"`
	TempMax     float64 `json:"tempmax"`
	TempMin     float64 `json:"tempmin"`
	Conditions  string  `json:"conditions"`
	Description string  `json:"description"`
}

// Forecast is the weather timeline for the requested date range.
type Forecast struct {
	ResolvedAddress string        `json:"resolvedAddress"`
	Days            []ForecastDay `json:"days"`
}

// TripPlan is the composed result of a successful planning request:
// the weather timeline plus the generated itinerary text (markdown).
// Neither part is persisted.
type TripPlan struct {
	Source      string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Days        int
	Weather     *Forecast
	Itinerary   string
}
