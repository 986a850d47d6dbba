// Package v1 provides the business logic for API version 1: user
// authentication and the trip-planning pipeline.
//
// Error Handling:
// This package defines sentinel errors that represent the failures a
// handler must distinguish. These errors should be wrapped with context
// using fmt.Errorf("%w") when returned from business logic methods.
//
// Example Usage:
//
//	if days < 0 {
//	    return nil, fmt.Errorf("plan trip %s-%s: %w", start, end, ErrInvalidDateRange)
//	}
//
// Error Checking (in handlers):
//
//	switch {
//	case errors.Is(err, logicv1.ErrInvalidCredentials):
//	    flash(c, "Wrong email or password.")
//	case errors.Is(err, logicv1.ErrWeatherUnavailable):
//	    flash(c, "Error in retrieving weather data.")
//	default:
//	    flash(c, "Something went wrong.")
//	}
package v1

import "errors"

// Sentinel errors for authentication and trip-planning operations.
// These errors should be wrapped with context using fmt.Errorf("%w") when returned.
var (
	// ErrInvalidCredentials indicates the email/password pair is wrong.
	// The same error covers "no such user" and "wrong password" so a
	// caller cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("wrong email or password")

	// ErrUserExists indicates the email is already registered.
	ErrUserExists = errors.New("user already exists")

	// ErrPasswordMismatch indicates password and confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrInvalidDate indicates a trip date could not be parsed.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidDateRange indicates the return date precedes the start date.
	ErrInvalidDateRange = errors.New("return date must be after start date")

	// ErrWeatherUnavailable indicates the weather upstream failed; the
	// planning pipeline aborts and no itinerary is generated.
	ErrWeatherUnavailable = errors.New("weather data unavailable")

	// ErrSessionNotFound indicates the session token does not exist.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired indicates the session token has expired.
	ErrSessionExpired = errors.New("session expired")
)
