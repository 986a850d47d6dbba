// Package v1 contains the HTTP layer: form handling, session cookies,
// flash messages and page rendering. Business rules live in
// internal/logic/v1 — handlers only translate between HTTP and the Logic
// layer's sentinel errors.
package v1

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/duynhne/trip-planner/internal/core/domain"
	logicv1 "github.com/duynhne/trip-planner/internal/logic/v1"
	"github.com/duynhne/trip-planner/middleware"
)

// AuthLogic is the slice of the auth service the handlers need.
type AuthLogic interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
	Logout(ctx context.Context, token string) error
}

// PlannerLogic is the slice of the planner service the handlers need.
type PlannerLogic interface {
	PlanTrip(ctx context.Context, req domain.TripRequest) (*domain.TripPlan, error)
}

// Handler groups the HTTP handlers for the site.
// Dependencies are injected via the constructor — no global state.
type Handler struct {
	auth       AuthLogic
	planner    PlannerLogic
	secret     string
	sessionTTL time.Duration
	now        func() time.Time
}

// NewHandler creates a Handler. secret signs the session cookie and
// sessionTTL bounds the cookie's lifetime to match the server-side
// session expiry.
func NewHandler(auth AuthLogic, planner PlannerLogic, secret string, sessionTTL time.Duration) *Handler {
	return &Handler{
		auth:       auth,
		planner:    planner,
		secret:     secret,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

// RegisterRoutes registers all site routes on the given engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Index)
	r.POST("/", h.PlanTrip)
	r.GET("/about", h.About)
	r.GET("/contact", h.Contact)
	r.GET("/login", h.LoginForm)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.GET("/register", h.RegisterForm)
	r.POST("/register", h.Register)
	r.GET("/robots.txt", h.Robots)
	r.GET("/sitemap.xml", h.Sitemap)
	r.NoRoute(h.NotFound)
}

// currentUser resolves the session cookie to a user, or nil for anonymous
// visitors. Invalid, expired and tampered sessions all read as anonymous.
func (h *Handler) currentUser(c *gin.Context) *domain.User {
	token := h.readSessionCookie(c)
	if token == "" {
		return nil
	}
	user, err := h.auth.CurrentUser(c.Request.Context(), token)
	if err != nil {
		return nil
	}
	return user
}

// pageData builds the common template payload: flash message, current
// user and the render timestamp.
func (h *Handler) pageData(c *gin.Context) gin.H {
	return gin.H{
		"Flash": takeFlash(c),
		"User":  h.currentUser(c),
		"Now":   h.now(),
	}
}

// Index renders the trip-planning form.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.pageData(c))
}

// PlanTrip runs the planning pipeline for a submitted trip form.
// Validation failures and weather-upstream failures flash a message and
// redirect back to the form; a degraded itinerary still renders.
func (h *Handler) PlanTrip(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.plan_trip", trace.WithAttributes(
		attribute.String("layer", "web"),
	))
	defer span.End()

	logger := zerolog.Ctx(ctx)

	var req domain.TripRequest
	if err := c.ShouldBind(&req); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		logger.Warn().Err(err).Msg("Invalid trip form")
		flash(c, "All trip fields are required.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	plan, err := h.planner.PlanTrip(ctx, req)
	if err != nil {
		span.RecordError(err)
		logger.Warn().Err(err).Str("destination", req.Destination).Msg("Trip planning failed")

		switch {
		case errors.Is(err, logicv1.ErrInvalidDate):
			flash(c, "Please enter valid travel dates.")
		case errors.Is(err, logicv1.ErrInvalidDateRange):
			flash(c, "Return date should be greater than the Travel date (Start date).")
		case errors.Is(err, logicv1.ErrWeatherUnavailable):
			flash(c, "Error in retrieving weather data.")
		default:
			flash(c, "Something went wrong. Please try again.")
		}
		c.Redirect(http.StatusFound, "/")
		return
	}

	logger.Info().
		Str("destination", plan.Destination).
		Int("days", plan.Days).
		Msg("Trip planned")

	data := h.pageData(c)
	data["Plan"] = plan
	c.HTML(http.StatusOK, "dashboard.html", data)
}

// About renders the about page.
func (h *Handler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", h.pageData(c))
}

// Contact renders the contact page. Logged-in visitors get their name and
// email prefilled from the session.
func (h *Handler) Contact(c *gin.Context) {
	data := h.pageData(c)
	name, email := "Enter your name", "Enter your email"
	if user, ok := data["User"].(*domain.User); ok && user != nil {
		name, email = user.Name, user.Email
	}
	data["ContactName"] = name
	data["ContactEmail"] = email
	c.HTML(http.StatusOK, "contact.html", data)
}

// LoginForm renders the login page.
func (h *Handler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", h.pageData(c))
}

// Login authenticates a submitted login form and establishes the session.
func (h *Handler) Login(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.login", trace.WithAttributes(
		attribute.String("layer", "web"),
	))
	defer span.End()

	logger := zerolog.Ctx(ctx)

	var req domain.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		flash(c, "Email and password are required.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	resp, err := h.auth.Login(ctx, req)
	if err != nil {
		span.RecordError(err)
		logger.Warn().Err(err).Msg("Login failed")

		// One message for unknown email and wrong password alike.
		if errors.Is(err, logicv1.ErrInvalidCredentials) {
			flash(c, "Wrong email or password.")
		} else {
			flash(c, "Something went wrong. Please try again.")
		}
		c.Redirect(http.StatusFound, "/login")
		return
	}

	h.setSessionCookie(c, resp.Token)
	logger.Info().Str("user_id", resp.User.ID).Msg("Login successful")
	flash(c, "Login successful.")
	c.Redirect(http.StatusFound, "/")
}

// Logout destroys the session and redirects to the login page.
func (h *Handler) Logout(c *gin.Context) {
	if token := h.readSessionCookie(c); token != "" {
		if err := h.auth.Logout(c.Request.Context(), token); err != nil {
			zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("Logout failed")
		}
	}
	h.clearSessionCookie(c)
	flash(c, "Logged out.")
	c.Redirect(http.StatusFound, "/login")
}

// RegisterForm renders the registration page.
func (h *Handler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", h.pageData(c))
}

// Register creates a new account from the registration form and sends the
// user to the login page.
func (h *Handler) Register(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.register", trace.WithAttributes(
		attribute.String("layer", "web"),
	))
	defer span.End()

	logger := zerolog.Ctx(ctx)

	var req domain.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		flash(c, "All registration fields are required.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	user, err := h.auth.Register(ctx, req)
	if err != nil {
		span.RecordError(err)
		logger.Warn().Err(err).Str("email", req.Email).Msg("Registration failed")

		switch {
		case errors.Is(err, logicv1.ErrPasswordMismatch):
			flash(c, "Passwords do not match.")
			c.Redirect(http.StatusFound, "/register")
		case errors.Is(err, logicv1.ErrUserExists):
			flash(c, "User already exists. Please log in.")
			c.Redirect(http.StatusFound, "/login")
		default:
			flash(c, "Something went wrong. Please try again.")
			c.Redirect(http.StatusFound, "/register")
		}
		return
	}

	logger.Info().Str("user_id", user.ID).Msg("Registration successful")
	flash(c, "Registration successful. Please log in.")
	c.Redirect(http.StatusFound, "/login")
}

// NotFound renders the custom 404 page.
func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", h.pageData(c))
}
