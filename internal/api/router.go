package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cccc-2705/Mercado/internal/api/handler"
	"github.com/cccc-2705/Mercado/internal/api/middleware"
	"github.com/cccc-2705/Mercado/internal/core/ports"
	"github.com/cccc-2705/Mercado/internal/core/store"
)

const loginPath = "/login"

// Deps carries everything the router needs wired in.
type Deps struct {
	Store         *store.Store
	Actions       ports.SessionActions
	Catalog       ports.CatalogService
	Notifications handler.NotificationSource
	Mongo         *mongo.Database
	Redis         *redis.Client
	Log           zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("mercado"))
	e.Use(middleware.Session(d.Store))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Actions, d.Store)
	catalogHandler := handler.NewCatalogHandler(d.Catalog)
	cartHandler := handler.NewCartHandler()
	accountHandler := handler.NewAccountHandler()
	notificationHandler := handler.NewNotificationHandler(d.Notifications)

	guard := middleware.Guard(loginPath)

	// --- Public views ---
	e.GET("/", catalogHandler.Home)
	e.GET("/products", catalogHandler.List)
	e.GET("/product/:slug", catalogHandler.Get)

	// --- Auth flow ---
	e.GET("/login", authHandler.LoginView)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	e.GET("/signup", authHandler.SignupPhoneView)
	e.GET("/signup_phone-verification", authHandler.SignupVerifyView)
	e.GET("/signup_finishing-up", authHandler.SignupFinishView)
	e.POST("/signup_finishing-up", authHandler.Signup)
	e.GET("/activate/:uid/:token", authHandler.ActivateView)
	e.POST("/activate/:uid/:token", authHandler.Activate)
	e.GET("/account/password-reset", authHandler.ResetPasswordView)
	e.POST("/account/password-reset", authHandler.ResetPassword)
	e.GET("/account/password/reset/confirm/:uid/:token", authHandler.ResetPasswordConfirmView)
	e.POST("/account/password/reset/confirm/:uid/:token", authHandler.ResetPasswordConfirm)

	// --- Authenticated views ---
	e.GET("/cart", cartHandler.Show, guard)
	e.GET("/checkout", cartHandler.Checkout, guard)
	e.GET("/checkout_success", cartHandler.CheckoutSuccess, guard)
	e.GET("/account/location-setup", accountHandler.LocationSetup, guard)
	e.GET("/account/:username", accountHandler.Profile, guard)
	e.PUT("/account/:username", authHandler.UpdateProfile, guard)
	e.GET("/seller/:username", accountHandler.Seller)

	// --- Notifications feed ---
	e.GET("/notifications", notificationHandler.List)

	// --- Health probes and metrics (no session required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
