package api

import (
	"context"
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/radheonline/storefront/docs"
	"github.com/radheonline/storefront/internal/api/handler"
	"github.com/radheonline/storefront/internal/api/metrics"
	"github.com/radheonline/storefront/internal/api/middleware"
	"github.com/radheonline/storefront/internal/config"
	"github.com/radheonline/storefront/internal/core/domain"
	"github.com/radheonline/storefront/internal/core/ports"
	"github.com/radheonline/storefront/internal/core/service"
	mongostore "github.com/radheonline/storefront/internal/infrastructure/db/mongo"
	redisstore "github.com/radheonline/storefront/internal/infrastructure/db/redis"
)

// Services are the use cases the HTTP layer exposes.
type Services struct {
	Admins    ports.AdminService
	Updates   ports.UpdateService
	Contacts  ports.ContactService
	Dashboard ports.DashboardService
}

// RouterConfig carries everything NewRouter needs besides the services.
type RouterConfig struct {
	Sessions   middleware.StorageFactory
	SessionKey string
	LoginPath  string
	Health     map[string]handler.Pinger
	Logger     zerolog.Logger
	// Registerer receives the HTTP metrics; prometheus.DefaultRegisterer when nil.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// Build wires the repositories and services over db and rdb and returns the
// ready router. rdb may be nil unless the redis session backend is selected.
func Build(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, error) {
	admins := mongostore.NewAdminRepository(db)
	updates := mongostore.NewUpdateRepository(db)
	contacts := mongostore.NewContactRepository(db)

	var dedup service.EnquiryDedup
	if rdb != nil {
		dedup = redisstore.NewEnquiryDedup(rdb, cfg.Enquiry.DedupWindow)
	}

	sessions, err := SessionStorage(cfg.Session, rdb)
	if err != nil {
		return nil, err
	}

	health := map[string]handler.Pinger{
		"mongodb": func(ctx context.Context) error { return db.Client().Ping(ctx, nil) },
	}
	if rdb != nil {
		health["redis"] = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	}

	svc := Services{
		Admins:    service.NewDirectoryService(admins, log.With().Str("component", "directory").Logger()),
		Updates:   service.NewUpdateService(updates, log.With().Str("component", "updates").Logger()),
		Contacts:  service.NewContactService(contacts, dedup, log.With().Str("component", "contacts").Logger()),
		Dashboard: service.NewDashboardService(updates, contacts),
	}
	return NewRouter(svc, RouterConfig{
		Sessions:   sessions,
		SessionKey: cfg.Session.StorageKey,
		LoginPath:  cfg.Session.LoginPath,
		Health:     health,
		Logger:     log,
	}), nil
}

// SessionStorage selects the per-browser session storage for the configured backend.
func SessionStorage(cfg config.SessionConfig, rdb *redis.Client) (middleware.StorageFactory, error) {
	switch cfg.Backend {
	case config.BackendRedis:
		if rdb == nil {
			return nil, fmt.Errorf("session backend %q needs a redis client", cfg.Backend)
		}
		return middleware.RedisStorage(rdb, cfg.CookieName, cfg.TTL), nil
	case config.BackendCookie:
		return middleware.SignedCookieStorage(cfg.Secret, cfg.TTL), nil
	case config.BackendMemory:
		return middleware.MemoryStorage(cfg.CookieName, cfg.TTL), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
	}
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, cfg RouterConfig) *echo.Echo {
	if cfg.Registerer == nil {
		cfg.Registerer = prometheus.DefaultRegisterer
	}
	if cfg.Gatherer == nil {
		cfg.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(cfg.Logger))
	e.Use(echomiddleware.BodyLimit("1M"))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "storefront",
		Subsystem:  "http",
		Registerer: cfg.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Health probes, metrics and docs (no session required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewHealthDependenciesHandler(cfg.Health).Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: cfg.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	updateHandler := handler.NewUpdateHandler(svc.Updates)
	contactHandler := handler.NewContactHandler(svc.Contacts)
	adminHandler := handler.NewAdminHandler(svc.Admins, svc.Dashboard)
	authHandler := handler.NewAuthHandler()

	// --- Public site ---
	v1 := e.Group("/v1")
	v1.GET("/updates", updateHandler.ListPublished)
	v1.GET("/updates/slider", updateHandler.ListSlider)
	v1.GET("/updates/:id", updateHandler.Get)
	v1.GET("/update/:id", updateHandler.Get)
	v1.POST("/contacts", contactHandler.Submit)

	// --- Admin session ---
	admin := e.Group("/admin", middleware.Session(middleware.SessionConfig{
		Directory: svc.Admins,
		Storage:   cfg.Sessions,
		Key:       cfg.SessionKey,
		Logger:    cfg.Logger.With().Str("component", "session").Logger(),
		Observer:  metrics.SessionObserver{},
	}))
	admin.POST("/login", authHandler.Login)
	admin.POST("/logout", authHandler.Logout)
	admin.GET("/session", authHandler.Session)

	// --- Admin area (gated) ---
	gated := admin.Group("/api", middleware.RequireSession(cfg.LoginPath))

	gated.GET("/dashboard", adminHandler.Dashboard)

	gated.GET("/posts", updateHandler.List)
	gated.POST("/posts", updateHandler.Create)
	gated.PUT("/posts/:id", updateHandler.Edit)
	gated.PATCH("/posts/:id/publish", updateHandler.TogglePublished)
	gated.PATCH("/posts/:id/slider", updateHandler.ToggleSlider)
	gated.DELETE("/posts/:id", updateHandler.Delete)

	gated.GET("/enquiries", contactHandler.List)
	gated.PATCH("/enquiries/:id/status", contactHandler.SetStatus)
	gated.PATCH("/enquiries/:id/contacted", contactHandler.SetContacted)
	gated.DELETE("/enquiries/:id", contactHandler.Delete)

	adminOnly := middleware.RBAC(domain.RoleAdmin)
	gated.GET("/settings", adminHandler.Settings, adminOnly)
	gated.PUT("/settings", adminHandler.UpdateSettings, adminOnly)
	gated.GET("/users", adminHandler.ListUsers, adminOnly)
	gated.POST("/users", adminHandler.CreateUser, adminOnly)
	gated.PUT("/users/:id", adminHandler.UpdateUser, adminOnly)
	gated.PATCH("/users/:id/active", adminHandler.SetUserActive, adminOnly)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
