package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/pulsecure/accounts-api/docs"
	"github.com/pulsecure/accounts-api/internal/api/handler"
	"github.com/pulsecure/accounts-api/internal/api/middleware"
	"github.com/pulsecure/accounts-api/internal/core/service"
	"github.com/pulsecure/accounts-api/internal/infrastructure/config"
	mongodb "github.com/pulsecure/accounts-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pulsecure/accounts-api/internal/infrastructure/db/redis"
	"github.com/pulsecure/accounts-api/internal/infrastructure/mail"
	"github.com/pulsecure/accounts-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	signer := token.NewSigner(cfg.Verification.Secret, cfg.Verification.Expiry)
	mailer := mail.New(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	registry := redisdb.NewConsumedTokenRegistry(rdb, cfg.Verification.Expiry)

	profileService := service.NewProfileService(userRepo, log)
	verificationService := service.NewVerificationService(userRepo, signer, mailer, registry, cfg.Verification.BaseURL, log)
	accountService := service.NewAccountService(userRepo, verificationService, log)

	profileHandler := handler.NewProfileHandler(profileService)
	verificationHandler := handler.NewVerificationHandler(verificationService)
	accountHandler := handler.NewAccountHandler(accountService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Profile routes (session required) ---
	profile := e.Group("/profile", authMiddleware)
	profile.GET("/", profileHandler.Get)
	profile.PUT("/", profileHandler.Update)
	profile.PATCH("/", profileHandler.Update)
	profile.DELETE("/", profileHandler.Delete)

	// --- Auth routes ---
	e.POST("/auth/register/", accountHandler.Register)
	e.POST("/auth/resend-verification/", verificationHandler.Resend, authMiddleware)
	e.GET("/auth/verify-email/:uid/:token/", verificationHandler.Confirm)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
