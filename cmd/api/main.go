package main

// @title SalesDesk API
// @version 1.0
// @description CRM backend: leads, accounts, contacts, opportunities, activities and a unified timeline.

// @contact.name API Support
// @contact.email support@salesdesk.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/salesdeskhq/salesdesk/config"
	_ "github.com/salesdeskhq/salesdesk/docs" // Swagger docs (generated)
	"github.com/salesdeskhq/salesdesk/pkg/accounts"
	"github.com/salesdeskhq/salesdesk/pkg/activities"
	"github.com/salesdeskhq/salesdesk/pkg/api/handlers"
	custommw "github.com/salesdeskhq/salesdesk/pkg/api/middleware"
	"github.com/salesdeskhq/salesdesk/pkg/audit"
	"github.com/salesdeskhq/salesdesk/pkg/auth"
	"github.com/salesdeskhq/salesdesk/pkg/cache"
	"github.com/salesdeskhq/salesdesk/pkg/cases"
	"github.com/salesdeskhq/salesdesk/pkg/comments"
	"github.com/salesdeskhq/salesdesk/pkg/contacts"
	"github.com/salesdeskhq/salesdesk/pkg/conversion"
	"github.com/salesdeskhq/salesdesk/pkg/dashboard"
	"github.com/salesdeskhq/salesdesk/pkg/database"
	"github.com/salesdeskhq/salesdesk/pkg/email"
	"github.com/salesdeskhq/salesdesk/pkg/export"
	"github.com/salesdeskhq/salesdesk/pkg/importer"
	"github.com/salesdeskhq/salesdesk/pkg/jobs"
	"github.com/salesdeskhq/salesdesk/pkg/leads"
	"github.com/salesdeskhq/salesdesk/pkg/logger"
	"github.com/salesdeskhq/salesdesk/pkg/metrics"
	custommiddleware "github.com/salesdeskhq/salesdesk/pkg/middleware"
	"github.com/salesdeskhq/salesdesk/pkg/opportunities"
	"github.com/salesdeskhq/salesdesk/pkg/secrets"
	"github.com/salesdeskhq/salesdesk/pkg/timeline"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	appLogger := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Secrets manager (env by default, AWS Secrets Manager in production)
	secretsManager, err := secrets.NewManager(secrets.Config{
		Backend:   cfg.SecretsBackend,
		AWSRegion: cfg.AWSRegion,
	})
	if err != nil {
		log.Fatalf("❌ Failed to initialize secrets manager: %v", err)
	}
	defer secretsManager.Close()

	ctx := context.Background()
	jwtSecret := secrets.LoadString(ctx, secretsManager, "JWT_SECRET", cfg.JWTSecret)
	sendGridKey := secrets.LoadString(ctx, secretsManager, "SENDGRID_API_KEY", cfg.SendGridAPIKey)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2)     // login brute-force protection
	registerRateLimiter := custommiddleware.NewRateLimiter(3, 1) // registration abuse protection

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig(cfg.CORSAllowedOrigins)))

	e.Use(middleware.Gzip())
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.DefaultSecurityHeadersConfig()))

	// Global rate limiting
	e.Use(globalRateLimiter.Middleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "SalesDesk API",
			"version":     "1.0.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Swagger documentation (public)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Initialize JWT blacklist
	tokenBlacklist := auth.NewTokenBlacklist(redisClient)

	// Initialize audit logger
	auditLogger := audit.NewService(db.Ent)
	log.Printf("✅ Audit logging initialized")

	// Initialize email service
	emailService := email.NewService(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.FrontendURL,
		sendGridKey,
	)

	// S3 uploader for export files (optional, local storage without it)
	var uploader *export.S3Uploader
	if cfg.S3Bucket != "" {
		uploader, err = export.NewS3Uploader(ctx, cfg.AWSRegion, cfg.S3Bucket)
		if err != nil {
			log.Printf("⚠️  Failed to initialize S3 uploader, exports stay local: %v", err)
		} else {
			log.Printf("✅ S3 export storage enabled (bucket: %s)", cfg.S3Bucket)
		}
	} else {
		log.Printf("ℹ️  S3 export storage disabled (no bucket configured)")
	}

	// Initialize services
	leadService := leads.NewService(db.Ent, redisClient)
	accountService := accounts.NewService(db.Ent)
	contactService := contacts.NewService(db.Ent)
	caseService := cases.NewService(db.Ent)
	commentService := comments.NewService(db.Ent)
	activityService := activities.NewService(db.Ent)
	opportunityService := opportunities.NewService(db.Ent, auditLogger)
	conversionService := conversion.NewService(db.Ent, emailService, leadService, appLogger)
	timelineService := timeline.NewService(auditLogger, commentService, activityService, appLogger)
	dashboardService := dashboard.NewService(leadService, opportunityService, caseService, activityService)
	exportService := export.NewService(db.Ent, auditLogger, uploader, appLogger, cfg.StorageLocalPath)
	importService := importer.NewService(db.Ent, auditLogger, appLogger)

	// Initialize cron manager for scheduled jobs
	cronManager := jobs.NewCronManager(db.Ent, exportService, activityService, opportunityService, emailService, prometheusMetrics, appLogger)
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()
	log.Printf("✅ Cron jobs started successfully")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db.Ent, cfg, tokenBlacklist, auditLogger, emailService, prometheusMetrics)
	leadHandler := handlers.NewLeadHandler(leadService, conversionService, importService, prometheusMetrics, cfg.ImportMaxRows)
	accountHandler := handlers.NewAccountHandler(accountService)
	contactHandler := handlers.NewContactHandler(contactService)
	opportunityHandler := handlers.NewOpportunityHandler(opportunityService)
	caseHandler := handlers.NewCaseHandler(caseService)
	activityHandler := handlers.NewActivityHandler(activityService)
	commentHandler := handlers.NewCommentHandler(commentService)
	timelineHandler := handlers.NewTimelineHandler(timelineService, prometheusMetrics)
	exportHandler := handlers.NewExportHandler(exportService, prometheusMetrics)
	auditHandler := handlers.NewAuditHandler(auditLogger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	graphqlHandler := handlers.NewGraphQLHandler(db.Ent, leadService, conversionService, timelineService, opportunityService)

	// API v1 routes
	v1 := e.Group("/api/v1")

	// Ping endpoint (public)
	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "pong",
		})
	})

	// Authentication routes (public)
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register, registerRateLimiter.Middleware())
		authRoutes.POST("/login", authHandler.Login, authRateLimiter.Middleware())
		authRoutes.GET("/me", authHandler.Me, custommw.JWTMiddlewareWithBlacklist(jwtSecret, tokenBlacklist, db.Ent))
		authRoutes.POST("/logout", authHandler.Logout, custommw.JWTMiddlewareWithBlacklist(jwtSecret, tokenBlacklist, db.Ent))
	}

	// GraphQL endpoints
	{
		v1.GET("/graphql/playground", graphqlHandler.Playground)
		v1.POST("/graphql", graphqlHandler.GraphQLEndpoint, custommw.JWTMiddlewareWithBlacklist(jwtSecret, tokenBlacklist, db.Ent))
	}

	// Protected routes (require JWT with blacklist validation)
	protected := v1.Group("")
	protected.Use(custommw.JWTMiddlewareWithBlacklist(jwtSecret, tokenBlacklist, db.Ent))
	{
		// Lead routes
		leadsGroup := protected.Group("/leads")
		{
			leadsGroup.POST("", leadHandler.Create, custommiddleware.RequireWriteAccess(db.Ent))
			leadsGroup.GET("", leadHandler.List)
			leadsGroup.GET("/:id", leadHandler.Get)
			leadsGroup.PATCH("/:id", leadHandler.Update, custommiddleware.RequireWriteAccess(db.Ent))
			leadsGroup.DELETE("/:id", leadHandler.Delete, custommiddleware.RequireDeleteAccess(db.Ent))
			leadsGroup.POST("/:id/convert", leadHandler.Convert, custommiddleware.RequireWriteAccess(db.Ent))
			leadsGroup.POST("/import", leadHandler.Import, custommiddleware.RequireWriteAccess(db.Ent))
		}

		// Account routes
		accountsGroup := protected.Group("/accounts")
		{
			accountsGroup.POST("", accountHandler.Create, custommiddleware.RequireWriteAccess(db.Ent))
			accountsGroup.GET("", accountHandler.List)
			accountsGroup.GET("/:id", accountHandler.Get)
			accountsGroup.PATCH("/:id", accountHandler.Update, custommiddleware.RequireWriteAccess(db.Ent))
			accountsGroup.DELETE("/:id", accountHandler.Delete, custommiddleware.RequireDeleteAccess(db.Ent))
		}

		// Contact routes
		contactsGroup := protected.Group("/contacts")
		{
			contactsGroup.POST("", contactHandler.Create, custommiddleware.RequireWriteAccess(db.Ent))
			contactsGroup.GET("", contactHandler.List)
			contactsGroup.GET("/:id", contactHandler.Get)
			contactsGroup.PATCH("/:id", contactHandler.Update, custommiddleware.RequireWriteAccess(db.Ent))
			contactsGroup.DELETE("/:id", contactHandler.Delete, custommiddleware.RequireDeleteAccess(db.Ent))
		}

		// Opportunity routes
		opportunitiesGroup := protected.Group("/opportunities")
		{
			opportunitiesGroup.POST("", opportunityHandler.Create, custommiddleware.RequireWriteAccess(db.Ent))
			opportunitiesGroup.GET("", opportunityHandler.List)
			opportunitiesGroup.GET("/pipeline", opportunityHandler.Pipeline)
			opportunitiesGroup.GET("/:id", opportunityHandler.Get)
			opportunitiesGroup.PATCH("/:id", opportunityHandler.Update, custommiddleware.RequireWriteAccess(db.Ent))
			opportunitiesGroup.PATCH("/:id/stage", opportunityHandler.UpdateStage, custommiddleware.RequireWriteAccess(db.Ent))
			opportunitiesGroup.DELETE("/:id", opportunityHandler.Delete, custommiddleware.RequireDeleteAccess(db.Ent))
		}

		// Support case routes
		casesGroup := protected.Group("/cases")
		{
			casesGroup.POST("", caseHandler.Create, custommiddleware.RequireWriteAccess(db.Ent))
			casesGroup.GET("", caseHandler.List)
			casesGroup.GET("/:id", caseHandler.Get)
			casesGroup.PATCH("/:id", caseHandler.Update, custommiddleware.RequireWriteAccess(db.Ent))
			casesGroup.DELETE("/:id", caseHandler.Delete, custommiddleware.RequireDeleteAccess(db.Ent))
		}

		// Activity routes
		activitiesGroup := protected.Group("/activities")
		{
			activitiesGroup.POST("", activityHandler.Create, custommiddleware.RequireWriteAccess(db.Ent))
			activitiesGroup.PATCH("/:id", activityHandler.Update, custommiddleware.RequireWriteAccess(db.Ent))
			activitiesGroup.POST("/:id/complete", activityHandler.Complete, custommiddleware.RequireWriteAccess(db.Ent))
			activitiesGroup.DELETE("/:id", activityHandler.Delete, custommiddleware.RequireDeleteAccess(db.Ent))
		}
		protected.GET("/:entityType/:entityID/activities", activityHandler.ListForEntity)

		// Comment routes
		protected.POST("/comments", commentHandler.Create, custommiddleware.RequireWriteAccess(db.Ent))
		protected.GET("/:entityType/:entityID/comments", commentHandler.ListForEntity)

		// Unified timeline
		protected.GET("/:entityType/:entityID/timeline", timelineHandler.Get)

		// Export routes
		exportsGroup := protected.Group("/exports")
		{
			exportsGroup.POST("", exportHandler.Create)
			exportsGroup.GET("", exportHandler.List)
			exportsGroup.GET("/:id", exportHandler.Get)
		}

		// Dashboard
		protected.GET("/dashboard/stats", dashboardHandler.Stats)

		// Audit routes (admin only)
		auditGroup := protected.Group("/audit")
		auditGroup.Use(custommiddleware.RequireAdmin(db.Ent))
		{
			auditGroup.GET("", auditHandler.Recent)
			auditGroup.GET("/:entityType/:entityID", auditHandler.ForEntity)
		}
	}

	// Export download allows the token in a query parameter so browser
	// links work without an Authorization header.
	v1.GET("/exports/:id/download", exportHandler.Download, custommw.JWTFromQueryOrHeader(jwtSecret, tokenBlacklist, db.Ent))

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 SalesDesk API starting on %s", address)
	log.Printf("📝 Log level: %s, Log format: %s", cfg.LogLevel, cfg.LogFormat)
	log.Printf("🔐 JWT expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("⏰ Cron jobs: hourly export purge, daily 7AM activity digest, pipeline gauges every 15min")

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
