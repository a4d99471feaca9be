package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	bookingapp "github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/application/booking"
	hotelapp "github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/application/hotel"
	identityapp "github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/application/identity"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/infrastructure/auth"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/infrastructure/config"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/infrastructure/event"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/infrastructure/logger"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/infrastructure/persistence"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/interfaces/http/handler"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/interfaces/http/middleware"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Reem Resort backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if cfg.App.Env != "production" {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Auto-migration failed", zap.Error(err))
		}
	}

	// Repositories
	roomRepo := persistence.NewGormRoomRepository(db.DB)
	bookingRepo := persistence.NewGormBookingRepository(db.DB, cfg.Booking.ReferencePrefix)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB, cfg.Booking.InvoiceNumberPrefix)
	userRepo := persistence.NewGormUserRepository(db.DB)
	roleRepo := persistence.NewGormRoleRepository(db.DB)

	// Token infrastructure: Redis-backed blacklist with an in-process
	// fallback so a missing Redis never blocks logins in development.
	jwtService := auth.NewJWTService(cfg.JWT)
	var tokenBlacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		if cfg.App.Env == "production" {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		tokenBlacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		tokenBlacklist = redisBlacklist
		log.Info("Redis token blacklist connected")
	}

	// Application services
	bookingService := bookingapp.NewBookingService(bookingRepo, invoiceRepo, roomRepo)
	roomService := hotelapp.NewRoomService(roomRepo, bookingRepo)
	authService := identityapp.NewAuthService(userRepo, roleRepo, jwtService, identityapp.AuthServiceConfig{
		MaxLoginAttempts: cfg.Auth.MaxLoginAttempts,
		LockDuration:     cfg.Auth.LockDuration,
	}, log)
	userService := identityapp.NewUserService(userRepo, roleRepo)
	roleService := identityapp.NewRoleService(roleRepo, userRepo)

	// Event bus: synchronous in-process dispatch; every published
	// booking event is logged for the audit trail.
	eventBus := event.NewInMemoryEventBus(log)
	bookingService.SetEventPublisher(eventBus)

	// HTTP handlers
	bookingHandler := handler.NewBookingHandler(bookingService)
	roomHandler := handler.NewRoomHandler(roomService)
	authHandler := handler.NewAuthHandler(authService, tokenBlacklist)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)
	systemHandler := handler.NewSystemHandler(db, cfg.App.Name)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID, panic recovery, request logging,
	// CORS, then JWT authentication on the versioned API group.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = tokenBlacklist
	jwtConfig.Logger = log
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(systemHandler).
		Register(authHandler).
		Register(roomHandler).
		Register(bookingHandler).
		Register(userHandler).
		Register(roleHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
