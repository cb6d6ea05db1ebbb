package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/lunabrew/restaurant-backend/internal/config"
	"github.com/lunabrew/restaurant-backend/internal/database"
	"github.com/lunabrew/restaurant-backend/internal/googleapi"
	"github.com/lunabrew/restaurant-backend/internal/handler"
	"github.com/lunabrew/restaurant-backend/internal/middleware"
	"github.com/lunabrew/restaurant-backend/internal/notify"
	"github.com/lunabrew/restaurant-backend/internal/queue"
	"github.com/lunabrew/restaurant-backend/internal/repository"
	"github.com/lunabrew/restaurant-backend/internal/router"
	"github.com/lunabrew/restaurant-backend/internal/service"
)

func main() {
	// A missing .env is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: without it the cache and rate-limit middlewares
	// become pass-throughs.
	rdb := config.NewRedisClient()

	userRepo := repository.NewUserRepo(db)
	resRepo := repository.NewReservationRepo(db)
	reviewRepo := repository.NewReviewRepo(db)
	menuRepo := repository.NewMenuRepo(db)

	publisher := queue.NewPublisher(cfg.AMQPURL)
	resSvc := service.NewReservationService(resRepo, publisher)

	google := googleapi.NewClient(cfg.GoogleAPIToken, cfg.GoogleAccountID, cfg.GoogleLocationID, cfg.GoogleAPIBase)
	syncSvc := service.NewReviewSyncService(reviewRepo, google)

	// The notification consumer runs inside the API process. It renders
	// and sends the customer emails for events published above.
	if cfg.AMQPURL != "" {
		var mailer notify.Mailer = notify.LogMailer{}
		if cfg.SMTPHost != "" {
			mailer = notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
		}
		consumer := queue.NewConsumer(cfg.AMQPURL, mailer, cfg.OpsEmail)
		go func() {
			if err := consumer.Start(context.Background()); err != nil {
				log.Printf("notification consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	e.Static("/uploads", cfg.UploadDir)

	requireAdmin := middleware.RequireAdmin(cfg.JWTSecret, userRepo)
	rateLimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	authH := handler.NewAuthHandler(cfg, userRepo)
	resH := handler.NewReservationHandler(cfg, resSvc)
	adminResH := handler.NewAdminReservationHandler(cfg, resSvc, resRepo)
	menuH := handler.NewMenuHandler(cfg, menuRepo)
	adminMenuH := handler.NewAdminMenuHandler(cfg, menuRepo)
	reviewH := handler.NewReviewHandler(cfg, reviewRepo, syncSvc)
	dashH := handler.NewDashboardHandler(cfg, resRepo, menuRepo, reviewRepo)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, requireAdmin)
	router.RegisterReservations(e, resH, adminResH, requireAdmin, rateLimit)
	router.RegisterMenu(e, menuH, adminMenuH, requireAdmin, cache)
	router.RegisterReviews(e, reviewH, requireAdmin, cache)
	router.RegisterDashboard(e, dashH, requireAdmin)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
