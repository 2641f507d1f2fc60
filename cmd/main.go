package main

import (
	"context"
	"os"

	"sejahtera/internal/config"
	"sejahtera/internal/handlers"
	"sejahtera/internal/middleware"
	"sejahtera/internal/repositories"
	"sejahtera/internal/services"
	"sejahtera/internal/web"
	"sejahtera/pkg/database"

	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.DatabaseURI)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	orderRepo := repositories.NewOrderRepo(pool)
	if err := orderRepo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure database schema")
	}

	storage, err := services.NewMinioStorage(cfg.Upload)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize proof storage")
	}
	if err := storage.EnsureBucket(ctx); err != nil {
		// Proof uploads are optional on the form, so a missing bucket only
		// degrades submissions that attach one.
		log.Warn().Err(err).Msg("proof storage bucket unavailable")
	}

	mailer := services.NewSMTPMailer(cfg.Mail, cfg.Admin.Email)
	receipts := services.NewReceiptService()
	orderSvc := services.NewOrderService(orderRepo, receipts, storage, mailer, log.Logger)
	authSvc := services.NewAuthService(cfg.Admin, cfg.SecretKey)

	orderHandlers := handlers.NewOrderHandlers(orderSvc)
	authHandlers := handlers.NewAuthHandlers(authSvc, orderSvc)

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse templates")
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())

	e.GET("/", orderHandlers.Index)
	e.GET("/catalog", orderHandlers.Catalog)
	e.GET("/order", orderHandlers.OrderForm)
	e.POST("/order", orderHandlers.SubmitOrder)
	e.GET("/success/:id", orderHandlers.Success)
	e.GET("/download_pdf/:id", orderHandlers.DownloadPDF)

	e.GET("/login", authHandlers.LoginForm)
	e.POST("/login", authHandlers.Login)
	e.GET("/logout", authHandlers.Logout)

	admin := e.Group("/admin", middleware.AdminSession(cfg.SecretKey))
	admin.GET("", authHandlers.Admin)

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
