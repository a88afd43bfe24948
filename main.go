package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotify/config"
	"slotify/handlers"
	"slotify/middleware"
	"slotify/routes"
	"slotify/services/mindbody"
	"slotify/services/slots"
	"slotify/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(routes.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// Upstream collaborators.
	tokenProvider := mindbody.NewCachedTokenProvider(
		config.AppConfig.MindbodyBaseURL,
		config.AppConfig.MindbodySiteID,
		mindbody.Credentials{
			Username: config.AppConfig.MindbodyUsername,
			Password: config.AppConfig.MindbodyPassword,
		},
		utils.GetCacheClient(),
	)
	upstreamClient := mindbody.NewClient(
		config.AppConfig.MindbodyBaseURL,
		config.AppConfig.MindbodySiteID,
		tokenProvider,
		config.AppConfig.MindbodyRPS,
	)

	// Services and handlers.
	slotService := &slots.DefaultSlotService{Client: upstreamClient}
	slotHandler := handlers.NewSlotHandler(slotService)

	routes.RegisterSlotRoutes(router, slotHandler)
	routes.RegisterHealthRoutes(router)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("main: listening on port %s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}
	logger.Info("main: stopped")
}
