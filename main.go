// File: slotify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotify/config"
	"slotify/cron"
	"slotify/database"
	bookingRepo "slotify/database/repository/booking"
	eventtypeRepo "slotify/database/repository/eventtype"
	hostRepo "slotify/database/repository/host"
	"slotify/handlers"
	"slotify/middleware"
	"slotify/routes"
	"slotify/services/reservation"
	"slotify/services/scheduling"
	"slotify/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	hosts := hostRepo.NewMongoHostRepo()
	eventTypes := eventtypeRepo.NewMongoEventTypeRepo()
	bookings := bookingRepo.NewMongoBookingRepo()

	// reservation ledger.
	var ledger reservation.Ledger
	if config.AppConfig.LedgerBackend == "memory" {
		ledger = reservation.NewMemoryLedger()
	} else {
		ledger = reservation.NewRedisLedger(utils.GetLedgerClient())
	}

	expiryScheduler := cron.NewExpiryScheduler()
	defer expiryScheduler.Close()
	cron.InitExpiryWorker(ledger)

	// services.
	engine := &scheduling.DefaultSchedulingEngine{
		EventTypes:        eventTypes,
		Hosts:             hosts,
		Bookings:          bookings,
		Ledger:            ledger,
		Expiry:            expiryScheduler,
		ReservationTTL:    config.ReservationTTL(),
		BookingWindowDays: config.AppConfig.BookingWindowDays,
		Logger:            logger,
	}

	slotHandler := handlers.NewSlotHandler(engine, logger)
	reservationHandler := handlers.NewReservationHandler(engine, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Slots:        slotHandler,
		Reservations: reservationHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetLedgerClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
