package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"luxora/config"
	"luxora/cron"
	"luxora/database"
	bookingRepoPkg "luxora/database/repository/booking"
	catalogRepoPkg "luxora/database/repository/catalog"
	clientRepoPkg "luxora/database/repository/client"
	collaboratorRepoPkg "luxora/database/repository/collaborator"
	financeRepoPkg "luxora/database/repository/finance"
	offerRepoPkg "luxora/database/repository/offer"
	"luxora/handlers"
	"luxora/routes"
	"luxora/services/booking"
	"luxora/services/ledger"
	"luxora/services/offer"
	"luxora/services/reconcile"
	"luxora/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo(utils.GetCacheClient())
	offerRepo := offerRepoPkg.NewMongoOfferRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	collaboratorRepo := collaboratorRepoPkg.NewMongoCollaboratorRepo()
	financeRepo := financeRepoPkg.NewMongoFinanceRepo()
	clientRepo := clientRepoPkg.NewMongoClientRepo()

	// services.
	offerService := &offer.DefaultOfferService{
		Repo:    offerRepo,
		Catalog: catalogRepo,
	}
	converterService := &booking.DefaultConverterService{
		Bookings: bookingRepo,
		Offers:   offerRepo,
	}
	ledgerService := &ledger.DefaultLedgerService{
		Collaborators: collaboratorRepo,
		Bookings:      bookingRepo,
		Finance:       financeRepo,
	}
	guard := &reconcile.Guard{
		Finance:       financeRepo,
		Bookings:      bookingRepo,
		Collaborators: collaboratorRepo,
		Clients:       clientRepo,
	}

	// Background reconciliation worker and its enqueue client.
	cron.InitReconcileWorker(guard)
	sweepClient := cron.NewSweepClient()
	defer sweepClient.Close()

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Offer:        handlers.NewOfferHandler(offerService),
		Booking:      handlers.NewBookingHandler(converterService),
		Collaborator: handlers.NewCollaboratorHandler(ledgerService),
		Catalog:      handlers.NewCatalogHandler(catalogRepo),
		Reconcile:    handlers.NewReconcileHandler(guard, sweepClient),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
