package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cacheapp "github.com/erp/companion/internal/application/cache"
	syncapp "github.com/erp/companion/internal/application/sync"
	syncdomain "github.com/erp/companion/internal/domain/sync"
	"github.com/erp/companion/internal/infrastructure/config"
	"github.com/erp/companion/internal/infrastructure/connectivity"
	"github.com/erp/companion/internal/infrastructure/localstore"
	"github.com/erp/companion/internal/infrastructure/logger"
	"github.com/erp/companion/internal/infrastructure/remote"
	"github.com/erp/companion/internal/interfaces/http/handler"
	"github.com/erp/companion/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

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

	log.Info("Starting ERP companion",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("listen_addr", cfg.HTTP.ListenAddr),
	)

	// Open the local cache
	store, err := localstore.Open(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to open local store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Error closing local store", zap.Error(err))
		}
	}()
	log.Info("Local store ready", zap.String("path", cfg.Database.Path))

	// Repositories
	salesOrderRepo := localstore.NewGormSalesOrderRepository(store.DB)
	quoteRepo := localstore.NewGormQuoteRepository(store.DB)
	workOrderRepo := localstore.NewGormWorkOrderRepository(store.DB)
	customerRepo := localstore.NewGormCustomerRepository(store.DB)
	stockItemRepo := localstore.NewGormStockItemRepository(store.DB)
	settingsRepo := localstore.NewGormSettingsRepository(store.DB)

	// Connectivity policy gate
	probe := connectivity.NewInterfaceProbe()
	gate := connectivity.NewPolicyGate(probe, log)

	// Sync engine. The gateway is rebuilt from the settings snapshot on
	// every invocation so URL edits apply on the next pass.
	newGateway := func(baseURL string) (syncdomain.RemoteGateway, error) {
		return remote.NewClient(baseURL, cfg.Remote.TenantID, cfg.Remote.RequestTimeout)
	}
	engine := syncapp.NewEngine(
		salesOrderRepo, quoteRepo, workOrderRepo,
		customerRepo, stockItemRepo, settingsRepo,
		gate, newGateway, log,
	)

	// Application services
	salesOrderService := cacheapp.NewSalesOrderService(salesOrderRepo)
	quoteService := cacheapp.NewQuoteService(quoteRepo)
	workOrderService := cacheapp.NewWorkOrderService(workOrderRepo)
	referenceService := cacheapp.NewReferenceService(customerRepo, stockItemRepo)
	settingsService := cacheapp.NewSettingsService(settingsRepo)

	if cfg.Sync.SyncOnStart {
		go func() {
			summary, err := engine.SyncAll(context.Background())
			if err != nil {
				log.Warn("Startup sync skipped", zap.Error(err))
				return
			}
			log.Info("Startup sync complete",
				zap.Int("pushed", summary.Push.Succeeded),
				zap.Int("pulled", summary.Pull.Inserted))
		}()
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginEngine := gin.New()
	ginEngine.Use(logger.Recovery(log))
	ginEngine.Use(logger.GinMiddleware(log))

	handler.NewHealthHandler(store, version).RegisterRoutes(ginEngine)

	r := router.NewRouter(ginEngine)
	r.Register(handler.NewSalesOrderHandler(salesOrderService))
	r.Register(handler.NewQuoteHandler(quoteService))
	r.Register(handler.NewWorkOrderHandler(workOrderService))
	r.Register(handler.NewReferenceHandler(referenceService))
	r.Register(handler.NewSettingsHandler(settingsService))
	r.Register(handler.NewSyncHandler(engine))
	r.Setup()

	srv := &http.Server{
		Addr:         cfg.HTTP.ListenAddr,
		Handler:      ginEngine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
