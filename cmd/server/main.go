package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	appservice "github.com/alongsideai/cre-ai-assistant-sub001/internal/application/service"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/config"
	domainservice "github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/service"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/infrastructure/directory"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/infrastructure/events"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/infrastructure/llm"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/infrastructure/monitoring"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/infrastructure/persistence/postgres"
	redisinfra "github.com/alongsideai/cre-ai-assistant-sub001/internal/infrastructure/persistence/redis"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/infrastructure/rag"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/infrastructure/ratelimit"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/infrastructure/secrets"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/interfaces/http/handlers"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/interfaces/http/middleware"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/interfaces/http/router"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/constants"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/logger"
)

func main() {
	startupLogger, _ := monitoring.NewZapLogger(&config.LogConfig{Level: "info", Format: "console"})

	cfg, err := config.Load(startupLogger)
	if err != nil {
		stdlog.Fatalf("failed to load config: %v", err)
	}

	appLogger, err := monitoring.NewZapLogger(&cfg.Log)
	if err != nil {
		stdlog.Fatalf("failed to create logger: %v", err)
	}

	ctx := context.Background()

	tracing, err := monitoring.NewTracingManager(&cfg.Tracing, appLogger)
	if err != nil {
		appLogger.Fatal(ctx, "failed to initialize tracing", err)
	}

	db, err := postgres.Connect(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal(ctx, "failed to connect to database", err)
	}
	if err := postgres.Migrate(db); err != nil {
		appLogger.Fatal(ctx, "failed to run migrations", err)
	}

	redisClient, err := redisinfra.Connect(ctx, &cfg.Redis, appLogger)
	if err != nil {
		appLogger.Fatal(ctx, "failed to connect to redis", err)
	}
	defer redisClient.Close()

	metrics := monitoring.NewMetrics()
	cacheManager := redisinfra.NewCacheManager(redisClient, "cre:")
	limiter := ratelimit.NewRedisLimiter(redisClient, cfg.RateLimit.RequestsPerMinute)

	// Repositories
	leaseRepo := postgres.NewLeaseRepository(db)
	workOrderRepo := postgres.NewWorkOrderRepository(db)
	documentRepo := postgres.NewDocumentRepository(db)
	vendorRepo := postgres.NewVendorRepository(db)
	propertyRepo := postgres.NewPropertyRepository(db)

	// LLM client
	apiKey, err := resolveLLMAPIKey(ctx, cfg)
	if err != nil {
		appLogger.Fatal(ctx, "failed to resolve llm api key", err)
	}
	llmClient, err := llm.NewGenAIClient(ctx, &cfg.LLM, apiKey, metrics)
	if err != nil {
		appLogger.Fatal(ctx, "failed to create llm client", err)
	}
	defer llmClient.Close()
	extractor := llm.NewExtractor(llmClient, appLogger)

	// Event publisher
	var publisher domainservice.WorkOrderEventPublisher
	var kafkaProducer *events.KafkaProducer
	if cfg.Kafka.Enabled {
		kafkaProducer = events.NewKafkaProducer(&cfg.Kafka, appLogger)
		publisher = kafkaProducer
		defer kafkaProducer.Close()
	}

	// Domain services
	portfolio := domainservice.NewPortfolioService(domainservice.NewAlertBuilder())
	vendorDirectory := directory.NewCachedVendorDirectory(vendorRepo)
	engine := domainservice.NewMaintenanceService(vendorDirectory, domainservice.MaintenanceConfig{
		ApprovalCostThreshold: cfg.Maintenance.ApprovalCostThreshold,
		AllowedFollowUps:      followUpTypes(cfg.Maintenance.AllowedFollowUps),
		DefaultTimeZone:       cfg.Maintenance.DefaultTimeZone,
	}, appLogger)

	// RAG pipeline
	chunker := rag.NewTextChunker(0, 0)
	retriever := rag.NewKeywordRetriever(documentRepo)
	composer := rag.NewComposer(llmClient)

	// Application services
	leaseSvc := appservice.NewLeaseAppService(leaseRepo, portfolio, cacheManager, appLogger)
	dashboardSvc := appservice.NewDashboardAppService(leaseRepo, workOrderRepo, portfolio, cacheManager, cfg.Cache.DashboardTTL, appLogger)
	maintenanceSvc := appservice.NewMaintenanceAppService(extractor, engine, workOrderRepo, propertyRepo, publisher, appLogger)
	documentSvc := appservice.NewDocumentAppService(extractor, chunker, documentRepo, cacheManager, appLogger)
	qaSvc := appservice.NewQAAppService(retriever, composer, appLogger)

	// HTTP surface
	global := []gin.HandlerFunc{
		middleware.Recovery(appLogger),
		middleware.RequestID(),
		middleware.Tracing(tracing),
		middleware.RequestLogger(appLogger, metrics),
	}
	var protected []gin.HandlerFunc
	if cfg.Auth.Enabled {
		protected = append(protected, middleware.RequireJWT(&cfg.Auth, appLogger))
	}
	if cfg.RateLimit.Enabled {
		protected = append(protected, middleware.RateLimit(limiter, metrics, appLogger))
	}

	// Config hot reload: push the tunable knobs to their consumers.
	cfg.OnReload(func(updated *config.Config) {
		limiter.SetLimit(updated.RateLimit.RequestsPerMinute)
		engine.UpdatePolicy(domainservice.MaintenanceConfig{
			ApprovalCostThreshold: updated.Maintenance.ApprovalCostThreshold,
			AllowedFollowUps:      followUpTypes(updated.Maintenance.AllowedFollowUps),
			DefaultTimeZone:       updated.Maintenance.DefaultTimeZone,
		})
		dashboardSvc.SetCacheTTL(updated.Cache.DashboardTTL)
		if ls, ok := appLogger.(monitoring.LevelSetter); ok {
			ls.SetLevel(updated.Log.Level)
		}
		appLogger.Info(ctx, "runtime configuration updated")
	})

	r := router.New(cfg, appLogger, router.Handlers{
		Health:      handlers.NewHealthHandler(db, redisClient),
		Dashboard:   handlers.NewDashboardHandler(dashboardSvc),
		Lease:       handlers.NewLeaseHandler(leaseSvc),
		Maintenance: handlers.NewMaintenanceHandler(maintenanceSvc, metrics),
		Document:    handlers.NewDocumentHandler(documentSvc),
		QA:          handlers.NewQAHandler(qaSvc),
	}, global, protected)

	// Background SLA sweep: escalate overdue work orders on a fixed interval.
	sweepCtx, stopSweep := context.WithCancel(ctx)
	go runOverdueSweep(sweepCtx, maintenanceSvc, cfg.Maintenance.SweepInterval, metrics, appLogger)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- r.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		appLogger.Info(ctx, "shutdown signal received", logger.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil {
			appLogger.Error(ctx, "http server failed", err)
		}
	}

	stopSweep()

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := r.Stop(shutdownCtx); err != nil {
		appLogger.Error(shutdownCtx, "http server shutdown failed", err)
	}
	if err := tracing.Shutdown(shutdownCtx); err != nil {
		appLogger.Error(shutdownCtx, "tracing shutdown failed", err)
	}
	appLogger.Info(ctx, "server stopped")
}

// resolveLLMAPIKey reads the language model API key from Vault when enabled,
// otherwise from configuration.
func resolveLLMAPIKey(ctx context.Context, cfg *config.Config) (string, error) {
	var source domainservice.SecretSource
	if cfg.Vault.Enabled {
		vaultClient, err := secrets.NewVaultClient(&cfg.Vault)
		if err != nil {
			return "", err
		}
		source = vaultClient
	} else {
		source = secrets.StaticSecretSource{
			cfg.Vault.SecretPath + "/" + cfg.LLM.APIKeyName: cfg.LLM.APIKey,
		}
	}
	return source.Get(ctx, cfg.Vault.SecretPath, cfg.LLM.APIKeyName)
}

func followUpTypes(names []string) []constants.FollowUpType {
	types := make([]constants.FollowUpType, 0, len(names))
	for _, name := range names {
		types = append(types, constants.FollowUpType(name))
	}
	return types
}

func runOverdueSweep(ctx context.Context, svc *appservice.MaintenanceAppService, interval time.Duration, metrics *monitoring.Metrics, log logger.Logger) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := svc.EscalateOverdue(ctx)
			if err != nil {
				log.Error(ctx, "overdue sweep failed", err)
				continue
			}
			if count > 0 {
				metrics.WorkOrdersEscalated.Add(float64(count))
				log.Info(ctx, "overdue work orders escalated", logger.Int("count", count))
			}
		}
	}
}
