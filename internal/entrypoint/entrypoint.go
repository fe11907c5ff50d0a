package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/studygroups/internal/api"
	"github.com/mrlokans/studygroups/internal/audit"
	"github.com/mrlokans/studygroups/internal/config"
	auditRepo "github.com/mrlokans/studygroups/internal/database/audit"
	http_controllers "github.com/mrlokans/studygroups/internal/http"
	"github.com/mrlokans/studygroups/internal/scheduler"
	"github.com/mrlokans/studygroups/internal/storage"
	"github.com/mrlokans/studygroups/internal/tasks"
)

type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server Shutdown: %v", err)
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting studygroups v%s", version)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	backend, err := OpenBackend(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	facade := storage.NewFacade(backend.Driver)
	if err := facade.Setup(); err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}

	// The audit trail lives in the SQL database; the memory driver has none.
	var auditService *audit.Service
	if cfg.Audit.Enabled && backend.SQL != nil {
		auditService = audit.NewService(auditRepo.NewRepository(backend.SQL.DB))
	} else if cfg.Audit.Enabled {
		log.Printf("Audit trail disabled: the %s driver has no audit table", cfg.Database.Driver)
	}

	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(tasks.Config{
			DBPath:          cfg.Tasks.DBPath,
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		})
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		if auditService != nil {
			taskClient.Register(tasks.NewAuditRetentionQueue(auditService))
		}

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		taskClient.Start(taskCtx)
	}

	var retention *scheduler.AuditRetentionScheduler
	if auditService != nil && taskClient != nil {
		retention = scheduler.NewAuditRetentionScheduler(taskClient, cfg.Audit.CleanupSchedule, cfg.Audit.RetentionDays)
		if err := retention.Start(context.Background()); err != nil {
			log.Printf("WARNING: audit retention scheduler not started: %v", err)
			retention = nil
		}
	}

	routerCfg := http_controllers.RouterConfig{
		Handler:        api.NewHandler(facade),
		Database:       backend.Pinger(),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Version:        version,
	}
	if auditService != nil {
		routerCfg.AuditRecorder = auditService
		routerCfg.AuditReader = auditService
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if retention != nil {
			retention.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
		if auditService != nil {
			auditService.Wait()
		}
	}

	Serve(router, cfg, onShutdown)
}
