package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tdnguyen27/StudyPet_Go/internal/buff"
	"github.com/tdnguyen27/StudyPet_Go/internal/catalog"
	"github.com/tdnguyen27/StudyPet_Go/internal/config"
	"github.com/tdnguyen27/StudyPet_Go/internal/database"
	dbpostgres "github.com/tdnguyen27/StudyPet_Go/internal/database/postgres"
	"github.com/tdnguyen27/StudyPet_Go/internal/economy"
	"github.com/tdnguyen27/StudyPet_Go/internal/event"
	"github.com/tdnguyen27/StudyPet_Go/internal/gacha"
	"github.com/tdnguyen27/StudyPet_Go/internal/handler"
	"github.com/tdnguyen27/StudyPet_Go/internal/logger"
	"github.com/tdnguyen27/StudyPet_Go/internal/pet"
	"github.com/tdnguyen27/StudyPet_Go/internal/quest"
	"github.com/tdnguyen27/StudyPet_Go/internal/repository"
	"github.com/tdnguyen27/StudyPet_Go/internal/server"
	"github.com/tdnguyen27/StudyPet_Go/internal/state"
	"github.com/tdnguyen27/StudyPet_Go/internal/utils"
	"github.com/tdnguyen27/StudyPet_Go/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	handler.InitValidator()

	ctx := context.Background()
	log := logger.FromContext(ctx)

	cat, err := catalog.Load(cfg.ConfigDir)
	if err != nil {
		log.Error("Failed to load catalog", "error", err)
		os.Exit(1)
	}

	store, dbPool, err := buildStore(ctx, cfg)
	if err != nil {
		log.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}
	if dbPool != nil {
		defer dbPool.Close()
	}

	stateManager, err := state.NewManager(ctx, store)
	if err != nil {
		log.Error("Failed to load gamification state", "error", err)
		os.Exit(1)
	}

	eventBus := event.NewMemoryBus()
	clock := utils.SystemClock{}
	src := utils.NewTimeSeededSource()

	petService := pet.NewService(stateManager, cat, clock, eventBus)
	economyService := economy.NewService(stateManager, cat, petService, eventBus)
	gachaService := gacha.NewService(stateManager, cat, buff.NewGenerator(src), src, eventBus)
	questService, err := quest.NewService(ctx, store, &cat.Quests, economyService, clock, src, eventBus)
	if err != nil {
		log.Error("Failed to load quest state", "error", err)
		os.Exit(1)
	}
	questService.RegisterEventHandlers(eventBus)

	pool := worker.NewPool(2, 16)
	pool.Start()

	resetWorker := worker.NewQuestResetWorker(questService, pool, worker.DefaultResetCheckInterval)
	resetWorker.Start()

	srv := server.NewServer(cfg.Port, dbPool, economyService, gachaService, petService, questService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-quit:
		log.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", "error", err)
	}
	if err := resetWorker.Shutdown(shutdownCtx); err != nil {
		log.Error("Reset worker shutdown failed", "error", err)
	}
	pool.Stop()
	log.Info("Shutdown complete")
}

// buildStore constructs the configured persistence backend. The postgres
// backend also returns its pool so readiness checks can ping it.
func buildStore(ctx context.Context, cfg *config.Config) (repository.Store, database.Pool, error) {
	if cfg.StoreBackend == config.StoreBackendPostgres {
		connString := cfg.GetDBConnString()
		if err := dbpostgres.Migrate(ctx, connString); err != nil {
			return nil, nil, err
		}
		pool, err := database.NewPool(ctx, connString, database.DefaultMaxConnections, database.DefaultMaxIdleTime, database.DefaultMaxLifetime)
		if err != nil {
			return nil, nil, err
		}
		return dbpostgres.NewStore(pool, cfg.UserID), pool, nil
	}

	fileStore, err := repository.NewFileStore(cfg.DataDir, cfg.UserID)
	if err != nil {
		return nil, nil, err
	}
	return fileStore, nil, nil
}
