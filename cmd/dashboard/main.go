package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	httpadapter "github.com/couchcryptid/crisis-coordination-service/internal/adapter/http"
	"github.com/couchcryptid/crisis-coordination-service/internal/config"
	"github.com/couchcryptid/crisis-coordination-service/internal/dashboard"
	"github.com/couchcryptid/crisis-coordination-service/internal/observability"
	"github.com/couchcryptid/crisis-coordination-service/internal/refdata"
	"github.com/couchcryptid/crisis-coordination-service/internal/scenario"
	"github.com/couchcryptid/crisis-coordination-service/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Reference data is loaded once; a missing or malformed file is fatal.
	coords, err := refdata.LoadCoordinates(cfg.CoordinatesPath, logger)
	if err != nil {
		logger.Error("failed to load coordinate table", "error", err)
		os.Exit(1)
	}
	rawCatalog, err := refdata.LoadCatalog(cfg.DistrictsPath, logger)
	if err != nil {
		logger.Error("failed to load district catalog", "error", err)
		os.Exit(1)
	}
	catalog := refdata.NewCachedCatalog(rawCatalog, cfg.CatalogCacheSize, func(hit bool) {
		if hit {
			metrics.CatalogCache.WithLabelValues("hit").Inc()
		} else {
			metrics.CatalogCache.WithLabelValues("miss").Inc()
		}
	})
	metrics.LoadedCoordinates.Set(float64(coords.Len()))
	metrics.LoadedDistricts.Set(float64(rawCatalog.Len()))

	rnd := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	generator := scenario.New(catalog, coords, rnd, logger)

	sessions := session.NewManager(cfg.DatasetTTL, clockwork.NewRealClock(), func() {
		metrics.ActiveSessions.Inc()
	})

	svc := dashboard.New(generator, catalog, sessions, logger, metrics)

	defaultCaps := dashboard.Capacities{
		Food:    cfg.TotalFoodUnits,
		Shelter: cfg.TotalShelterUnits,
		Medical: cfg.TotalMedicalKits,
	}
	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, defaultCaps, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
