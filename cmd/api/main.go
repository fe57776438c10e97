package main

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/joefazee/directory/app"
	"github.com/joefazee/directory/app/database"
	"github.com/joefazee/directory/internal/cache"
	"github.com/joefazee/directory/internal/deps"
	"github.com/joefazee/directory/internal/logger"
	"github.com/joefazee/directory/internal/metrics"
	"github.com/joefazee/directory/internal/sanitizer"
)

const shutdownTimeout = 10 * time.Second

// @title Directory API
// @version 1.0
// @description Countries and persons directory with search, sort and CSV/Excel export.

// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		stdlog.Fatal("Failed to load configuration: ", err)
	}

	log := logger.NewZeroLogger(os.Stdout, logger.ParseLevel(cfg.LogLevel), logger.Fields{
		"service": "directory",
		"env":     cfg.Env,
	})

	if err := run(cfg, log); err != nil {
		log.Fatal(err, nil)
	}
}

func openDatabase(cfg *app.Config, log logger.Logger) (*gorm.DB, error) {
	if !cfg.UsesDatabase() {
		return nil, nil
	}

	db, err := database.New(&cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.Storage.AutoMigrate {
		if err := database.Migrate(cfg.DB.URL(), cfg.Storage.MigrationsPath); err != nil {
			return nil, err
		}
		log.Info("migrations applied", map[string]interface{}{"path": cfg.Storage.MigrationsPath})
	}
	return db, nil
}

func run(cfg *app.Config, log logger.Logger) error {
	db, err := openDatabase(cfg, log)
	if err != nil {
		return err
	}

	nameCache, err := cache.FromConfig[string](&cfg.Cache)
	if err != nil {
		return err
	}
	defer func() { _ = nameCache.Close() }()

	container := deps.NewContainer(db, sanitizer.NewHTMLStripper(), log, nameCache,
		metrics.New(prometheus.DefaultRegisterer))
	container.CacheTTL = cfg.Cache.TTL
	container.Seed = cfg.Storage.Seed
	app.InitModules(container, cfg)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           app.NewRouter(cfg, container, prometheus.DefaultGatherer),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting directory API", map[string]interface{}{
			"addr":    srv.Addr,
			"storage": cfg.Storage.Driver,
			"cache":   cfg.Cache.Backend,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
