package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	httpadapter "trustdesk/internal/adapters/http"
	pg "trustdesk/internal/adapters/postgres"
	"trustdesk/internal/adapters/upstream"
	"trustdesk/internal/adapters/ws"
	"trustdesk/internal/config"
	"trustdesk/internal/feed"
	"trustdesk/internal/fixtures"
	"trustdesk/internal/logging"
	"trustdesk/internal/ports"
	"trustdesk/internal/services/review"
	"trustdesk/internal/services/scorecards"
	"trustdesk/internal/workers/streampoller"
)

func main() {
	cfg, err := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.WithError(err).Error("exited with error")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *logrus.Logger) error {
	seed, err := fixtures.Load(time.Now())
	if err != nil {
		return fmt.Errorf("fixtures: %w", err)
	}
	rec := feed.NewReconciler(feed.Seed{Transactions: seed.Transactions, Alerts: seed.Alerts}, feed.WithLogger(logger))

	// The journal is optional; without it decisions live only in memory.
	var journal ports.DecisionJournal
	if cfg.DatabaseURL != "" {
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("db connect error: %w", err)
		}
		defer db.Close()
		if err := db.Migrate(ctx); err != nil {
			return fmt.Errorf("db migrate error: %w", err)
		}
		journal = db
		logger.Info("decision journal enabled")
	}

	g, gctx := errgroup.WithContext(ctx)

	feedClient := ws.New(cfg.FeedURL, rec, logger)
	decisions := upstream.NewDecisionClient(cfg.UpstreamURL, nil)
	streams := upstream.NewStreamClient(cfg.StreamAPIURL, &http.Client{Timeout: cfg.StreamPollInterval})
	poller := streampoller.New(streams, upstream.Streams, cfg.StreamCount, logger)
	reviews := review.New(rec, decisions, rec, journal, seed.ReceiptItems, seed.VideoMarkers, logger)
	defer reviews.CloseAll()

	srv := httpadapter.New(gctx, httpadapter.Deps{
		Feed:       rec,
		Connector:  feedClient,
		Reviews:    reviews,
		Scorecards: scorecards.New(seed.Employees),
		Heatmap:    seed.Heatmap,
		Streams:    poller,
		Journal:    journal,
		Log:        logger,
	})
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())
	httpSrv := &http.Server{Addr: cfg.ListenAddr, Handler: r, ReadHeaderTimeout: 10 * time.Second}

	if cfg.FeedAutoStart {
		feedClient.Start(gctx)
	}
	g.Go(func() error {
		poller.Run(gctx, cfg.StreamPollInterval)
		return nil
	})
	g.Go(func() error {
		logger.Infof("listening on %s", cfg.ListenAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
