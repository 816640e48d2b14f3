package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"dining_sync/internal/cache"
	"dining_sync/internal/config"
	"dining_sync/internal/notify"
	"dining_sync/internal/publisher"
	"dining_sync/internal/scheduler"
	"dining_sync/internal/service"
	"dining_sync/internal/source/dining"
	"dining_sync/internal/source/sheets"
	"dining_sync/internal/source/static"
	"dining_sync/internal/storage/postgres"
	"dining_sync/internal/transform"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	once := flag.Bool("once", false, "run the pipeline once and exit")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Dining.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)
	loc := cfg.Scheduler.Location()

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	// The run event is optional; a nil interface disables it.
	var events service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		events = rabbitMQ
	}

	eateryStore := postgres.NewEateryStore(db)
	favoritesStore := postgres.NewFavoritesStore(db)
	txManager := postgres.NewTransactionManager(db, postgres.TxOptions{
		MaxWait: cfg.Transaction.MaxWait,
		Timeout: cfg.Transaction.Timeout,
	})

	upstream := dining.New(dining.Config{
		URL:            cfg.Dining.URL,
		Timeout:        cfg.Dining.Timeout,
		MaxAttempts:    cfg.Dining.Retry.MaxAttempts,
		InitialBackoff: cfg.Dining.Retry.InitialBackoff,
		MaxBackoff:     cfg.Dining.Retry.MaxBackoff,
	}, logger)
	staticLoader := static.NewLoader(cfg.Static.Path, logger)
	fridge := sheets.New(sheets.Config{
		BaseURL:        cfg.Sheets.BaseURL,
		SheetID:        cfg.Sheets.SheetID,
		APIKey:         cfg.Sheets.APIKey,
		ApprovedEmails: cfg.Sheets.ApprovedEmails,
		Range:          cfg.Sheets.Range,
		Timeout:        cfg.Sheets.Timeout,
	}, logger)

	transformer := transform.NewTransformer(time.Now, loc)
	runner := transform.NewRunner(transformer, cfg.Dining.Workers, logger)

	var targets []cache.Target
	if cfg.Cache.ServerURL != "" {
		targets = append(targets, cache.NewRemoteRefresher(cache.RemoteConfig{
			ServerURL: cfg.Cache.ServerURL,
			Header:    cfg.Cache.Header,
			Secret:    cfg.Cache.Secret,
			Timeout:   cfg.Cache.Timeout,
		}, logger))
	}
	cachePublisher := cache.NewPublisher(eateryStore, cache.New(), logger, targets...)

	syncService := service.NewSyncService(
		upstream,
		staticLoader,
		fridge,
		transformer,
		runner,
		eateryStore,
		txManager,
		cachePublisher,
		events,
		logger,
		service.Options{
			BatchSize: cfg.Dining.BatchSize,
			FridgeID:  cfg.Static.FridgeID,
		},
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	guard := &scheduler.RunGuard{}
	sched, err := scheduler.NewScheduler(syncService, guard, scheduler.Config{
		Spec:       cfg.Scheduler.Cron,
		Location:   loc,
		RunTimeout: cfg.Scheduler.RunTimeout,
		RunOnStart: cfg.Scheduler.RunOnStart,
	}, logger)
	if err != nil {
		logger.Error("failed to create scheduler", "error", err)
		os.Exit(1)
	}

	if *once {
		if _, err := sched.RunNow(ctx); err != nil {
			os.Exit(1)
		}
		return
	}

	if cfg.Notifications.Enabled {
		client, err := notify.NewSNSClient(ctx, cfg.Notifications.AWSRegion)
		if err != nil {
			logger.Error("failed to create sns client", "error", err)
			os.Exit(1)
		}
		notifier := notify.NewNotifier(
			eateryStore,
			favoritesStore,
			notify.NewSNSSink(client, logger),
			cfg.Notifications.Lookahead,
			loc,
			logger,
		)
		err = sched.AddJob("notifications", cfg.Notifications.Cron, func(ctx context.Context) error {
			_, err := notifier.Run(ctx)
			return err
		})
		if err != nil {
			logger.Error("failed to schedule notifications", "error", err)
			os.Exit(1)
		}
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGUSR1)
		for sig := range sigCh {
			if sig == syscall.SIGUSR1 {
				logger.Info("manual sync requested")
				go func() { _, _ = sched.RunNow(ctx) }()
				continue
			}
			logger.Info("received shutdown signal", "signal", sig)
			cancel()
			return
		}
	}()

	logger.Info("starting dining syncer",
		"source", upstream.Name(),
		"cron", cfg.Scheduler.Cron,
		"timezone", loc.String(),
		"workers", cfg.Dining.Workers,
		"rabbitmq", cfg.RabbitMQ.Enabled,
		"notifications", cfg.Notifications.Enabled,
	)

	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
