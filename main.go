package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/vota-locales/cache"
	"github.com/danielhkuo/vota-locales/cliparse"
	"github.com/danielhkuo/vota-locales/db"
	"github.com/danielhkuo/vota-locales/event"
	"github.com/danielhkuo/vota-locales/metrics"
	"github.com/danielhkuo/vota-locales/middleware"
	"github.com/danielhkuo/vota-locales/router"
	"github.com/danielhkuo/vota-locales/store"
	"github.com/danielhkuo/vota-locales/voting"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	driver := "sqlite"
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	}
	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Optional collaborators
	var invalidator cache.Invalidator = cache.Noop{}
	if cfg.RedisURL != "" {
		ri, err := cache.NewRedisInvalidator(context.Background(), cfg.RedisURL)
		if err != nil {
			slog.Error("redis connection failed", "error", err)
			os.Exit(1)
		}
		defer ri.Close()
		invalidator = ri
		slog.Info("Page-cache invalidation enabled", "redis", cfg.RedisURL)
	}

	var publisher event.VotePublisher = event.Noop{}
	if len(cfg.KafkaBrokers) > 0 {
		kp := event.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kp.Close()
		publisher = kp
		slog.Info("Vote event stream enabled", "topic", cfg.KafkaTopic)
	}

	// Assemble the voting engine
	svc := voting.New(store.NewSQLStore(dbConn), voting.Options{
		Blacklist:      cfg.Blacklist,
		ServiceRoleKey: cfg.ServiceRoleKey,
		Cache:          invalidator,
		Events:         publisher,
		Metrics:        metrics.NewVoteMetrics("vota_locales", prometheus.DefaultRegisterer),
	})

	// Create router
	mux := router.NewRouter(svc, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
