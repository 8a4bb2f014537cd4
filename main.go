package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danielhkuo/campus-vote/cliparse"
	"github.com/danielhkuo/campus-vote/db"
	"github.com/danielhkuo/campus-vote/election"
	"github.com/danielhkuo/campus-vote/event"
	"github.com/danielhkuo/campus-vote/router"
)

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded .env")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

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

	// Load persisted election state (process boundary)
	snap, err := db.LoadState(dbConn)
	if err != nil {
		slog.Error("state load failed", "error", err)
		os.Exit(1)
	}

	// Audit sinks: in-process log always, Kafka mirror when configured
	sink := event.Multi{event.NewLog()}
	if len(cfg.KafkaBrokers) > 0 {
		sink = append(sink, event.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic))
		slog.Info("Audit mirror enabled", "topic", cfg.KafkaTopic)
	}
	defer sink.Close()

	app := election.Restore(election.Config{
		InitialStatus: cfg.InitialStatus,
		Sink:          sink,
	}, snap)
	slog.Info("Election restored",
		"status", app.Status(),
		"candidates", len(snap.Candidates),
		"ballots", len(snap.Ballots),
	)

	// Create router
	mux := router.NewRouter(app, cfg, prometheus.NewRegistry())

	// Create server
	server := http.Server{
		Handler: mux,
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

	// Persist election state on the way out (process boundary)
	if err := db.SaveState(dbConn, app.Snapshot()); err != nil {
		slog.Error("state save failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Election state saved")
}
