package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"foodplate-dashboard/config"
	httpapi "foodplate-dashboard/dashboard-svc/internal/api/http"
	"foodplate-dashboard/dashboard-svc/internal/client"
	"foodplate-dashboard/dashboard-svc/internal/service"
	"foodplate-dashboard/dashboard-svc/internal/storage"
)

func main() {
	cfg := config.MustLoad()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		snapshots service.SnapshotStore
		publisher service.EventPublisher
		journal   service.ActivityJournal
		closers   []io.Closer
	)

	if cfg.Redis.Enabled() {
		rdb := config.MustInitRedis(cfg.Redis)
		closers = append(closers, rdb)
		snapshots = storage.NewRedisSnapshotStore(rdb, cfg.Redis.SnapshotTTL)
		log.Printf("Snapshots enabled (redis %s:%s)", cfg.Redis.Host, cfg.Redis.Port)
	}

	if cfg.Kafka.Enabled() {
		writer := config.NewKafkaWriter(cfg.Kafka)
		closers = append(closers, writer)
		publisher = storage.NewKafkaPublisher(writer)
		log.Printf("Publishing food events to topic %s", cfg.Kafka.Topic)
	}

	if cfg.Postgres.Enabled() {
		db := config.MustInitPostgres(cfg.Postgres)
		closers = append(closers, db)
		pgJournal := storage.NewPostgresJournal(db)
		if err := pgJournal.Migrate(ctx); err != nil {
			closeAll(closers)
			log.Fatal("Failed to migrate activity journal:", err)
		}
		journal = pgJournal
	}

	foodsAPI := client.NewFoodsClient(cfg.FoodsAPIURL, &http.Client{})
	foods := service.NewSynchronizer(foodsAPI, snapshots, publisher, journal)

	if err := foods.Warm(ctx); err != nil {
		log.Printf("ERROR: Starting with an empty list: %v", err)
	}

	handler := httpapi.NewHandler(foods, journal, service.MenuCardQRGenerator{BaseURL: cfg.PublicBaseURL})
	err := httpapi.StartServer(ctx, cfg.DashboardAddr, httpapi.NewRouter(handler))

	// Flushes pending Kafka messages before exit.
	closeAll(closers)
	if err != nil {
		log.Fatal(err)
	}
	log.Println("Dashboard Service stopped")
}

func closeAll(closers []io.Closer) {
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil {
			log.Printf("ERROR: Failed to close resource: %v", err)
		}
	}
}
