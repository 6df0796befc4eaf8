package main

import (
	"context"

	"tablescout/agg-svc/internal/service"
	"tablescout/agg-svc/internal/storage"
	"tablescout/config"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reviewReader := config.NewKafkaReader("reviews", "agg-svc-consumer")
	defer reviewReader.Close()

	bookingReader := config.NewKafkaReader("bookings", "agg-svc-consumer")
	defer bookingReader.Close()

	store := storage.NewStore(db, rdb)

	ctx := context.Background()
	go service.NewConsumer(bookingReader, store).Start(ctx)
	service.NewConsumer(reviewReader, store).Start(ctx)
}
