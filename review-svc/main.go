package main

import (
	"log"
	"time"

	"tablescout/config"
	httpapi "tablescout/review-svc/internal/api/http"
	"tablescout/review-svc/internal/service"
	"tablescout/review-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter("reviews")
	defer kafkaWriter.Close()

	repository := storage.NewPostgresRepository(db)
	if err := repository.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	cache := storage.NewRedisCache(rdb, 30*time.Second)
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	reviewSvc := service.NewReviewService(repository, cache, publisher)

	handler := httpapi.NewHandler(reviewSvc)
	httpapi.StartServer(":8082", httpapi.NewRouter(handler))
}
