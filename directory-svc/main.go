package main

import (
	"log"
	"time"

	"tablescout/config"
	httpapi "tablescout/directory-svc/internal/api/http"
	"tablescout/directory-svc/internal/service"
	"tablescout/directory-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter("bookings")
	defer kafkaWriter.Close()

	repository := storage.NewPostgresRepository(db)
	if err := repository.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	cache := storage.NewRedisSearchCache(rdb, time.Minute)
	publisher := storage.NewKafkaPublisher(kafkaWriter)
	qrEncoder := service.DefaultQRGenerator{BaseURL: config.GetEnv("PUBLIC_BASE_URL", "http://localhost:8080")}

	searchSvc := service.NewSearchService(repository, cache)
	timetableSvc := service.NewTimetableService(repository, service.RandomAvailability{})
	bookingSvc := service.NewBookingService(repository, repository, publisher, qrEncoder)

	handler := httpapi.NewHandler(searchSvc, timetableSvc, bookingSvc)
	httpapi.StartServer(":8081", httpapi.NewRouter(handler))
}
