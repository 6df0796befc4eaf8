package main

import (
	httpapi "tablescout/analytics-svc/internal/api/http"
	"tablescout/analytics-svc/internal/service"
	"tablescout/config"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	analyticsSvc := service.NewAnalyticsService(db, rdb)

	handler := httpapi.NewHandler(analyticsSvc)
	httpapi.StartServer(":8083", httpapi.NewRouter(handler))
}
