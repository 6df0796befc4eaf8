package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"

	"tablescout/api-gateway/internal/gateway"
	"tablescout/config"
)

func main() {
	config.LoadEnv()

	cfg := gateway.Config{
		DirectorySvcURL: config.GetEnv("DIRECTORY_SVC_URL", "http://localhost:8081"),
		ReviewSvcURL:    config.GetEnv("REVIEW_SVC_URL", "http://localhost:8082"),
		AnalyticsSvcURL: config.GetEnv("ANALYTICS_SVC_URL", "http://localhost:8083"),
	}

	gw := gateway.NewGateway(cfg, &http.Client{})

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(gw.SetupRoutes())

	log.Println("API Gateway starting on port 8080")
	log.Fatal(http.ListenAndServe(":8080", handler))
}
