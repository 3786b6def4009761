package main

import (
	"log"
	"net/http"

	"foodplate-dashboard/api-gateway/internal/gateway"
	"foodplate-dashboard/config"

	"github.com/rs/cors"
)

func main() {
	cfg := config.MustLoad()

	gw := gateway.NewGateway(gateway.Config{
		DashboardSvcURL: cfg.DashboardSvcURL,
		FoodsAPIURL:     cfg.FoodsAPIURL,
	}, &http.Client{})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	log.Printf("API Gateway starting on %s", cfg.GatewayAddr)
	log.Fatal(http.ListenAndServe(cfg.GatewayAddr, handler))
}
