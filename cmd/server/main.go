package main

import (
	"log"
	"net/http"

	"tricypay/internal/config"
	"tricypay/internal/logger"
	"tricypay/internal/middleware"
	"tricypay/internal/routes"
)

func main() {
	// Structured logging to a rotating file
	logger.Setup()

	// Process-wide configuration, loaded once
	cfg := config.Load()
	middleware.InitAuth(cfg.JWTSecret)

	// Connect to the database and migrate the schema
	config.InitDB(cfg)

	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("Server running at :%s", cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, handler))
}
