package main

import (
	"log"
	"net/http"

	"yardkeeper/internal/config"
	"yardkeeper/internal/logger"
	"yardkeeper/internal/middleware"
	"yardkeeper/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database and migrate the schema
	config.InitDB()

	// Setup Gin router
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := config.HTTPAddr()
	log.Printf("Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
