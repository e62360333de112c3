package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"weathertodo.app/internal/mockserver"
	"weathertodo.app/pkg/logger"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	logger.New(logger.ParseLevel(os.Getenv("LOG_LEVEL"))).WithField("service", "openmeteo-mock").SetDefault()

	addr := ":8081"
	if port := os.Getenv("MOCK_PORT"); port != "" {
		addr = ":" + port
	}

	r := mockserver.NewOpenMeteoRouter(nil)

	slog.Info("Mock Open-Meteo server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
