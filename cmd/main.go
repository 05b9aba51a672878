package main

import (
	"go.uber.org/zap"

	"github.com/bw3sley/ignite-daily-diet-api/config"
	"github.com/bw3sley/ignite-daily-diet-api/routes"
	"github.com/bw3sley/ignite-daily-diet-api/utils"
)

func main() {
	cfg := config.Load()

	logger := utils.NewLogger(cfg.LogFile)
	defer func() { _ = logger.Sync() }()

	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}

	r := routes.SetupRouter(db, logger)

	logger.Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
