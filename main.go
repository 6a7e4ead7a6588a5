package main

import (
	"go.uber.org/zap"

	"strombreaker-backend/internal/config"
	"strombreaker-backend/internal/db"
	"strombreaker-backend/internal/logic"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	gdb, err := db.Open(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	store := db.NewStore(gdb)

	var ai *logic.Collaborator
	if cfg.Strategy == config.StrategyDelegated {
		ai, err = logic.NewCollaborator(cfg.LLM, logger)
		if err != nil {
			logger.Fatal("failed to build collaborator client", zap.Error(err))
		}
	}

	srv := logic.NewServer(store, ai, cfg, logger)
	router := srv.SetupRouter()
	logger.Info("listening", zap.String("addr", cfg.Addr), zap.String("strategy", cfg.Strategy))
	if err := router.Run(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
