package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/JustJay7/appeal-case-manager/internal/config"
	"github.com/JustJay7/appeal-case-manager/internal/database"
	"github.com/JustJay7/appeal-case-manager/internal/server"
	"github.com/JustJay7/appeal-case-manager/pkg/logger"
)

func main() {
	var migrate bool
	flag.BoolVar(&migrate, "migrate", false, "Run database migrations")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logOutputs := []string{}
	if cfg.LogFile != "" {
		logOutputs = append(logOutputs, cfg.LogFile)
	}

	log, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat, logOutputs...)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database", "error", err)
	}

	if migrate {
		if err := database.Migrate(db); err != nil {
			log.Fatal("Failed to run migrations", "error", err)
		}
		log.Info("Database migrations completed successfully")
		return
	}

	srv, err := server.New(cfg, db, log)
	if err != nil {
		log.Fatal("Failed to initialize server", "error", err)
	}

	log.Info("Starting Appeal Case Manager",
		"host", cfg.Host,
		"port", cfg.Port,
		"env", cfg.Env,
	)

	if err := srv.Run(); err != nil {
		log.Fatal("Server failed to start", "error", err)
	}
}
