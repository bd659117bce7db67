// @title Lab Backend API
// @version 1.0
// @description REST backend for the Lab coding-practice dashboard.

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"lab_backend/internal/app"
	"lab_backend/internal/config"
	"lab_backend/pkg/configwatcher"
	"lab_backend/pkg/logger"
	"log"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration finished, exiting")
		return
	}

	// hot-reload the tunables that are safe to change at runtime
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		cfg.Sheet = newCfg.Sheet
		cfg.RateLimit = newCfg.RateLimit
		cfg.CORS = newCfg.CORS
	})

	application.Run()
}
