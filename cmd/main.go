package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/dgf281219-blip/metodo/config"
	"github.com/dgf281219-blip/metodo/routes"
	"github.com/dgf281219-blip/metodo/services"
)

func main() {
	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	if err := services.SeedCatalogs(db); err != nil {
		log.Fatalf("catalog seeding failed: %v", err)
	}

	r := routes.SetupRouter(cfg, db)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
