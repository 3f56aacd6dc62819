package main

import (
	"log"

	"github.com/pratima-dawadi/ArtistOps/internal/config"
	"github.com/pratima-dawadi/ArtistOps/internal/database"
	"github.com/pratima-dawadi/ArtistOps/internal/server"
)

func main() {
	cfg := config.Load()
	database.Init(cfg.DBDSN)

	addr := ":" + cfg.ServerPort
	log.Printf("ArtistOps listening on %s", addr)

	if err := server.NewRouter(cfg).Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
