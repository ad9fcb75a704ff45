package main

import (
	"log"

	"osrl-backend/internal/catalog"
	"osrl-backend/internal/shared/config"
	"osrl-backend/internal/shared/server"
)

func main() {
	if err := catalog.Validate(); err != nil {
		log.Fatalf("catalog validation failed: %v", err)
	}

	cfg := config.Load()
	r := server.NewRouter(cfg)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
