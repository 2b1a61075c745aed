package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"messagehub/backend/internal/api/handler"
	"messagehub/backend/internal/config"
	"messagehub/backend/internal/storage"
)

func main() {
	log.Println("Starting Message Hub relay...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	// The store is in-memory and process-lifetime only. A multi-worker
	// deployment would need a shared, externally-synchronized store behind
	// the same interface.
	store := storage.NewMemoryStore()

	r := gin.Default()
	h := handler.NewHandler(store)

	r.POST("/webhook/n8n", h.ReceiveWebhook)
	r.GET("/messages/by-phone", h.MessagesByPhone)
	r.GET("/healthz", h.Health)
	r.GET("/stats", h.Stats)

	server := &http.Server{
		Addr:           cfg.ListenAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Relay listening on %s", cfg.ListenAddr)
	log.Fatal(server.ListenAndServe())
}
