package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpLayer "debt-assistant/http"
	"debt-assistant/repository"
	"debt-assistant/service"
)

func main() {
	var dataset *repository.CountryDataset
	if path := os.Getenv("DEBT_DATA_FILE"); path != "" {
		loaded, err := repository.LoadDatasetCSV(path)
		if err != nil {
			// Data-dependent intents will apologize; the rest keeps serving.
			log.Printf("Warning: dataset unavailable: %v", err)
		} else {
			dataset = loaded
			log.Printf("Loaded debt data from %s (%d countries)", path, len(dataset.Countries()))
		}
	} else {
		dataset = repository.BuiltinDataset()
	}

	var cache repository.CacheRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = repository.NewRedisCache(addr)
	} else {
		cache = repository.NewMemoryCache()
	}

	chatService := service.NewChatService(dataset, cache, service.NewOpenAIGenerator())
	chatLog := repository.NewChatLogMemory()

	chatHandler := httpLayer.NewChatHandler(chatService, chatLog)
	historyHandler := httpLayer.NewHistoryHandler(chatLog)

	rateLimiter := httpLayer.NewRateLimiter(10, time.Minute, nil)

	mux := http.NewServeMux()
	mux.Handle(
		"/api/chat",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(chatHandler.Chat),
		),
	)
	mux.Handle("/api/history", http.HandlerFunc(historyHandler.History))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 Debt assistant listening on http://localhost:%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
