package main

import (
	"CareLedger/cache"
	"CareLedger/config"
	"CareLedger/database"
	"CareLedger/routes"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
)

func main() {
	// Monetary fields serialize as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	config, err := loadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.InitDB(context.Background(), config.DBURL)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := database.InitializeRedis(); err != nil {
		log.Fatalf("failed to initialize Redis client: %v", err)
	}

	cache, err := cache.NewCache()
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}

	handler := routes.SetupRoutes(cache, config, db)

	srv := &http.Server{
		Addr:           ":8930",
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		log.Println("Starting server on :8930")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Println("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %+v", err)
	}

	wg.Wait()
	log.Println("Server exited gracefully")
}

// loadConfig loads configuration from environment variables.
func loadConfig() (*config.AppConfig, error) {
	dbURL, err := database.LoadEnvConfig()
	if err != nil {
		return nil, err
	}

	redisAddress := os.Getenv("REDIS_URL")
	if redisAddress == "" {
		return nil, errors.New("missing REDIS_URL environment variable")
	}

	bearerToken := os.Getenv("BEARER_TOKEN")
	if bearerToken == "" {
		return nil, errors.New("missing BEARER_TOKEN environment variable")
	}

	// Day of month when monthly fees fall due; defaults to the 10th
	billingDueDay := 10
	if value := os.Getenv("BILLING_DUE_DAY"); value != "" {
		day, err := strconv.Atoi(value)
		if err != nil || day < 1 || day > 31 {
			return nil, errors.New("BILLING_DUE_DAY must be a day of the month (1-31)")
		}
		billingDueDay = day
	}

	allowedOrigins := []string{"http://localhost:3000"}
	if value := os.Getenv("ALLOWED_ORIGINS"); value != "" {
		allowedOrigins = strings.Split(value, ",")
	}

	return &config.AppConfig{
		DBURL:          dbURL,
		RedisAddress:   redisAddress,
		BearerToken:    bearerToken,
		BillingDueDay:  billingDueDay,
		AllowedOrigins: allowedOrigins,
	}, nil
}
