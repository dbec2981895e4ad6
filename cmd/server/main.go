package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"salestracker/backend/internal/cache"
	"salestracker/backend/internal/config"
	"salestracker/backend/internal/httpapi"
	"salestracker/backend/internal/notify"
	"salestracker/backend/internal/service"
	"salestracker/backend/internal/store/local"
	pgstore "salestracker/backend/internal/store/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment as-is")
	}
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	closers := make([]func() error, 0, 2)

	var slots local.SlotStore
	if cfg.DatabaseURL != "" {
		pg, err := pgstore.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("postgres unavailable (%v) and DATABASE_URL is set; refusing to start with a file fallback", err)
		}
		slots = pg
		closers = append(closers, pg.Close)
		log.Println("slots: postgres")
	} else {
		fileSlots, err := local.NewFileSlots(cfg.DataDir)
		if err != nil {
			log.Fatalf("data dir %q: %v", cfg.DataDir, err)
		}
		slots = fileSlots
		log.Printf("slots: files under %s", cfg.DataDir)
	}

	repo, err := local.New(ctx, slots)
	if err != nil {
		log.Fatalf("load ledger: %v", err)
	}

	// First run: persist the default app name so the UI has something to show.
	if settings, err := repo.GetSettings(ctx); err == nil && settings.AppName == "" {
		settings.AppName = cfg.AppName
		if err := repo.SaveSettings(ctx, settings); err != nil {
			log.Printf("seed settings: %v", err)
		}
	}

	dashCache := cache.DashboardCache(cache.NoopDashboardCache{})
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedisDashboardCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := redisCache.Ping(ctx); err != nil {
			log.Printf("redis unavailable (%v), using noop cache", err)
		} else {
			dashCache = redisCache
			closers = append(closers, redisCache.Close)
			log.Println("cache: redis")
		}
	} else {
		log.Println("cache: noop")
	}

	feed := notify.NewFeed(50)
	svc := service.New(repo, dashCache, feed, time.Duration(cfg.DashboardTTLSeconds)*time.Second)
	api := httpapi.New(svc, cfg.AllowedOrigin)

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           api.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("sales tracker backend listening on %s", cfg.Address())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}

	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			log.Printf("close error: %v", err)
		}
	}

	log.Println("server stopped")
}
