package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rohits-web03/postdev/internal/api"
	"github.com/rohits-web03/postdev/internal/api/services"
	"github.com/rohits-web03/postdev/internal/config"
	"github.com/rohits-web03/postdev/internal/repositories"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	// Connect to database
	db, err := repositories.ConnectDatabase(cfg.DB_URL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	var archiver services.Archiver
	if cfg.R2.Enabled() {
		archiver = repositories.NewR2Archiver(cfg.R2)
	} else {
		log.Println("R2 is not configured, deleted posts will not be archived")
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.SetupRouter(cfg, db, archiver),
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Starting PostDev server on port: %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("could not listen on port %s: %w", cfg.Port, err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("Server stopped")
}
