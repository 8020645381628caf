package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prismlab/prism/app/api"
	"github.com/prismlab/prism/app/cfg"
	"github.com/prismlab/prism/app/content"
	"github.com/prismlab/prism/app/generator"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if appCfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	log.Printf("Generating feeds for languages %v from %s", appCfg.Languages, appCfg.ContentDir)

	loader := content.NewLoader(appCfg.ContentDir)
	gen := generator.NewGenerator(loader)

	for _, lang := range appCfg.Languages {
		if err := gen.Run(lang); err != nil {
			log.Fatalf("Feed generation failed for language %s: %v", lang, err)
		}
		log.Printf("Generated feeds for language %s", lang)
	}

	log.Printf("Feed generation complete, output in %s", appCfg.OutDir)

	if !appCfg.Serve {
		return
	}

	// Preview server for the generated output
	handler := api.NewHandler(appCfg.OutDir, appCfg.Version)
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Serving generated feeds on port %s", appCfg.Port)
		log.Printf("  Feeds:         http://localhost:%s/rss/feed.xml", appCfg.Port)
		log.Printf("  Feed index:    http://localhost:%s/feeds", appCfg.Port)
		log.Printf("  Health check:  http://localhost:%s/health", appCfg.Port)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
	case err := <-serverErrChan:
		log.Printf("Server error: %v", err)
	}

	log.Println("Shutting down preview server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Shutdown complete")
}
