package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mvolkov/seo-tracker/app/api"
	"github.com/mvolkov/seo-tracker/app/cfg"
	"github.com/mvolkov/seo-tracker/app/database"
	"github.com/mvolkov/seo-tracker/app/importer"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load configuration from environment variables and command-line flags
	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	log.Printf("Starting SEO Tracker (version %s)...", appCfg.Version)

	// Database connection
	log.Printf("Opening database at %s...", appCfg.DBPath)
	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}
	log.Printf("Database ready (schema version %d, dirty: %v)", version, dirty)

	// Schema matcher, optionally extended with user-supplied aliases
	matcher := importer.NewMatcher()
	if appCfg.AliasesFile != "" {
		aliases, err := importer.LoadAliases(appCfg.AliasesFile)
		if err != nil {
			log.Fatal("Failed to load aliases: ", err)
		}
		matcher.ApplyAliases(aliases)
		log.Printf("Loaded column/sheet aliases from %s", appCfg.AliasesFile)
	}

	// Repositories and import pipeline
	keywordRepo := database.NewMetricRepository(db, importer.TableKeywords)
	pageRepo := database.NewMetricRepository(db, importer.TablePages)
	noteRepo := database.NewNoteRepository(db)
	linkRepo := database.NewLinkRepository(db)
	imp := importer.NewImporter(matcher, keywordRepo, pageRepo)

	// One-shot import mode: import the file and exit
	if appCfg.ImportFile != "" {
		runImport(imp, appCfg.ImportFile, appCfg.Period)
		return
	}

	// Initialize HTTP server
	apiHandler := api.NewHandler(keywordRepo, pageRepo, noteRepo, linkRepo, imp)
	server := api.NewServer(apiHandler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on port %s", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("SEO Tracker started successfully!")

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
	case err := <-serverErrChan:
		log.Printf("Server error: %v", err)
	}

	// Graceful shutdown
	log.Println("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped")
	}

	log.Println("SEO Tracker shutdown complete")
}

// runImport performs a single file import and reports the outcome.
func runImport(imp *importer.Importer, path, period string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal("Failed to read import file: ", err)
	}

	report, err := imp.Run(filepath.Base(path), data, period, time.Now().Format("Jan"))
	if err != nil {
		log.Fatal("Import failed: ", err)
	}

	log.Printf("Import complete: period %s, %d rows saved", report.Period, report.SavedTotal())
	if report.Keywords != nil {
		log.Printf("  keywords: %d/%d rows from %q (%d warnings)",
			report.Keywords.RowsSaved, report.Keywords.RowsRead, report.Keywords.SourceName, len(report.Keywords.Warnings))
	}
	if report.Pages != nil {
		log.Printf("  pages: %d/%d rows from %q (%d warnings)",
			report.Pages.RowsSaved, report.Pages.RowsRead, report.Pages.SourceName, len(report.Pages.Warnings))
	}
}
