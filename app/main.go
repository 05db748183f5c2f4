package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brasil-epg/grabber/app/api"
	"github.com/brasil-epg/grabber/app/cfg"
	"github.com/brasil-epg/grabber/app/config"
	"github.com/brasil-epg/grabber/app/fetcher"
	"github.com/brasil-epg/grabber/app/grabber"
	"github.com/brasil-epg/grabber/app/pipeline"
	"github.com/brasil-epg/grabber/app/sports"
	"github.com/brasil-epg/grabber/app/writer"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	slog.Info("Starting EPG grabber", "version", appCfg.Version, "days", appCfg.Days)

	store, err := config.NewStore(appCfg.ConfigDir)
	if err != nil {
		slog.Error("Failed to load service configurations", "dir", appCfg.ConfigDir, "error", err)
		os.Exit(1)
	}

	lookup := sports.Open(appCfg.SportsDB)

	client := fetcher.NewClient(appCfg.UserAgent, time.Duration(appCfg.Timeout)*time.Second)
	processor := pipeline.NewProcessor(store.Mappings(), lookup)

	g := grabber.NewGrabber(store, client, processor)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	records, serviceName := g.Run(ctx, grabber.Options{
		Days:      appCfg.Days,
		Services:  appCfg.Services,
		ChannelID: appCfg.ChannelID,
	})

	slog.Info("Grab run finished", "programs", len(records))

	path, err := writer.NewWriter().Run(records, serviceName, appCfg.Output)
	if err != nil {
		slog.Error("Failed to write guide", "error", err)
		os.Exit(1)
	}
	slog.Info("Guide written", "path", path)

	if !appCfg.Serve {
		return
	}

	handler := api.NewHandler(path, len(records), time.Now())
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
		slog.Info("Starting HTTP server", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Received shutdown signal")
	case err := <-serverErrChan:
		slog.Error("HTTP server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}
}
