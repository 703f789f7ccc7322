package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"museum-guide/backend/internal/api"
	"museum-guide/backend/internal/config"
	"museum-guide/backend/internal/llm"
	"museum-guide/backend/internal/service"
)

// App holds the wired HTTP server and the state worth reporting at startup.
type App struct {
	Server     *http.Server
	Profile    llm.Profile
	Credential llm.Credential
	Models     *service.ModelService
}

// NewApp wires every dependency from an already validated configuration.
func NewApp(cfg *config.Config) (*App, error) {
	profile := cfg.Profile()
	credential, rule := cfg.Credential()
	if rule != config.RuleAccepted && rule != config.RuleMissing {
		slog.Warn("API key looks like a placeholder, treating it as not configured", "env", profile.KeyEnv, "rule", rule)
	}

	// Only a configured credential gets a provider; the chat service treats a
	// nil provider as mock mode.
	var provider llm.CompletionProvider
	if credential.IsConfigured() {
		var httpClient *http.Client
		if cfg.UpstreamTimeout > 0 {
			httpClient = &http.Client{Timeout: cfg.UpstreamTimeout}
		}
		provider = llm.NewOpenAIProvider(profile.BaseURL, credential, httpClient)
	}

	models := service.NewModelService(profile, credential)
	if !profile.HasModel(models.Current()) {
		return nil, fmt.Errorf("default model %q is not in the %s registry", models.Current(), profile.DisplayName)
	}

	chatService := service.NewChatService(models, provider, service.NewFallbackResponder(profile.DisplayName))
	statusService := service.NewStatusService(models, profile, credential)

	router := api.NewRouter(
		api.NewChatHandler(chatService),
		api.NewModelHandler(models),
		api.NewStatusHandler(statusService),
		api.RouterOptions{AllowedOrigins: cfg.AllowedOrigins(), StaticDir: cfg.StaticDir},
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Completion calls have no deadline of their own.
		IdleTimeout:       120 * time.Second,
	}

	return &App{Server: server, Profile: profile, Credential: credential, Models: models}, nil
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)
	logConfigSource(cfg)

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	app.logStartup()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", app.Server.Addr)
		serverErr <- app.Server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return 1
		}
	case sig := <-quit:
		slog.Info("Shutting down server", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := app.Server.Shutdown(ctx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			return 1
		}
	}

	slog.Info("Server stopped")
	return 0
}

func (a *App) logStartup() {
	registry := a.Models.Registry()
	for _, name := range slices.Sorted(maps.Keys(registry)) {
		slog.Info("Model available", "provider", a.Profile.DisplayName, "name", name, "id", registry[name])
	}

	if !a.Credential.IsConfigured() {
		slog.Warn("No valid API key found, using mock responses",
			"provider", a.Profile.DisplayName,
			"env", a.Profile.KeyEnv,
		)
		return
	}
	slog.Info("API key found, real AI responses enabled", "provider", a.Profile.DisplayName, "model", a.Models.Current())
}

func logConfigSource(cfg *config.Config) {
	if cfg.ConfigFile != "" {
		slog.Info("Successfully loaded configuration from file.", "file", cfg.ConfigFile)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
