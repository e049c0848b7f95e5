package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"support-triage-bot/config"
	"support-triage-bot/internal/agent"
	"support-triage-bot/internal/categorizer"
	chatDelivery "support-triage-bot/internal/chat/delivery/http"
	"support-triage-bot/internal/httpserver"
	"support-triage-bot/pkg/llm"
	"support-triage-bot/pkg/log"
	"support-triage-bot/pkg/prompt"
)

// @title       Support Triage Bot API
// @description AI-powered support request triage with multi-provider LLM backends.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Support Triage Bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Model registry and provider configs
	registry := llm.DefaultRegistry()

	providers := make(map[string]llm.Config)
	for _, p := range cfg.LLM.Providers {
		if !p.Enabled {
			continue
		}
		if !registry.Has(p.Name) {
			logger.Warnf(ctx, "Provider %q is not registered, skipping", p.Name)
			continue
		}
		providers[p.Name] = llm.Config{
			APIKey:    p.APIKey,
			Model:     p.Model,
			BaseURL:   p.BaseURL,
			ModelPath: p.ModelPath,
		}
	}

	timeout, err := time.ParseDuration(cfg.LLM.Timeout)
	if err != nil {
		logger.Warnf(ctx, "Invalid llm.timeout %q, using default: %v", cfg.LLM.Timeout, err)
		timeout = agent.DefaultTimeout
	}

	// 4. Categorizer and agent
	prompts := prompt.NewLoader(cfg.Assets.PromptsDir, ".prompt")
	templates := prompt.NewLoader(cfg.Assets.TemplatesDir, ".txt")

	cat := categorizer.New(prompts, templates, logger)

	triageAgent, err := agent.New(agent.Config{
		Registry:        registry,
		Providers:       providers,
		DefaultProvider: cfg.LLM.DefaultProvider,
		Categorizer:     cat,
		Prompts:         prompts,
		Logger:          logger,
		Timeout:         timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize agent: ", err)
		return
	}

	info := triageAgent.CurrentModelInfo()
	logger.Infof(ctx, "Active model: %s (%s)", info.Model, info.Provider)

	// 5. HTTP server
	chatHandler := chatDelivery.New(logger, triageAgent)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChatHandler: chatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
