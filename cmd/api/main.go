package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"
	"github.com/spf13/pflag"

	"psychoai/config"
	_ "psychoai/docs" // Swagger docs
	"psychoai/internal/conversation"
	convHTTP "psychoai/internal/conversation/delivery/http"
	tgDelivery "psychoai/internal/conversation/delivery/telegram"
	openaiRepo "psychoai/internal/conversation/repository/openai"
	"psychoai/internal/conversation/usecase"
	"psychoai/internal/demo"
	"psychoai/internal/httpserver"
	"psychoai/pkg/log"
	"psychoai/pkg/telegram"
)

const shutdownTimeout = 30 * time.Second

// @title       PsychoAI Relay API
// @description Telegram to OpenAI Assistants relay with per-user conversation threads.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	flagSet := pflag.NewFlagSet("psychoai", pflag.ContinueOnError)
	configPath := flagSet.StringP("config", "c", "", "path to config file (default: search config.yaml)")
	envFile := flagSet.String("env-file", ".env", "dotenv file loaded before configuration")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// 1. Configuration
	dotenvErr := godotenv.Load(*envFile)
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
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

	if dotenvErr != nil {
		logger.Infof(ctx, "No %s file loaded, using environment variables", *envFile)
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "PsychoAI stopped with error: ", err)
		stop()
		os.Exit(1)
	}
	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger.Info(ctx, "Starting PsychoAI...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Telegram mode: %s, OpenAI model: %s", cfg.Telegram.Mode, cfg.OpenAI.Model)

	// 3. OpenAI Assistants client and conversation domain
	openaiCfg := openai.DefaultConfig(cfg.OpenAI.APIKey)
	openaiCfg.HTTPClient = &http.Client{Timeout: cfg.OpenAI.Timeout}
	if cfg.OpenAI.BaseURL != "" {
		openaiCfg.BaseURL = cfg.OpenAI.BaseURL
	}
	openaiClient := openai.NewClientWithConfig(openaiCfg)

	convUC := usecase.New(logger, openaiRepo.New(openaiClient, logger), usecase.Config{
		Agent: conversation.AgentDefinition{
			Name:         cfg.OpenAI.AssistantName,
			Instructions: cfg.OpenAI.Instructions,
			Model:        cfg.OpenAI.Model,
		},
		PollInterval: cfg.Conversation.PollInterval,
		MaxWait:      cfg.Conversation.MaxWait,
	})

	if _, err := convUC.CreateAgent(ctx); err != nil {
		return err
	}
	// Cleanup must still reach the API after the signal cancelled ctx.
	defer func() {
		cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		convUC.Cleanup(cleanupCtx)
	}()

	// 4. Telegram delivery
	bot := telegram.NewBot(cfg.Telegram.BotToken)
	tgHandler := tgDelivery.New(logger, convUC, bot, tgDelivery.Config{
		WebhookSecret:   cfg.Telegram.WebhookSecret,
		RateLimitPerMin: cfg.Telegram.RateLimitPerMin,
		PollTimeout:     cfg.Telegram.PollTimeout,
	})
	defer func() {
		waitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := tgHandler.Wait(waitCtx); err != nil {
			logger.Warnf(waitCtx, "Telegram messages still in flight at shutdown: %v", err)
		}
	}()

	var webhookHandler tgDelivery.Handler
	pollDone := make(chan struct{})
	switch cfg.Telegram.Mode {
	case config.TelegramModeWebhook:
		close(pollDone)
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			publicURL, err := newNgrokDetector(cfg.Telegram.NgrokAPIURL).PublicURL(ctx)
			if err != nil {
				return fmt.Errorf("detect webhook url: %w", err)
			}
			webhookURL = publicURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
		if err := bot.SetWebhook(ctx, webhookURL, cfg.Telegram.WebhookSecret); err != nil {
			return err
		}
		logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
		webhookHandler = tgHandler
	default:
		go func() {
			defer close(pollDone)
			if err := tgHandler.StartPolling(ctx); err != nil {
				logger.Errorf(ctx, "Telegram polling failed: %v", err)
			}
		}()
	}
	defer func() {
		cancel()
		<-pollDone
	}()

	// 5. Optional surfaces
	var sandboxHandler convHTTP.Handler
	if cfg.Sandbox.Enabled {
		sandboxHandler = convHTTP.New(logger, convUC)
	}
	demoHandler := demo.New(logger, demo.Config{
		Delay:   cfg.Demo.Delay,
		Workers: cfg.Demo.Workers,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		SandboxAPIKey:   cfg.Sandbox.APIKey,
		TelegramHandler: webhookHandler,
		SandboxHandler:  sandboxHandler,
		DemoHandler:     demoHandler,
	})
	if err != nil {
		return fmt.Errorf("http server: %w", err)
	}

	// 7. Run until signalled
	return httpServer.Run(ctx)
}
