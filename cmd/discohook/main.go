package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/aleister1102/discohook"
	"github.com/aleister1102/discohook/internal/config"
	"github.com/aleister1102/discohook/internal/logger"
)

func main() {
	flags := parseFlags()

	cfg, err := config.LoadConfig(flags.ConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load configuration: %v", err)
	}
	if flags.Content != "" {
		cfg.Message.Content = flags.Content
	}
	if flags.LogLevel != "" {
		cfg.Log.LogLevel = flags.LogLevel
	}
	if err := config.ValidateConfig(cfg); err != nil {
		log.Fatalf("[FATAL] Invalid configuration: %v", err)
	}

	zlog, err := buildLogger(cfg.Log)
	if err != nil {
		log.Fatalf("[FATAL] Failed to build logger: %v", err)
	}

	webhook, err := buildWebhook(cfg, zlog)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Failed to build webhook")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	responses, err := webhook.Execute(ctx)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Webhook execution failed")
	}

	failures := 0
	for _, resp := range responses {
		if resp.OK() {
			zlog.Info().Str("url", resp.URL).Int("status_code", resp.StatusCode).Msg("Message delivered")
			continue
		}
		failures++
		zlog.Error().Str("url", resp.URL).Int("status_code", resp.StatusCode).Str("response_body", string(resp.Body)).Msg("Message delivery failed")
	}

	if failures == len(responses) {
		os.Exit(1)
	}
}

func buildLogger(cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := logger.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}
	format, err := logger.ParseLogFormat(cfg.LogFormat)
	if err != nil {
		return zerolog.Nop(), err
	}
	return logger.NewLoggerBuilder().
		WithLevel(level).
		WithFormat(format).
		WithFile(cfg.LogFile, cfg.MaxLogSizeMB, cfg.MaxLogBackups).
		Build()
}

func buildWebhook(cfg *config.Config, zlog zerolog.Logger) (*discohook.Webhook, error) {
	builder := discohook.NewWebhookBuilder(cfg.Webhook.WebhookURLs...).
		WithProxy(cfg.Webhook.Proxy).
		WithTimeout(time.Duration(cfg.Webhook.TimeoutSeconds) * time.Second).
		WithRateLimitRetry(cfg.Webhook.RateLimitRetry).
		WithLogger(zlog)

	if cfg.Message.Content != "" {
		builder.WithContent(cfg.Message.Content)
	}
	if cfg.Message.Username != "" {
		builder.WithUsername(cfg.Message.Username)
	}
	if cfg.Message.AvatarURL != "" {
		builder.WithAvatarURL(cfg.Message.AvatarURL)
	}
	if cfg.Message.TTS {
		builder.WithTTS(true)
	}

	for _, embedCfg := range cfg.Message.Embeds {
		embed, err := buildEmbed(embedCfg)
		if err != nil {
			return nil, err
		}
		builder.AddEmbed(embed)
	}

	for _, path := range cfg.Message.Attachments {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		builder.AddFile(content, filepath.Base(path))
	}

	return builder.Build()
}

func buildEmbed(cfg config.EmbedConfig) (discohook.Embed, error) {
	builder := discohook.NewEmbedBuilder().
		WithTitle(cfg.Title).
		WithDescription(cfg.Description).
		WithURL(cfg.URL)

	if cfg.Color != "" {
		builder.WithHexColor(cfg.Color)
	}
	if cfg.Timestamp {
		builder.WithTimestampNow()
	}
	if cfg.FooterText != "" {
		builder.WithFooter(cfg.FooterText, cfg.FooterIcon)
	}
	if cfg.AuthorName != "" {
		builder.WithAuthor(cfg.AuthorName, cfg.AuthorURL, cfg.AuthorIcon)
	}
	if cfg.ImageURL != "" {
		builder.WithImage(cfg.ImageURL)
	}
	if cfg.ThumbnailURL != "" {
		builder.WithThumbnail(cfg.ThumbnailURL)
	}
	for _, field := range cfg.Fields {
		builder.AddField(field.Name, field.Value, field.Inline)
	}

	if err := builder.Validate(); err != nil {
		return discohook.Embed{}, err
	}
	return builder.Build()
}
