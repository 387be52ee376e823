// ABOUTME: CLI entry point for campusbot
// ABOUTME: Parses flags, loads config, builds the bot, dispatches to serve/chat/ask

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mauromedda/campusbot-go/internal/bot"
	"github.com/mauromedda/campusbot-go/internal/config"
	cblog "github.com/mauromedda/campusbot-go/internal/log"
	"github.com/mauromedda/campusbot-go/internal/mode/chat"
	"github.com/mauromedda/campusbot-go/internal/mode/print"
	"github.com/mauromedda/campusbot-go/internal/server"
	"github.com/mauromedda/campusbot-go/internal/telemetry"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("campusbot %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run performs the full initialization sequence and dispatches to the
// selected mode. The first positional argument picks the mode; serve
// is the default.
func run(args cliArgs) error {
	if args.verbose {
		cblog.SetLevel(cblog.LevelDebug)
	}

	cfg, err := config.Load(args.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyCLIOverrides(cfg, args)

	metrics := telemetry.NewCollector()
	b, err := bot.New(cfg, metrics)
	if err != nil {
		return fmt.Errorf("building bot: %w", err)
	}
	b.Events.Subscribe(func(e bot.TurnEvent) {
		cblog.Debug("turn session=%s intent=%s confidence=%.2f fallback=%v took=%s",
			e.SessionID, e.Intent, e.Confidence, e.UsedFallback, e.Duration)
	})

	rest := args.remaining()
	mode := "serve"
	if len(rest) > 0 {
		mode = rest[0]
		rest = rest[1:]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch mode {
	case "serve":
		b.Start(ctx)
		return server.New(b, cfg, metrics).ListenAndServe(ctx)

	case "chat":
		b.Start(ctx)
		return chat.Run(chat.AppDeps{Bot: b, Version: version})

	case "ask":
		return print.Run(ctx, b, print.Config{
			OutputFormat: args.format,
			SessionID:    args.session,
		}, strings.Join(rest, " "))

	default:
		return fmt.Errorf("unknown mode %q (expected serve, chat, or ask)", mode)
	}
}

// applyCLIOverrides maps CLI flags over the loaded settings.
func applyCLIOverrides(cfg *config.Settings, args cliArgs) {
	if args.addr != "" {
		cfg.Addr = args.addr
	}
	if args.baseURL != "" {
		cfg.BaseURL = args.baseURL
	}
}
