package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alejandrodnm/hedgecalc/config"
	"github.com/alejandrodnm/hedgecalc/internal/adapters/notify"
	"github.com/alejandrodnm/hedgecalc/internal/application/calculator"
	"github.com/alejandrodnm/hedgecalc/internal/domain"
	"github.com/alejandrodnm/hedgecalc/internal/ports"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	primaryOdds := flag.String("primary-odds", "", "primary leg decimal odds (>= 1.01)")
	primaryStake := flag.String("primary-stake", "", "primary leg stake (> 0)")
	primaryRebate := flag.String("primary-rebate", "", "primary leg rebate in percent (0-100)")
	secondaryOdds := flag.String("secondary-odds", "", "hedge leg decimal odds (>= 1.01)")
	secondaryRebate := flag.String("secondary-rebate", "", "hedge leg rebate in percent (0-100)")
	interactive := flag.Bool("interactive", false, "edit fields line by line and recalculate on demand")
	jsonOut := flag.Bool("json", false, "print the calculation as JSON instead of tables")
	table := flag.Bool("table", false, "print full tables; -table=false forces the compact summary (overrides config)")
	locale := flag.String("locale", "", "number formatting locale (overrides config)")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	if *locale != "" {
		cfg.Display.Locale = *locale
	}
	if flagWasSet(flag.CommandLine, "table") {
		cfg.Display.Table = *table
	}
	setupLogger(cfg.Log)

	sessCfg, err := cfg.SessionConfig()
	if err != nil {
		slog.Error("invalid sensitivity window", "err", err)
		os.Exit(1)
	}
	flagValues := map[string]string{
		domain.FieldPrimaryOdds:     *primaryOdds,
		domain.FieldPrimaryStake:    *primaryStake,
		domain.FieldPrimaryRebate:   *primaryRebate,
		domain.FieldSecondaryOdds:   *secondaryOdds,
		domain.FieldSecondaryRebate: *secondaryRebate,
	}
	for name, v := range flagValues {
		if v != "" {
			sessCfg.Defaults.Set(name, v)
		}
	}

	slog.Debug("hedgecalc starting",
		"config", *configPath,
		"interactive", *interactive,
		"locale", cfg.Display.Locale,
		"window_steps", sessCfg.Window.Steps,
		"window_step", sessCfg.Window.Step.String(),
	)

	var renderer ports.Renderer = notify.NewConsole(cfg.Display.Locale, cfg.Display.Table)
	var bannerOut io.Writer = os.Stdout
	if *jsonOut {
		// stdout queda solo para el documento JSON
		renderer = notify.NewJSON()
		bannerOut = os.Stderr
	}
	banner := notify.NewBannerWriter(bannerOut, cfg.BannerTTL())
	defer banner.Close()

	session := calculator.NewSession(sessCfg, renderer, banner)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *interactive {
		if err := runInteractive(ctx, session, os.Stdin, os.Stdout); err != nil {
			slog.Error("interactive session failed", "err", err)
			os.Exit(1)
		}
		return
	}

	if _, err := session.Calculate(ctx); err != nil {
		slog.Error("calculation failed", "err", err)
		os.Exit(1)
	}
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// flagWasSet indica si name se pasó explícitamente, para distinguir
// "-table=false" de no haber pasado el flag.
func flagWasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
