// Package main provides the CLI entry point for storeshots.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/storeshots/pkg/adapters/ggrenderer"
	"github.com/user/storeshots/pkg/adapters/logger"
	"github.com/user/storeshots/pkg/adapters/osfilesystem"
	"github.com/user/storeshots/pkg/config"
	"github.com/user/storeshots/pkg/depcheck"
	"github.com/user/storeshots/pkg/orchestrator"
	"github.com/user/storeshots/pkg/ports"
	"github.com/user/storeshots/pkg/stages/compose"
	"github.com/user/storeshots/pkg/summarizer"
)

var version = "dev"

// newRenderer builds the image backend shared by the startup check and the batch.
var newRenderer = func() ports.Renderer { return ggrenderer.New() }

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:            "storeshots",
		Usage:           l10n.T("Resize store listing screenshots to a fixed canvas"),
		Description:     l10n.T("storeshots fits each screenshot onto a fixed-size canvas without cropping and fills the margins with a theme background."),
		Version:         version,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    l10n.T("YAML file overriding the built-in settings"),
				Category: l10n.T("Configuration"),
			},
			&cli.StringFlag{
				Name:     "summary",
				Aliases:  []string{"s"},
				Usage:    l10n.T("Write a Markdown summary of the run to this file"),
				Category: l10n.T("Output"),
			},
			&cli.StringFlag{
				Name:     "log-level",
				Aliases:  []string{"l"},
				Value:    "info",
				Usage:    l10n.T("Log level (debug, info, warn, error)"),
				Category: l10n.T("Logging"),
			},
			&cli.BoolFlag{
				Name:     "quiet",
				Aliases:  []string{"q"},
				Usage:    l10n.T("Suppress all log output"),
				Category: l10n.T("Logging"),
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
	}

	log.Info("Screenshot Resizer for Chrome Web Store")
	log.Info(strings.Repeat("=", 50))

	renderer := newRenderer()

	// Nothing on disk is read or written until the imaging stack is known to work.
	report, err := depcheck.New(renderer).Check()
	if err != nil {
		log.Error("Imaging library is not available: %v", err)
		log.Error(depcheck.InstallHint)
		return cli.Exit("", 1)
	}
	log.Info("✓ imaging version: %s", report.Version)

	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		cfg, err = config.LoadFromFile(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	fs := osfilesystem.New()
	orchConfig := cfg.ToOrchestratorConfig()
	composeStage := compose.NewStage(fs, renderer, log, orchConfig.Target)
	orch := orchestrator.New(composeStage, fs, log)

	result, err := orch.Run(ctx, orchConfig)
	if err != nil {
		return err
	}

	if path := c.String("summary"); path != "" {
		if err := writeSummary(fs, path, cfg, result); err != nil {
			log.Warn("Failed to write summary: %s", err)
		} else {
			log.Info("Summary saved to %s", path)
		}
	}

	return nil
}

func writeSummary(fs ports.FileSystem, path string, cfg config.Config, result orchestrator.RunResult) error {
	summary := summarizer.NewBuilder().
		WithSettings(summarizer.Settings{
			TargetWidth:     cfg.TargetWidth,
			TargetHeight:    cfg.TargetHeight,
			InputDir:        cfg.InputDir,
			OutputDir:       cfg.OutputDir,
			DarkBackground:  cfg.Theme.DarkBackground,
			LightBackground: cfg.Theme.LightBackground,
		}).
		WithRunResult(result, cfg.Screenshots).
		Build()

	return summarizer.NewWriter(summarizer.NewMarkdownFormatter(), fs).Write(path, summary)
}
