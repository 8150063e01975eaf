package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/skycast/iconmaker/internal/app"
	"github.com/skycast/iconmaker/internal/config"
)

func main() {
	defaults, err := config.DefaultConfigFromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	// Flags
	configPath := flag.String("config", "", "YAML config file; also configurable via "+config.EnvConfig)
	outDir := flag.String("out", defaults.OutDir, "output directory; also configurable via "+config.EnvOutDir)
	withICO := flag.Bool("ico", defaults.ICO, "also write a multi-resolution favicon.ico")
	sheetPath := flag.String("sheet", defaults.SheetPath, "also write a contact sheet of all icons to this path")
	showPreview := flag.Bool("preview", defaults.Preview, "show the contact sheet on the framebuffer (Linux console only)")
	debug := flag.Bool("debug", defaults.Debug, "enable debug logging to stderr; also configurable via "+config.EnvDebug)
	flag.Parse()

	cfg := defaults
	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			fmt.Println("config error:", err)
			os.Exit(2)
		}
		if err := cfg.ApplyEnv(); err != nil {
			fmt.Println("config error:", err)
			os.Exit(2)
		}
	}
	// Explicit flags win over environment values, which win over files.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.OutDir = *outDir
		case "ico":
			cfg.ICO = *withICO
		case "sheet":
			cfg.SheetPath = *sheetPath
		case "preview":
			cfg.Preview = *showPreview
		case "debug":
			cfg.Debug = *debug
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg)
	if cfg.Debug {
		a.Logger = app.NewConsoleLogger(os.Stderr)
		a.Logger.Infof("main", "debug logging enabled")
	}

	if _, err := a.Run(ctx); err != nil {
		fmt.Println("icon generation failed:", err)
		os.Exit(1)
	}
}
