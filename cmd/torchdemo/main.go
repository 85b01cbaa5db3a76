// Command torchdemo builds an interactive scene on a gg context, replays a
// scripted sequence of input events against it and saves the final frame.
//
//	torchdemo -script clicks.toml -output out.png
//
// Without -script the built-in demo script is used. Synthesized events
// (clicks, taps, focus changes) are logged to stderr.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"github.com/gogpu/torch"
)

//go:embed demo.toml
var defaultScript string

func main() {
	var (
		configPath = flag.String("config", "", "surface configuration file (TOML)")
		scriptPath = flag.String("script", "", "event script to replay (TOML)")
		output     = flag.String("output", "torchdemo.png", "output file")
		width      = flag.Int("width", 640, "image width")
		height     = flag.Int("height", 400, "image height")
		verbose    = flag.Bool("v", false, "log debug messages")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	torch.SetLogger(logger)

	if err := run(*configPath, *scriptPath, *output, *width, *height, logger); err != nil {
		logger.Error("torchdemo failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath, scriptPath, output string, width, height int, logger *slog.Logger) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid size %dx%d", width, height)
	}

	cfg := torch.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = torch.LoadConfig(configPath); err != nil {
			return err
		}
	}

	var (
		sc  *Script
		err error
	)
	if scriptPath != "" {
		sc, err = LoadScript(scriptPath)
	} else {
		sc, err = DecodeScript(defaultScript)
	}
	if err != nil {
		return err
	}

	dc := gg.NewContext(width, height)
	defer dc.Close()

	s := torch.NewSurface(dc, cfg.Options()...)
	if cfg.PixelDensity > 0 && cfg.PixelDensity != 1 {
		s.SetPixelDensity(cfg.PixelDensity)
	}
	sc.Background = background
	newScene(s, logger)

	if err := sc.Play(s); err != nil {
		return err
	}
	if err := dc.SavePNG(output); err != nil {
		return fmt.Errorf("save %s: %w", output, err)
	}
	logger.Info("frame saved", "path", output, "width", width, "height", height, "steps", len(sc.Events))
	return nil
}
