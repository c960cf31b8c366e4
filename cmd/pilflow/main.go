// Command pilflow runs an HCL-defined image pipeline against an image file.
//
// Usage:
//
//	pilflow -in photo.jpg -out thumb.png -pipeline pipelines.hcl -name thumbnail
//
// The pipeline file declares named pipelines of registered operations; see
// the pipeline package for the format. Logging is configured through
// PILFLOW_LOG_LEVEL and PILFLOW_LOG_FORMAT.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/disintegration/imaging"

	"github.com/yanrucheng/pilflow"
	_ "github.com/yanrucheng/pilflow/ops" // Register built-in operations
	"github.com/yanrucheng/pilflow/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

type config struct {
	LogLevel  string `env:"PILFLOW_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"PILFLOW_LOG_FORMAT" envDefault:"text"`
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("pilflow %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pilflow: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		inPath       = flag.String("in", "", "input image file (required)")
		outPath      = flag.String("out", "", "output image file")
		pipelinePath = flag.String("pipeline", "pipeline.hcl", "pipeline definition file")
		pipelineName = flag.String("name", "", "pipeline to run (default: first in file)")
		dumpPath     = flag.String("dump", "", "write the final pack as JSON to this path")
	)
	flag.Parse()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	if *inPath == "" {
		return fmt.Errorf("-in is required")
	}

	file, err := pipeline.Load(*pipelinePath)
	if err != nil {
		return err
	}
	if len(file.Pipelines) == 0 {
		return fmt.Errorf("no pipelines defined in %s", *pipelinePath)
	}
	pl := file.Pipelines[0]
	if *pipelineName != "" {
		named, ok := file.Pipeline(*pipelineName)
		if !ok {
			return fmt.Errorf("pipeline %q not found in %s", *pipelineName, *pipelinePath)
		}
		pl = named
	}

	pack, err := pilflow.FromFile(*inPath, nil)
	if err != nil {
		return err
	}
	logger.Info("image loaded",
		"path", *inPath,
		"format", pack.Format,
		"width", pack.Width(),
		"height", pack.Height(),
	)

	result, err := pl.Run(logger, pack)
	if err != nil {
		return err
	}

	if *outPath != "" {
		if err := imaging.Save(result.Image, *outPath); err != nil {
			return fmt.Errorf("save output image: %w", err)
		}
		logger.Info("output written", "path", *outPath)
	}

	if *dumpPath != "" {
		dump, err := result.ToJSON()
		if err != nil {
			return err
		}
		if err := os.WriteFile(*dumpPath, []byte(dump), 0o644); err != nil {
			return fmt.Errorf("write pack dump: %w", err)
		}
		logger.Info("pack dump written", "path", *dumpPath)
	}

	return nil
}

// newLogger builds a slog.Logger for the configured level and format
// without touching the global default.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
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
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
