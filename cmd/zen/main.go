// Package main is the zen command line front end. It lists, enables,
// disables, creates and deletes the current user's autostart entries.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Guliveer/zen/internal/autostart"
	"github.com/Guliveer/zen/internal/config"
	"github.com/Guliveer/zen/internal/platform"
	"github.com/Guliveer/zen/internal/startup"
)

var (
	// version is set at build time via -ldflags.
	version = "dev"

	configPath   = flag.String("config", "", "Path to configuration file (default: auto-discover)")
	platformFlag = flag.String("platform", "", "Platform adapter: auto, linux, windows")
	dirFlag      = flag.String("dir", "", "Override the autostart directory")
	logLevel     = flag.String("log-level", "", "Log level: debug, info, warn, error")
)

// exitUnsupported lets scripts tell "not supported here" apart from failures.
const exitUnsupported = 3

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}
	if args[0] == "version" {
		fmt.Printf("zen %s\n", version)
		return
	}

	var paths []string
	if *configPath != "" {
		paths = append(paths, *configPath)
	}
	cfg, err := config.LoadLayered(config.CLIOverrides{
		Platform:     *platformFlag,
		AutostartDir: *dirFlag,
		LogLevel:     *logLevel,
	}, paths...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)
	defer logger.Sync()

	mgr, err := newManager(cfg, afero.NewOsFs(), logger)
	if err != nil {
		logger.Fatal("Failed to resolve autostart storage", zap.Error(err))
	}

	a := &app{mgr: mgr, cfg: cfg, out: os.Stdout}
	if err := a.run(args); err != nil {
		fmt.Fprintf(os.Stderr, "zen: %v\n", err)
		if errors.Is(err, autostart.ErrUnsupported) {
			os.Exit(exitUnsupported)
		}
		os.Exit(1)
	}
}

// newManager picks the adapter for the configured platform once, up front.
func newManager(cfg *config.Config, fsys afero.Fs, logger *zap.Logger) (*startup.Manager, error) {
	goos := platform.Normalize(cfg.Platform)

	var dirs platform.Dirs
	if cfg.Paths.AutostartDir == "" {
		d, err := platform.ResolveDirs(goos)
		if err != nil {
			return nil, err
		}
		dirs = d
	}

	adapter := autostart.New(goos, autostart.Options{
		FS:     fsys,
		Dirs:   dirs,
		Dir:    cfg.Paths.AutostartDir,
		Logger: logger,
	})
	logger.Debug("Selected autostart adapter",
		zap.String("platform", goos),
		zap.String("adapter", adapter.Name()),
		zap.String("dir", adapter.Dir()))

	return startup.New(adapter, fsys, logger), nil
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: zen [flags] <command> [args]

Commands:
  list [-json]                          List autostart entries
  enable <id>                           Enable an entry
  disable <id>                          Disable an entry
  create -name N -exec CMD [-comment C] Create a new entry
  delete <id>                           Delete an entry
  info                                  Show host and storage details
  config init <path>                    Write the effective configuration
  version                               Show version and exit

Flags:
`)
	flag.PrintDefaults()
}

// initLogger creates a zap logger based on the configuration.
// It outputs to stderr (human-readable) and optionally a JSON log file.
func initLogger(cfg *config.Config) *zap.Logger {
	var level zapcore.Level
	switch cfg.Logging.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.WarnLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)

	cores := []zapcore.Core{consoleCore}

	if cfg.Logging.File != "" {
		file, err := os.OpenFile(cfg.Logging.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
		if err == nil {
			fileCore := zapcore.NewCore(
				zapcore.NewJSONEncoder(encoderConfig),
				zapcore.AddSync(file),
				level,
			)
			cores = append(cores, fileCore)
		}
	}

	return zap.New(zapcore.NewTee(cores...))
}
