// Package main provides the CLI entrypoint for defconfig-merger.
//
// defconfig-merger overlays a board defconfig onto the hypervisor defaults
// and writes auto.conf and config.h into the output directory:
//
//	defconfig-merger [-log-level level] <defconfig> <output-dir>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"mvconfig-generator/internal/defconfig"
	"mvconfig-generator/internal/logging"
	"mvconfig-generator/internal/output"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

const logLevelEnv = "MVCONFIG_LOG_LEVEL"

var errUsage = errors.New("expected <defconfig> <output-dir>")

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("defconfig-merger", flag.ContinueOnError)
	fs.SetOutput(stderr)
	levelName := fs.String("log-level", "", "log level: debug, info, warn, error (default $MVCONFIG_LOG_LEVEL, else info)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: defconfig-merger [flags] <defconfig> <output-dir>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if fs.NArg() < 2 {
		fmt.Fprintln(stderr, "defconfig-merger:", errUsage)
		fs.Usage()

		return exitUsage
	}

	_ = godotenv.Load()

	if *levelName == "" {
		*levelName = os.Getenv(logLevelEnv)
	}

	level, err := logging.ParseLevel(*levelName)
	if err != nil {
		fmt.Fprintln(stderr, "defconfig-merger:", err)
		return exitUsage
	}

	logger, err := logging.New(level)
	if err != nil {
		fmt.Fprintln(stderr, "defconfig-merger:", err)
		return exitFailure
	}
	defer func() { _ = logger.Sync() }()

	input, outDir := fs.Arg(0), fs.Arg(1)

	overrides, err := defconfig.ParseFile(input)
	if err != nil {
		logger.Error("reading defconfig", zap.Error(err))
		return exitFailure
	}

	cfg := defconfig.Resolve(defconfig.Defaults(), overrides)
	for _, e := range cfg.Entries() {
		logger.Debug("config", zap.String("key", e.Key), zap.String("value", e.Value),
			zap.Bool("explicit", cfg.Explicit(e.Key)))
	}

	files, err := defconfig.Files(cfg)
	if err != nil {
		logger.Error("rendering config", zap.Error(err))
		return exitFailure
	}

	if err := output.WriteFiles(files, outDir); err != nil {
		logger.Error("writing config", zap.String("dir", outDir), zap.Error(err))
		return exitFailure
	}

	logger.Info("config generated", zap.String("dir", outDir), zap.Int("entries", len(cfg.Entries())))

	return 0
}
