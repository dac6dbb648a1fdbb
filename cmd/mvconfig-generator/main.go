// Package main provides the CLI entrypoint for mvconfig-generator.
//
// mvconfig-generator reads the hypervisor configuration document (JSON or
// YAML) describing virtual machines, interrupt routing and memory regions,
// and writes the C source that places them in the .__config section:
//
//	mvconfig-generator [-log-level level] <input-path> <output-path>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"mvconfig-generator/internal/gen"
	"mvconfig-generator/internal/logging"
	"mvconfig-generator/internal/schema"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

const logLevelEnv = "MVCONFIG_LOG_LEVEL"

var errUsage = errors.New("expected <input-path> <output-path>")

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("mvconfig-generator", flag.ContinueOnError)
	fs.SetOutput(stderr)
	levelName := fs.String("log-level", "", "log level: debug, info, warn, error (default $MVCONFIG_LOG_LEVEL, else info)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: mvconfig-generator [flags] <input-path> <output-path>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if fs.NArg() < 2 {
		fmt.Fprintln(stderr, "mvconfig-generator:", errUsage)
		fs.Usage()

		return exitUsage
	}

	_ = godotenv.Load()

	if *levelName == "" {
		*levelName = os.Getenv(logLevelEnv)
	}

	level, err := logging.ParseLevel(*levelName)
	if err != nil {
		fmt.Fprintln(stderr, "mvconfig-generator:", err)
		return exitUsage
	}

	logger, err := logging.New(level)
	if err != nil {
		fmt.Fprintln(stderr, "mvconfig-generator:", err)
		return exitFailure
	}
	defer func() { _ = logger.Sync() }()

	registry, err := schema.Default()
	if err != nil {
		logger.Error("invalid schema", zap.Error(err))
		return exitFailure
	}

	input, outputPath := fs.Arg(0), fs.Arg(1)

	g := gen.NewGenerator(registry, gen.WithLogger(logger))
	if err := g.GenerateFile(input, outputPath); err != nil {
		logger.Error("generation failed", zap.String("input", input), zap.Error(err))
		return exitFailure
	}

	logger.Info("generate the config file success", zap.String("output", outputPath))

	return 0
}
