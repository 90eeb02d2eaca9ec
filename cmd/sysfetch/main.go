package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/monify-labs/sysfetch/internal/config"
	"github.com/monify-labs/sysfetch/internal/gpu"
	"github.com/monify-labs/sysfetch/internal/output"
	"github.com/monify-labs/sysfetch/internal/platform"
	"github.com/monify-labs/sysfetch/internal/report"
)

// options holds the parsed command line
type options struct {
	all         bool
	resetConfig bool
	padding     int
	configFile  string
	clearCache  bool
	json        bool
	noColor     bool
	debug       bool
	version     bool
	help        bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newFlagSet(opts *options) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(config.AppName, pflag.ContinueOnError)
	flagSet.BoolVarP(&opts.all, "all", "a", false, "show every info line, ignoring the config file")
	flagSet.BoolVar(&opts.resetConfig, "reset-config", false, "overwrite the config file with defaults")
	flagSet.IntVarP(&opts.padding, "padding", "p", 1, "spaces between the logo and the info column")
	flagSet.StringVarP(&opts.configFile, "config-file", "c", "", "path to the config file (default: "+config.DefaultPath()+")")
	flagSet.BoolVar(&opts.clearCache, "clear-cache", false, "rebuild the GPU name cache")
	flagSet.BoolVar(&opts.json, "json", false, "print the report as JSON")
	flagSet.BoolVar(&opts.noColor, "no-color", false, "disable colours")
	flagSet.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flagSet.BoolVarP(&opts.version, "version", "v", false, "show version information")
	flagSet.BoolVarP(&opts.help, "help", "h", false, "show this help message")
	return flagSet
}

func parseFlags(args []string, stderr io.Writer) (*options, *pflag.FlagSet, error) {
	opts := &options{}
	flagSet := newFlagSet(opts)
	flagSet.SetOutput(stderr)
	if err := flagSet.Parse(args); err != nil {
		return nil, flagSet, err
	}
	if flagSet.NArg() > 0 {
		return nil, flagSet, fmt.Errorf("unexpected argument: %s", flagSet.Arg(0))
	}
	if opts.configFile == "" {
		opts.configFile = config.DefaultPath()
	}
	return opts, flagSet, nil
}

func newLogger(stderr io.Writer, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, flagSet, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage(stdout, flagSet)
			return nil
		}
		return err
	}

	if opts.help {
		printUsage(stdout, flagSet)
		return nil
	}
	if opts.version {
		showVersion(stdout)
		return nil
	}
	if opts.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logger := newLogger(stderr, opts.debug || config.IsDebugMode())

	if opts.resetConfig {
		if err := config.Reset(opts.configFile); err != nil {
			return fmt.Errorf("failed to reset config: %w", err)
		}
		fmt.Fprintf(stderr, "Config reset to defaults at %s\n", opts.configFile)
	}

	var cfg *config.Config
	if opts.all {
		cfg = config.All()
	} else {
		cfg = config.Load(opts.configFile, logger.WithField("component", "config"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	host := platform.New()
	gpuLog := logger.WithField("component", "gpu")
	store := gpu.NewStore(gpu.CachePath(config.CacheDir()), host, gpu.NewHardwareEnumerator(gpuLog))
	resolver := gpu.NewResolver(host, store, gpu.NewDatabase(), gpuLog)

	collector := report.NewCollector(host, resolver, cfg.Display, logger.WithField("component", "report"))
	snapshot := collector.Collect(ctx, opts.clearCache)

	var printer output.Printer = output.NewLogoPrinter(stdout, cfg.Display, opts.padding)
	if opts.json {
		printer = output.NewJSONPrinter(stdout)
	}
	if err := printer.Print(snapshot); err != nil {
		return fmt.Errorf("failed to print report: %w", err)
	}

	return nil
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `sysfetch - system information at a glance

Usage:
  sysfetch [flags]

Flags:
%s
Environment Variables:
  SYSFETCH_DEBUG       Enable debug logging (true/1)
  SYSFETCH_CACHE_DIR   Directory holding the GPU name cache
`, flagSet.FlagUsages())
}

func showVersion(w io.Writer) {
	fmt.Fprintf(w, "sysfetch v%s\n", config.Version)
	fmt.Fprintf(w, "Commit: %s\n", config.Commit)
	fmt.Fprintf(w, "Build Date: %s\n", config.BuildDate)
}
