package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"log-report/internal/app"
	"log-report/internal/shared/configs"
	"log-report/internal/shared/validators"

	"github.com/spf13/pflag"
)

// Options are the command line flags of logreport.
type Options struct {
	Input      string `validate:"required"`
	Output     string `validate:"required,oneof=plain csv"`
	OutputDir  string
	ConfigPath string
	LogLevel   string `validate:"omitempty,oneof=trace debug info warn error disabled"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Invalid arguments: %v\n", err)
		return 1
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}

	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to initialize app: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := application.GenerateReport(ctx, opts.Input, opts.Output)
	if err != nil {
		fmt.Fprintf(stderr, "Error generating %s report: %v\n", opts.Output, err)
		return 1
	}

	fmt.Fprintf(stdout, "Report written to %s (%d records, %d lines skipped)\n", result.Path, result.RecordCount, result.SkippedLines)
	return 0
}

func parseOptions(args []string, stderr io.Writer) (*Options, error) {
	opts := &Options{}

	flags := pflag.NewFlagSet("logreport", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.Input, "input", "i", "", "access log file to analyze (required)")
	flags.StringVarP(&opts.Output, "output", "o", "plain", "report format: plain or csv")
	flags.StringVar(&opts.OutputDir, "output-dir", "", "directory the report is written to (overrides report.output_dir)")
	flags.StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level (overrides log.level)")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if err := validators.New().Struct(opts); err != nil {
		var validationErrors validators.ValidationErrors
		if errors.As(err, &validationErrors) {
			return nil, formatOptionErrors(validationErrors)
		}
		return nil, err
	}
	return opts, nil
}

func formatOptionErrors(validationErrors validators.ValidationErrors) error {
	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		flag := "--" + optionFlagNames[e.Field()]
		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", flag))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of [%s], got %q", flag, e.Param(), e.Value()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid (%s)", flag, e.Tag()))
		}
	}
	return errors.New(strings.Join(messages, ", "))
}

var optionFlagNames = map[string]string{
	"Input":      "input",
	"Output":     "output",
	"OutputDir":  "output-dir",
	"ConfigPath": "config",
	"LogLevel":   "log-level",
}

func loadConfig(opts *Options) (*configs.Config, error) {
	cfg, err := configs.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.OutputDir != "" {
		cfg.Report.OutputDir = opts.OutputDir
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	return cfg, configs.Validate(cfg)
}
