package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iwvelando/unit-economics/internal/config"
	"github.com/iwvelando/unit-economics/internal/economics"
	"github.com/iwvelando/unit-economics/internal/logging"
	"github.com/iwvelando/unit-economics/internal/store"
	"github.com/iwvelando/unit-economics/pkg/constants"
	"github.com/iwvelando/unit-economics/pkg/output"
	"github.com/iwvelando/unit-economics/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": %q}\n", err.Error())
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("unit-economics", flag.ContinueOnError)
	configLocation := flags.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flags.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flags.String("log-level", "", "log level override (debug, info, warn, error)")
	load := flags.Bool("load", false, "compute from the stored snapshot instead of the configured model")
	save := flags.Bool("save", false, "store the computed model as a snapshot")
	if err := flags.Parse(args); err != nil {
		return err
	}

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", *configLocation, err)
	}

	if *outputFormatFlag != "" {
		conf.Output.Format = *outputFormatFlag
	}
	if *logLevel != "" {
		conf.Logging.Level = *logLevel
	}
	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(conf.Logging, "")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := validation.ValidateOutputFormat(conf.Output.Format); err != nil {
		return err
	}

	ctx := context.Background()
	model := conf.Model

	var snapshots store.Store
	if *load || *save {
		snapshots, err = store.Open(ctx, conf.Storage)
		if err != nil {
			logger.Warn("snapshot store unavailable",
				zap.String("op", "main"),
				zap.String("backend", conf.Storage.Backend),
				zap.Error(err),
			)
		} else {
			defer func() {
				_ = snapshots.Close()
			}()
		}
	}

	if *load && snapshots != nil {
		model = loadSnapshot(ctx, logger, snapshots, model)
	}

	for _, warning := range config.ModelWarnings(model) {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	report := economics.NewEngine(logger).Evaluate(model)
	logger.Info("report computed",
		zap.String("op", "main"),
		zap.String("summary", output.Summary(report.Statement)),
	)

	switch conf.Output.Format {
	case constants.OutputFormatPretty:
		output.PrettyFormat(stdout, report)
	case constants.OutputFormatCSV:
		if err := output.CsvFormat(stdout, report.Statement); err != nil {
			return err
		}
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(stdout, report); err != nil {
			return err
		}
	}

	if *save && snapshots != nil {
		if err := snapshots.Save(ctx, model); err != nil {
			logger.Error("failed to save snapshot",
				zap.String("op", "main"),
				zap.Error(err),
			)
			return fmt.Errorf("failed to save snapshot: %w", err)
		}
		logger.Info("snapshot saved",
			zap.String("op", "main"),
			zap.String("backend", conf.Storage.Backend),
			zap.String("name", conf.Storage.Name),
		)
	}

	return nil
}

// loadSnapshot returns the stored model, or fallback when it cannot be read.
func loadSnapshot(ctx context.Context, logger *zap.Logger, s store.Store, fallback economics.Model) economics.Model {
	m, err := s.Load(ctx)
	if err != nil {
		msg := "failed to load snapshot, using configured model"
		if errors.Is(err, store.ErrNoSnapshot) {
			msg = "no snapshot saved yet, using configured model"
		}
		logger.Warn(msg,
			zap.String("op", "main"),
			zap.Error(err),
		)
		return fallback
	}
	return m
}
