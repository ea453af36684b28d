// Package root contains the root command for the application.
package root

import (
	"fmt"

	"fjacquet/sales-analytics/internal/config"
	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by multiple commands.
type CommonFlags struct {
	Input     string
	Output    string
	Region    string
	MinAmount string
	MaxAmount string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "sales-analytics",
		Short: "A CLI tool to analyze pipe-delimited sales data and generate reports.",
		Long: `sales-analytics parses pipe-delimited sales transaction files, validates
and filters the records, computes revenue analytics, enriches records with
product catalog metadata and generates a formatted text report.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to sales-analytics!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)
		},
	}

	// SharedFlags holds common flag values accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input sales data file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Region, "region", "r", "", "Only keep records from this region (exact match)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.MinAmount, "min-amount", "", "Only keep records with line revenue >= this amount")
	Cmd.PersistentFlags().StringVar(&SharedFlags.MaxAmount, "max-amount", "", "Only keep records with line revenue <= this amount")
}

// GetLogger returns the shared logger wrapped in the logging abstraction.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// FilterOptionsFromFlags builds the validator's soft-filter options from
// the shared flags, falling back to the config defaults. Empty values mean
// the filter is absent.
func FilterOptionsFromFlags() (models.FilterOptions, error) {
	opts := models.FilterOptions{}

	region := SharedFlags.Region
	minRaw := SharedFlags.MinAmount
	maxRaw := SharedFlags.MaxAmount
	if Cfg != nil {
		if region == "" {
			region = Cfg.Filter.Region
		}
		if minRaw == "" {
			minRaw = Cfg.Filter.MinAmount
		}
		if maxRaw == "" {
			maxRaw = Cfg.Filter.MaxAmount
		}
	}

	if region != "" {
		opts.Region = &region
	}

	if minRaw != "" {
		min, err := decimal.NewFromString(minRaw)
		if err != nil {
			return opts, fmt.Errorf("invalid min amount %q: %w", minRaw, err)
		}
		opts.MinAmount = &min
	}

	if maxRaw != "" {
		max, err := decimal.NewFromString(maxRaw)
		if err != nil {
			return opts, fmt.Errorf("invalid max amount %q: %w", maxRaw, err)
		}
		opts.MaxAmount = &max
	}

	return opts, nil
}
