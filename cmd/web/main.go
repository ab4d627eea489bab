package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bid-tools/proposal-atlas/pkg/export"
	"github.com/bid-tools/proposal-atlas/pkg/server"
	"github.com/bid-tools/proposal-atlas/pkg/services/analysis"
	"github.com/bid-tools/proposal-atlas/pkg/services/config"
	"github.com/bid-tools/proposal-atlas/pkg/services/currency"
	"github.com/bid-tools/proposal-atlas/pkg/services/extract"
	"github.com/bid-tools/proposal-atlas/pkg/services/metrics"
	"github.com/bid-tools/proposal-atlas/pkg/services/report"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "web",
		Short: "Start the proposal evaluation API server",
		RunE:  runServer,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	rates := currency.DefaultRates()
	if settings.Rates.Path != "" {
		registry, err := config.NewRegistry(settings.Rates.Path)
		if err != nil {
			return fmt.Errorf("failed to load rates registry: %w", err)
		}
		rates, err = registry.GetRates(ctx, settings.Rates.Profile)
		if err != nil {
			return fmt.Errorf("failed to resolve rates profile: %w", err)
		}
		logger.Info().
			Str("path", settings.Rates.Path).
			Str("profile", settings.Rates.Profile).
			Msg("rates profile loaded")
	}

	analyzer := analysis.NewAnalyzer(
		extract.NewExtractor(),
		currency.NewNormalizer(rates),
		metrics.NewAggregator(),
		report.NewAssembler(rates.Reference),
	)

	exporter := export.NewClient(export.Config{
		BaseURL: settings.Export.URL,
		Timeout: settings.Export.Timeout,
	})

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(settings.Server.Host, settings.Server.Port),
		Dependencies: server.Dependencies{
			Analyzer: analyzer,
			Exporter: exporter,
			Rates:    rates,
		},
	})

	return api.Start()
}
