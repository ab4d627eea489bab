package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bid-tools/proposal-atlas/pkg/adapters"
	"github.com/bid-tools/proposal-atlas/pkg/models/api"
	"github.com/bid-tools/proposal-atlas/pkg/models/domain"
	"github.com/bid-tools/proposal-atlas/pkg/services/analysis"
	"github.com/bid-tools/proposal-atlas/pkg/services/config"
	"github.com/bid-tools/proposal-atlas/pkg/services/currency"
	"github.com/bid-tools/proposal-atlas/pkg/services/extract"
	"github.com/bid-tools/proposal-atlas/pkg/services/metrics"
	"github.com/bid-tools/proposal-atlas/pkg/services/report"
)

// ReportHandler renders an assembled report to the terminal.
type ReportHandler interface {
	Handle(report *domain.Report) error
}

type AnalyzeCmd struct {
	inputPath string
	ratesPath string
	profile   string
	asJSON    bool
	asTable   bool

	simple ReportHandler
	table  ReportHandler
	out    io.Writer
}

func NewAnalyzeCmd(simple, table ReportHandler, out io.Writer) *cobra.Command {
	ac := &AnalyzeCmd{simple: simple, table: table, out: out}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Evaluate proposals from a JSON file and print the report",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.inputPath, "input", "", "Path to the proposals JSON file")
	cmd.Flags().StringVar(&ac.ratesPath, "rates", "", "Path to a rates.ini file (built-in table when omitted)")
	cmd.Flags().StringVar(&ac.profile, "profile", "default", "Rates profile to use")
	cmd.Flags().BoolVar(&ac.asJSON, "json", false, "Print the canonical report as JSON")
	cmd.Flags().BoolVar(&ac.asTable, "table", false, "Print per-proposal section tables")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(os.Stderr).Level(zerolog.WarnLevel).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	records, err := ac.readProposals()
	if err != nil {
		return err
	}

	rates, err := ac.resolveRates(ctx)
	if err != nil {
		return err
	}

	analyzer := analysis.NewAnalyzer(
		extract.NewExtractor(),
		currency.NewNormalizer(rates),
		metrics.NewAggregator(),
		report.NewAssembler(rates.Reference),
	)

	rep, err := analyzer.Analyze(ctx, records)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if ac.asJSON {
		enc := json.NewEncoder(ac.out)
		enc.SetIndent("", "  ")
		return enc.Encode(adapters.MapReportDomainToApi(*rep))
	}
	if ac.asTable {
		return ac.table.Handle(rep)
	}
	return ac.simple.Handle(rep)
}

func (ac *AnalyzeCmd) readProposals() ([]domain.ProposalRecord, error) {
	data, err := os.ReadFile(ac.inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ac.inputPath, err)
	}

	var req api.AnalyzeRequest
	if err := json.Unmarshal(data, &req); err != nil || len(req.Proposals) == 0 {
		// Bare array form is also accepted.
		var proposals []api.Proposal
		if err := json.Unmarshal(data, &proposals); err != nil {
			return nil, fmt.Errorf("%s is not a valid proposals file: %w", ac.inputPath, err)
		}
		req.Proposals = proposals
	}

	if len(req.Proposals) == 0 {
		return nil, fmt.Errorf("no proposals found in %s", ac.inputPath)
	}

	return adapters.MapAnalyzeRequestApiToDomain(req), nil
}

func (ac *AnalyzeCmd) resolveRates(ctx context.Context) (domain.RateTable, error) {
	if ac.ratesPath == "" {
		return currency.DefaultRates(), nil
	}

	registry, err := config.NewRegistry(ac.ratesPath)
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("failed to load rates from %s: %w", ac.ratesPath, err)
	}
	return registry.GetRates(ctx, ac.profile)
}
