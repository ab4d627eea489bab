package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bid-tools/proposal-atlas/pkg/models/domain"
	"github.com/bid-tools/proposal-atlas/pkg/services/config"
	"github.com/bid-tools/proposal-atlas/pkg/services/currency"
)

type CurrenciesCmd struct {
	ratesPath string
	profile   string
	out       io.Writer
}

func NewCurrenciesCmd(out io.Writer) *cobra.Command {
	cc := &CurrenciesCmd{out: out}
	cmd := &cobra.Command{
		Use:   "currencies",
		Short: "List supported currencies and their reference rates",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.ratesPath, "rates", "", "Path to a rates.ini file (built-in table when omitted)")
	cmd.Flags().StringVar(&cc.profile, "profile", "default", "Rates profile to use")

	return cmd
}

func (cc *CurrenciesCmd) run(cmd *cobra.Command, args []string) error {
	rates := currency.DefaultRates()
	if cc.ratesPath != "" {
		registry, err := config.NewRegistry(cc.ratesPath)
		if err != nil {
			return fmt.Errorf("failed to load rates from %s: %w", cc.ratesPath, err)
		}
		rates, err = registry.GetRates(cmd.Context(), cc.profile)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(cc.out, "Reference currency: %s\n", rates.Reference)
	for _, code := range domain.SupportedCodes() {
		fmt.Fprintf(cc.out, "%s  %-8s %-22s rate %.4f\n",
			code, code.Symbol(), code.Name(), rates.Rates[code])
	}

	return nil
}
