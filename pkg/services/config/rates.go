package config

import (
	"context"
	"fmt"
	"strconv"

	"gopkg.in/ini.v1"

	"github.com/bid-tools/proposal-atlas/pkg/models/domain"
)

// Registry reads currency rate profiles from an ini file. Each section is
// one profile; keys are currency codes, values the reference-currency rate
// for one unit of the code, plus a `reference` key naming the reference
// currency itself.
//
//	[default]
//	reference = KGS
//	RUB = 0.95
//	USD = 87.5
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetRates(ctx context.Context, profile string) (domain.RateTable, error)
}

type ratesRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &ratesRegistry{cfg: cfg}, nil
}

func (rr *ratesRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range rr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (rr *ratesRegistry) GetRates(_ context.Context, profile string) (domain.RateTable, error) {
	section, err := rr.cfg.GetSection(profile)
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("rates profile %q not found", profile)
	}

	table := domain.RateTable{
		Reference: domain.KGS,
		Rates:     make(map[domain.Code]float64),
	}

	if ref := section.Key("reference").String(); ref != "" {
		code := domain.Code(ref)
		if !code.Supported() {
			return domain.RateTable{}, fmt.Errorf("unsupported reference currency %q in profile %q", ref, profile)
		}
		table.Reference = code
	}

	for _, key := range section.Keys() {
		code := domain.Code(key.Name())
		if !code.Supported() {
			continue
		}
		rate, err := strconv.ParseFloat(key.String(), 64)
		if err != nil || rate <= 0 {
			return domain.RateTable{}, fmt.Errorf("invalid rate for %s in profile %q: %q", code, profile, key.String())
		}
		table.Rates[code] = rate
	}

	if len(table.Rates) == 0 {
		return domain.RateTable{}, fmt.Errorf("rates profile %q defines no rates", profile)
	}
	table.Rates[table.Reference] = 1

	return table, nil
}
