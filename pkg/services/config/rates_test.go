package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bid-tools/proposal-atlas/pkg/models/domain"
)

func writeRates(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rates.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGetRates(t *testing.T) {
	path := writeRates(t, `
[default]
reference = KGS
RUB = 0.95
USD = 87.5

[testing]
reference = RUB
USD = 92
KZT = 0.18
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("profiles are listed", func(t *testing.T) {
		profiles, err := registry.GetProfiles(ctx)
		require.NoError(t, err)
		assert.Contains(t, profiles, "default")
		assert.Contains(t, profiles, "testing")
	})

	t.Run("default profile", func(t *testing.T) {
		table, err := registry.GetRates(ctx, "default")
		require.NoError(t, err)
		assert.Equal(t, domain.KGS, table.Reference)
		assert.InDelta(t, 0.95, table.Rates[domain.RUB], 0.001)
		assert.InDelta(t, 87.5, table.Rates[domain.USD], 0.001)
		// The reference currency always converts 1:1.
		assert.InDelta(t, 1, table.Rates[domain.KGS], 0.001)
	})

	t.Run("alternate reference currency", func(t *testing.T) {
		table, err := registry.GetRates(ctx, "testing")
		require.NoError(t, err)
		assert.Equal(t, domain.RUB, table.Reference)
		assert.InDelta(t, 1, table.Rates[domain.RUB], 0.001)
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := registry.GetRates(ctx, "missing")
		assert.Error(t, err)
	})
}

func TestGetRates_Invalid(t *testing.T) {
	ctx := context.Background()

	t.Run("unsupported reference currency", func(t *testing.T) {
		path := writeRates(t, "[default]\nreference = GBP\nRUB = 1\n")
		registry, err := NewRegistry(path)
		require.NoError(t, err)
		_, err = registry.GetRates(ctx, "default")
		assert.Error(t, err)
	})

	t.Run("non-numeric rate", func(t *testing.T) {
		path := writeRates(t, "[default]\nRUB = abc\n")
		registry, err := NewRegistry(path)
		require.NoError(t, err)
		_, err = registry.GetRates(ctx, "default")
		assert.Error(t, err)
	})

	t.Run("unsupported codes are skipped, not defaulted", func(t *testing.T) {
		path := writeRates(t, "[default]\nGBP = 110\nRUB = 0.95\n")
		registry, err := NewRegistry(path)
		require.NoError(t, err)
		table, err := registry.GetRates(ctx, "default")
		require.NoError(t, err)
		assert.NotContains(t, table.Rates, domain.Code("GBP"))
		assert.Contains(t, table.Rates, domain.RUB)
	})

	t.Run("empty profile", func(t *testing.T) {
		path := writeRates(t, "[default]\nGBP = 110\n")
		registry, err := NewRegistry(path)
		require.NoError(t, err)
		_, err = registry.GetRates(ctx, "default")
		assert.Error(t, err)
	})
}
