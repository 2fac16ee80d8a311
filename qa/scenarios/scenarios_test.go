package scenarios

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, files)
	for _, f := range files {
		sc, err := Load(f)
		require.NoError(t, err, f)
		t.Run(sc.Name, func(t *testing.T) {
			mismatches, err := Run(sc)
			require.NoError(t, err)
			assert.Empty(t, mismatches)
		})
	}
}

func TestRunReportsMismatches(t *testing.T) {
	zero := 1.0
	sc := &Scenario{
		Name: "wrong",
		Expected: Expected{
			Periods:                 3,
			ReplacementCost:         map[int]float64{2019: -1, 1900: 0},
			Survival:                map[int]float64{2020: 0.5},
			InteriorReplacementCost: &zero,
		},
	}
	mismatches, err := Run(sc)
	require.NoError(t, err)
	assert.Contains(t, mismatches, "periods: expected 3, got 17")
	assert.Contains(t, mismatches, "replacement_cost: period 1900 outside horizon")
	assert.Contains(t, mismatches, "replacement_cost[2019]: expected -1, got -70000")
	assert.Contains(t, mismatches, "survival[2020]: expected 0.5, got 0.99")
}

func TestRunUnexpectedConfigError(t *testing.T) {
	_, err := Run(&Scenario{Name: "bad", Overrides: map[string]any{"lifetime": 0}})
	assert.Error(t, err)

	mismatches, err := Run(&Scenario{Name: "ok", Expected: Expected{ConfigError: true}})
	require.NoError(t, err)
	assert.Len(t, mismatches, 1)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load("no-file.yaml")
	assert.Error(t, err)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(":"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	unnamed := filepath.Join(dir, "unnamed.yaml")
	require.NoError(t, os.WriteFile(unnamed, []byte("overrides: {}\n"), 0o644))
	_, err = Load(unnamed)
	assert.ErrorContains(t, err, "name is required")
}
