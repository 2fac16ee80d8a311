package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kilianp07/batterycf/core/model"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		cfgPath, runFormat, runOutput, runServeMetrics = "", "", "", false
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestDefaultsRoundTrip(t *testing.T) {
	out, err := execute(t, "defaults")
	require.NoError(t, err)

	var doc struct {
		Model model.Parameters `yaml:"model"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, model.DefaultParameters(), doc.Model)
}

func TestValidateReportsWarnings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model:\n  contributionFactor:\n    bogusSavings: 1\n"), 0o644))
	out, err := execute(t, "validate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "bogusSavings")
	assert.Contains(t, out, "17 periods from 2019 to 2035")
}

func TestValidateRejectsInvalidModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model:\n  numberBatteries: 0\n"), 0o644))
	_, err := execute(t, "validate", "-c", path)
	assert.ErrorIs(t, err, model.ErrInvalidParameters)
}

func TestRunWritesCSV(t *testing.T) {
	out, err := execute(t, "run", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "period,expectedReplacementCost")
	assert.Contains(t, out, "\n2019,-70000,")
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "run", "--format", "xml")
	assert.Error(t, err)
}
