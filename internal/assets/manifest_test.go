package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, `
model:
  path: best_lgb_model.txt
whitelist:
  path: relevant_features.csv
market_index:
  path: consumer-credit-index-q2.pdf
  average_utilisation: 2.3217
`)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "best_lgb_model.txt", m.Model.Path)
	assert.Equal(t, "relevant_features.csv", m.Whitelist.Path)
	assert.Equal(t, "consumer-credit-index-q2.pdf", m.MarketIndex.Path)
	assert.InDelta(t, 2.3217, m.MarketIndex.AverageUtilisation, 1e-9)
}

func TestLoad_UnknownFieldFails(t *testing.T) {
	path := writeManifest(t, `
model:
  path: model.txt
  threads: 4
whitelist:
  path: features.csv
market_index:
  path: index.pdf
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingAsset(t *testing.T) {
	path := writeManifest(t, `
model:
  path: model.txt
whitelist:
  path: features.csv
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "market_index.path")
}

func TestLoad_FileAbsent(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
