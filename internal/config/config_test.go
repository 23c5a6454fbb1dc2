package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func load(t *testing.T, path string) (*Config, error) {
	t.Helper()
	v, err := New(path)
	require.NoError(t, err)
	return FromViper(v)
}

func TestFromViper_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := load(t, "")

	require.NoError(t, err)
	assert.Equal(t, "drugs.txt", cfg.DataFile)
	assert.Equal(t, "", cfg.CatalogFile)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Console)
	assert.True(t, cfg.UI.Color)
	assert.Equal(t, "> ", cfg.UI.Prompt)
}

func TestFromViper_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
dataFile: /tmp/stock.txt
catalogFile: catalog.yaml
log:
  level: debug
ui:
  color: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	t.Setenv("STOCKER_UI_PROMPT", "stocker> ")

	cfg, err := load(t, path)

	require.NoError(t, err)
	assert.Equal(t, "/tmp/stock.txt", cfg.DataFile)
	assert.Equal(t, "catalog.yaml", cfg.CatalogFile)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.UI.Color)
	assert.Equal(t, "stocker> ", cfg.UI.Prompt)
}

func TestNew_ExplicitMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.Error(t, (&Config{DataFile: "  "}).Validate())
	assert.NoError(t, (&Config{DataFile: "drugs.txt"}).Validate())
}
