package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cristianoliveira/staffview/internal/config"
	"github.com/cristianoliveira/staffview/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	for _, env := range os.Environ() {
		name, _, _ := strings.Cut(env, "=")
		if strings.HasPrefix(name, config.EnvPrefix) {
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))

	t.Cleanup(func() {
		configPath, sourcePath, backend = "", "", ""
		debugFlag, quietFlag, noColor = false, false, false
	})
	return tmp
}

func TestSetupAppliesSourceFlag(t *testing.T) {
	isolate(t)
	sourcePath = "/data/staff.tsv"

	require.NoError(t, setup(RootCmd, nil))
	assert.Equal(t, "/data/staff.tsv", config.SourcePath())
	assert.Equal(t, roster.BackendTSV, config.Get("source_backend", ""))
}

func TestSetupExplicitBackendWins(t *testing.T) {
	isolate(t)
	sourcePath = "/data/staff.tsv"
	backend = "SQLite"

	require.NoError(t, setup(RootCmd, nil))
	assert.Equal(t, roster.BackendSQLite, config.Get("source_backend", ""))
}

func TestSetupRejectsUnknownBackend(t *testing.T) {
	isolate(t)
	backend = "csv"

	err := setup(RootCmd, nil)
	assert.ErrorIs(t, err, roster.ErrUnsupportedBackend)
}

func TestSetupReadsConfigFlag(t *testing.T) {
	tmp := isolate(t)
	path := filepath.Join(tmp, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("page_size = 20\nsort_order = \"desc\"\n"), 0o644))
	configPath = path
	t.Cleanup(func() { os.Unsetenv(config.EnvPrefix + "CONFIG_PATH") })

	require.NoError(t, setup(RootCmd, nil))
	assert.Equal(t, 20, config.GetInt("page_size", 0))
	assert.Equal(t, "desc", config.Get("sort_order", ""))
}

func TestColorEnabled(t *testing.T) {
	isolate(t)
	t.Setenv("NO_COLOR", "")

	assert.False(t, ColorEnabled(&bytes.Buffer{}))

	noColor = true
	assert.False(t, ColorEnabled(os.Stdout))

	noColor = false
	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(os.Stdout))
}

func TestIsBackend(t *testing.T) {
	assert.True(t, isBackend("json"))
	assert.True(t, isBackend("TSV"))
	assert.False(t, isBackend("csv"))
}

func TestHelpText(t *testing.T) {
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	t.Cleanup(func() { RootCmd.SetOut(nil) })

	printHelpText(RootCmd)
	assert.Contains(t, out.String(), "USAGE:\n    staffview [COMMAND] [OPTIONS]")
	assert.Contains(t, out.String(), "--source <path>")
}
