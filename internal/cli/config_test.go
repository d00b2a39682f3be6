package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "results", cfg.OutputDir)
	assert.Equal(t, "result", cfg.FilePrefix)
}

func TestLoadConfig_File(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "output_dir: /tmp/experiments\nfile_prefix: exp\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/experiments", cfg.OutputDir)
	assert.Equal(t, "exp", cfg.FilePrefix)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "file_prefix: exp\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "results", cfg.OutputDir, "unset field keeps its default")
	assert.Equal(t, "exp", cfg.FilePrefix)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err, "an explicitly named config file must exist")
}

func TestLoadConfig_BadYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "output_dir: [unterminated\n")

	_, err := LoadConfig(path)
	assert.Error(t, err)
	assert.ErrorContains(t, err, "parse config")
}
