package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "scrapewiz.conf")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.FileExists(t, path)

	require.Equal(t, ";", cfg.TableSeparator)
	require.False(t, cfg.OmitTableHeaders)
	require.True(t, cfg.Autoclose)
	require.False(t, cfg.WholeElements)
	require.False(t, cfg.RenderJS)
	require.Equal(t, 0, cfg.MaxAttempts)
	require.NotEmpty(t, cfg.FileInputDefault)

	// The generated file documents every option.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, key := range []string{
		KeyFileInputDefault, KeyTableSeparator, KeyOmitTableHeaders,
		KeyAutoclose, KeyWholeElements, KeyRenderJS, KeyMaxAttempts,
	} {
		require.Contains(t, string(data), key)
	}
}

func TestLoadReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrapewiz.conf")
	content := `FILE_INPUT_DEFAULT = /srv/scrapes
TABLE_SEPARATOR = |
OMIT_TABLE_HEADERS = true
AUTOCLOSE = false
WHOLE_ELEMENTS = true
RENDER_JS = true
MAX_ATTEMPTS = 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/srv/scrapes", cfg.FileInputDefault)
	require.Equal(t, "|", cfg.TableSeparator)
	require.True(t, cfg.OmitTableHeaders)
	require.False(t, cfg.Autoclose)
	require.True(t, cfg.WholeElements)
	require.True(t, cfg.RenderJS)
	require.Equal(t, 5, cfg.MaxAttempts)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrapewiz.conf")
	require.NoError(t, os.WriteFile(path, []byte("AUTOCLOSE = false\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.False(t, cfg.Autoclose)
	require.Equal(t, ";", cfg.TableSeparator)
	require.False(t, cfg.OmitTableHeaders)
}

func TestLoadEmptySeparatorFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrapewiz.conf")
	require.NoError(t, os.WriteFile(path, []byte("TABLE_SEPARATOR =\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ";", cfg.TableSeparator)
}

func TestLoadRoundTripsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrapewiz.conf")

	first, err := Load(path)
	require.NoError(t, err)
	second, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestLoadFailsOnUnwritableConfigDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0555))
	t.Cleanup(func() { os.Chmod(dir, 0755) })

	_, err := Load(filepath.Join(dir, "sub", "scrapewiz.conf"))
	require.Error(t, err)
}
