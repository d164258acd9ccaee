package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaultsForUnsetFields(t *testing.T) {
	path := writeTemp(t, "afrim.toml", `
[core]
buffer_size = 128
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.Core.BufferSize)
	assert.True(t, cfg.Core.AutoCapitalize)
	assert.Equal(t, 10, cfg.Core.PageSize)
}

func TestLoadDecodesDataRowShapes(t *testing.T) {
	path := writeTemp(t, "afrim.toml", `
[data]
a = "x"
b = ["y", "z"]

[data.c]
texts = ["w"]
auto_commit = true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, cfg.Data["a"].Texts)
	assert.Equal(t, []string{"y", "z"}, cfg.Data["b"].Texts)
	assert.Equal(t, []string{"w"}, cfg.Data["c"].Texts)
	assert.True(t, cfg.Data["c"].AutoCommit)
}

func TestLoadMissingFileIsConfigError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
}

func TestLoadMergesLanguagesLaterOverridesEarlier(t *testing.T) {
	lang := writeTemp(t, "extra.toml", `
[data]
a = "override"
`)
	main := writeTemp(t, "afrim.toml", `
languages = ["`+lang+`"]

[data]
a = "base"
b = "keep"
`)
	cfg, err := Load(main)
	require.NoError(t, err)
	assert.Equal(t, []string{"override"}, cfg.Data["a"].Texts)
	assert.Equal(t, []string{"keep"}, cfg.Data["b"].Texts)
}
