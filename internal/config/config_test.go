package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeINI(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "apiscaffold.ini")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.ini"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadReadsSections(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	p := writeINI(t, `
[scaffold]
out       = ./dst
dir_perm  = 0700
file_perm = 600
exec_glob = *.sh, bin/*
dry_run   = true

[log]
level = debug
json  = true
`)
	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, "./dst", cfg.Out)
	assert.Equal(t, os.FileMode(0o700), cfg.DirPerm)
	assert.Equal(t, os.FileMode(0o600), cfg.FilePerm)
	assert.Equal(t, []string{"*.sh", "bin/*"}, cfg.ExecGlobs)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
}

func TestLoadEnvOverridesLogLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	p := writeINI(t, "[log]\nlevel = debug\n")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadBadPerm(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	p := writeINI(t, "[scaffold]\ndir_perm = rwx\n")

	_, err := Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dir_perm")
}

func TestParsePerm(t *testing.T) {
	cases := map[string]os.FileMode{
		"0755":  0o755,
		"755":   0o755,
		"0o644": 0o644,
		"":      0o640,
		" 600 ": 0o600,
	}
	for in, want := range cases {
		got, err := ParsePerm(in, 0o640)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePerm("0999", 0)
	assert.Error(t, err)
	_, err = ParsePerm("01777", 0)
	assert.Error(t, err)
}

func TestSplitGlobs(t *testing.T) {
	assert.Nil(t, SplitGlobs("  "))
	assert.Equal(t, []string{"*.sh", "bin/*"}, SplitGlobs("*.sh,, bin/* ,"))
}
