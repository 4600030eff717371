package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/daybookapp/daybook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FirstRunWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = os.Stat(path)
	assert.NoError(t, err, "a starter config was written")
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /tmp/x.db\nday_start: 6\nday_end: 22\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, domain.TimeRange{Start: 6, End: 22}, cfg.SeedRange())
	assert.Equal(t, domain.DefaultColor, cfg.DefaultColor, "unset fields keep defaults")
}

func TestLoad_MalformedFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- not yaml"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestNormalize_RepairsInvalidRange(t *testing.T) {
	cfg := &Config{DayStart: 22, DayEnd: 6}
	cfg.Normalize()
	assert.Equal(t, domain.TimeRange{Start: 8, End: 20}, cfg.SeedRange())
}
