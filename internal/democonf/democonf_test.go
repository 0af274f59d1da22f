package democonf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", ".combodemo.toml")
	want := &Config{
		Version:          1,
		Items:            []string{"Apple", "Banana"},
		RecentSelections: []string{"Banana"},
		MultiSelect:      true,
	}

	require.NoError(t, Save(want, path))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Parallel()

	got, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("items = [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadBackfillsEmptyItems(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".combodemo.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\nmulti_select = true\n"), 0644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.True(t, got.MultiSelect)
	assert.Equal(t, Default().Items, got.Items, "an itemless config gets the stock list")
}
