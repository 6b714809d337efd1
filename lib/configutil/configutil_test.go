package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Team        string  `json:"team"`
	FIPConstant float64 `json:"fip_constant"`
	DataDir     string  `json:"data_dir"`
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "kbostats.json5")

	err := os.WriteFile(name, []byte(`{
		// trailing commas and comments are allowed
		team: "SSG",
		fip_constant: 3.20,
		data_dir: "data",
	}`), 0o644)
	require.NoError(t, err)

	config, err := Load[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, "SSG", config.Team)
	require.Equal(t, 3.20, config.FIPConstant)
	require.Equal(t, "data", config.DataDir)
}

func TestLoadLocalOverride(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "kbostats.json5")

	err := os.WriteFile(name, []byte(`{team: "SSG", fip_constant: 3.20}`), 0o644)
	require.NoError(t, err)
	err = os.WriteFile(
		filepath.Join(dir, "kbostats.local.json5"),
		[]byte(`{fip_constant: 3.35}`),
		0o644,
	)
	require.NoError(t, err)

	config, err := Load[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, "SSG", config.Team)
	require.Equal(t, 3.35, config.FIPConstant)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load[testConfig](filepath.Join(t.TempDir(), "nope.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
