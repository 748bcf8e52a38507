package configutils_test

import (
	"os"
	"path/filepath"
	"testing"

	configutils "github.com/10Narratives/pager/pkg/config"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name    string `yaml:"name" env:"SAMPLE_NAME" env-default:"pager" env-description:"service name"`
	PerPage int    `yaml:"per_page" env:"SAMPLE_PER_PAGE" env-default:"20"`
}

func TestRead(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cfg.yaml")
		require.NoError(t, os.WriteFile(path, []byte("per_page: 5\n"), 0o600))

		cfg, err := configutils.Read[sample](path)
		require.NoError(t, err)
		require.Equal(t, "pager", cfg.Name)
		require.Equal(t, 5, cfg.PerPage)
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("SAMPLE_PER_PAGE", "7")

		cfg, err := configutils.Read[sample]("")
		require.NoError(t, err)
		require.Equal(t, 7, cfg.PerPage)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := configutils.Read[sample](filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestUsage(t *testing.T) {
	usage, err := configutils.Usage[sample]("Environment:")
	require.NoError(t, err)
	require.Contains(t, usage, "SAMPLE_NAME")
	require.Contains(t, usage, "service name")
}
