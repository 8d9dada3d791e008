package paths_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/hbjs97/uvenv/internal/paths"
	"github.com/hbjs97/uvenv/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvPaths(t *testing.T) {
	r := paths.New("/srv/envs")

	assert.Equal(t, filepath.Join("/srv/envs", "demo"), r.EnvDir("demo"))
	assert.Equal(t, filepath.Join("/srv/envs", "demo", "uvenv.json"), r.MetadataPath("demo"))
	assert.Equal(t, filepath.Join("/srv/envs", "demo", "uvenv.lock"), r.LockfilePath("demo"))

	if runtime.GOOS == "windows" {
		assert.Equal(t, filepath.Join("/srv/envs", "demo", "Scripts"), r.BinDir("demo"))
	} else {
		assert.Equal(t, filepath.Join("/srv/envs", "demo", "bin"), r.BinDir("demo"))
		assert.Equal(t, filepath.Join("/srv/envs", "demo", "bin", "python"), r.EnvPython("demo"))
	}
}

func TestEnvironmentExists(t *testing.T) {
	base := t.TempDir()
	r := paths.New(base)

	assert.False(t, r.EnvironmentExists("demo"))

	testutil.WriteEnv(t, base, "demo", "")
	assert.True(t, r.EnvironmentExists("demo"))
}

func TestEnvironmentExists_FileIsNotEnv(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "demo"), nil, 0600))

	r := paths.New(base)
	assert.False(t, r.EnvironmentExists("demo"))
}

func TestListEnvironments_SortedByName(t *testing.T) {
	base := t.TempDir()
	testutil.WriteEnv(t, base, "zeta", "")
	testutil.WriteEnv(t, base, "alpha", "")
	testutil.WriteEnv(t, base, "mid", "")

	r := paths.New(base)
	names, err := r.ListEnvironments()

	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestListEnvironments_MissingBaseDir(t *testing.T) {
	r := paths.New(filepath.Join(t.TempDir(), "none"))
	names, err := r.ListEnvironments()

	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestListEnvironments_IgnoresFiles(t *testing.T) {
	base := t.TempDir()
	testutil.WriteEnv(t, base, "demo", "")
	require.NoError(t, os.WriteFile(filepath.Join(base, "stray.txt"), nil, 0600))

	r := paths.New(base)
	names, err := r.ListEnvironments()

	require.NoError(t, err)
	assert.Equal(t, []string{"demo"}, names)
}
