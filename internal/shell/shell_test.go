package shell_test

import (
	"path/filepath"
	"testing"

	"github.com/hbjs97/uvenv/internal/paths"
	"github.com/hbjs97/uvenv/internal/shell"
	"github.com/hbjs97/uvenv/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_PerShell(t *testing.T) {
	bin := filepath.Join("/srv/envs/demo", "bin")

	tests := []struct {
		name      string
		shellType string
		want      string
	}{
		{name: "bash", shellType: "bash", want: "source " + filepath.Join(bin, "activate")},
		{name: "zsh", shellType: "zsh", want: "source " + filepath.Join(bin, "activate")},
		{name: "fish", shellType: "fish", want: "source " + filepath.Join(bin, "activate.fish")},
		{name: "powershell", shellType: "powershell", want: "& " + filepath.Join(bin, "Activate.ps1")},
		{name: "unrecognized falls back to bash", shellType: "tcsh", want: "source " + filepath.Join(bin, "activate")},
		{name: "empty falls back to bash", shellType: "", want: "source " + filepath.Join(bin, "activate")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shell.Command(bin, tt.shellType))
		})
	}
}

func TestResolve_ExistingEnv(t *testing.T) {
	base := t.TempDir()
	testutil.WriteEnv(t, base, "demo", "")

	r := shell.NewResolver(paths.New(base))
	cmd, err := r.Resolve("demo", "fish")

	require.NoError(t, err)
	assert.Contains(t, cmd, "activate.fish")
}

func TestResolve_NotFound(t *testing.T) {
	r := shell.NewResolver(paths.New(t.TempDir()))
	_, err := r.Resolve("ghost", "bash")

	require.Error(t, err)
	assert.ErrorIs(t, err, paths.ErrNotFound)
}

func TestResolve_DetectsShellWhenUnspecified(t *testing.T) {
	base := t.TempDir()
	testutil.WriteEnv(t, base, "demo", "")
	t.Setenv("SHELL", "/usr/bin/fish")

	r := shell.NewResolver(paths.New(base))
	cmd, err := r.Resolve("demo", "")

	require.NoError(t, err)
	assert.Contains(t, cmd, "activate.fish")
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want string
	}{
		{name: "bash", env: "/bin/bash", want: "bash"},
		{name: "zsh", env: "/usr/bin/zsh", want: "zsh"},
		{name: "fish", env: "/opt/homebrew/bin/fish", want: "fish"},
		{name: "inconclusive falls back to bash", env: "/bin/dash", want: "bash"},
		{name: "empty falls back to bash", env: "", want: "bash"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SHELL", tt.env)
			assert.Equal(t, tt.want, shell.Detect())
		})
	}
}

func TestDeactivationCommand_ShellInvariant(t *testing.T) {
	// venv가 설치하는 shell function이므로 모든 셸에서 동일해야 한다.
	for _, sh := range []string{"bash", "zsh", "fish", "powershell", "tcsh", ""} {
		assert.Equal(t, "deactivate", shell.DeactivationCommand(sh))
	}
}
