package registry_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/uvenv/internal/paths"
	"github.com/hbjs97/uvenv/internal/registry"
	"github.com/hbjs97/uvenv/internal/testutil"
	"github.com/hbjs97/uvenv/internal/uv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T, fake *testutil.FakeCommander) (*registry.Registry, string) {
	t.Helper()
	base := t.TempDir()
	p := paths.New(base)
	return registry.New(p, uv.NewAdapter(fake, "")), base
}

func TestCreate_ThenList(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("uv venv", "", nil)
	testutil.CreatingVenv(t, fake)

	reg, base := newRegistry(t, fake)
	err := reg.Create(context.Background(), "demo", "3.12")
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(base, "demo"))
	assert.FileExists(t, filepath.Join(base, "demo", "uvenv.json"))

	envs, err := reg.List()
	require.NoError(t, err)
	require.Len(t, envs, 1)
	assert.Equal(t, "demo", envs[0].Name)
	assert.Equal(t, "3.12", envs[0].PythonVersion)
	assert.Equal(t, "inactive", envs[0].Status)
	assert.Equal(t, filepath.Join(base, "demo"), envs[0].Path)
}

func TestCreate_AlreadyExists(t *testing.T) {
	fake := testutil.NewFakeCommander()
	reg, base := newRegistry(t, fake)
	testutil.WriteEnv(t, base, "demo", testutil.MetadataJSON("demo", "3.11", false))

	err := reg.Create(context.Background(), "demo", "3.12")

	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrAlreadyExists)
	// 기존 환경은 건드리지 않는다
	assert.Empty(t, fake.Calls)
	envs, listErr := reg.List()
	require.NoError(t, listErr)
	require.Len(t, envs, 1)
	assert.Equal(t, "3.11", envs[0].PythonVersion)
}

func TestCreate_UVFailureRollsBack(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("uv venv", "error: no interpreter found for 9.99", errors.New("exit status 2"))
	testutil.CreatingVenv(t, fake) // 실제 uv처럼 실패 전에 디렉토리를 남긴다

	reg, base := newRegistry(t, fake)
	err := reg.Create(context.Background(), "demo", "9.99")

	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrCreationFailed)
	assert.Contains(t, err.Error(), "no interpreter found")
	assert.NoDirExists(t, filepath.Join(base, "demo")) // rollback 불변식
}

func TestRemove_NotFound(t *testing.T) {
	reg, _ := newRegistry(t, testutil.NewFakeCommander())
	err := reg.Remove("ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestRemove_DeletesTree(t *testing.T) {
	reg, base := newRegistry(t, testutil.NewFakeCommander())
	testutil.WriteEnv(t, base, "demo", testutil.MetadataJSON("demo", "3.12", false))

	require.NoError(t, reg.Remove("demo"))

	assert.False(t, reg.Exists("demo"))
	envs, err := reg.List()
	require.NoError(t, err)
	assert.Empty(t, envs)
}

func TestList_SortedAndDefaultsOnCorruptMetadata(t *testing.T) {
	reg, base := newRegistry(t, testutil.NewFakeCommander())
	testutil.WriteEnv(t, base, "zeta", testutil.MetadataJSON("zeta", "3.12", true))
	testutil.WriteEnv(t, base, "alpha", "not json {{{")
	testutil.WriteEnv(t, base, "mid", "")

	envs, err := reg.List()
	require.NoError(t, err)
	require.Len(t, envs, 3)

	assert.Equal(t, "alpha", envs[0].Name)
	assert.Equal(t, "unknown", envs[0].PythonVersion)
	assert.Equal(t, "inactive", envs[0].Status)

	assert.Equal(t, "mid", envs[1].Name)
	assert.Equal(t, "unknown", envs[1].PythonVersion)

	assert.Equal(t, "zeta", envs[2].Name)
	assert.Equal(t, "3.12", envs[2].PythonVersion)
	assert.Equal(t, "active", envs[2].Status)
}

func TestList_EmptyBase(t *testing.T) {
	reg, _ := newRegistry(t, testutil.NewFakeCommander())
	envs, err := reg.List()

	require.NoError(t, err)
	assert.Empty(t, envs)
}

func TestActivationScript(t *testing.T) {
	reg, base := newRegistry(t, testutil.NewFakeCommander())
	testutil.WriteEnv(t, base, "demo", "")

	script, err := reg.ActivationScript("demo")
	require.NoError(t, err)
	assert.Contains(t, script, "source ")
	assert.Contains(t, script, filepath.Join("demo", "bin", "activate"))
}

func TestActivationScript_NotFound(t *testing.T) {
	reg, _ := newRegistry(t, testutil.NewFakeCommander())
	_, err := reg.ActivationScript("ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestCreate_MetadataWriteFailureRollsBack(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("uv venv", "", nil)
	// OnRun이 디렉토리를 만들지 않으므로 메타데이터 쓰기가 실패한다.

	reg, base := newRegistry(t, fake)
	err := reg.Create(context.Background(), "demo", "3.12")

	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrCreationFailed)
	_, statErr := os.Stat(filepath.Join(base, "demo"))
	assert.True(t, os.IsNotExist(statErr))
}
