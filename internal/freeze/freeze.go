// Package freeze produces and consumes per-environment lockfiles.
// A lockfile is the uv pip freeze output stored inside the environment
// directory; thaw rebuilds the environment from it.
package freeze

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hbjs97/uvenv/internal/meta"
	"github.com/hbjs97/uvenv/internal/paths"
	"github.com/hbjs97/uvenv/internal/registry"
	"github.com/hbjs97/uvenv/internal/uv"
)

// ErrNoLockfile는 thaw 대상 환경에 lockfile이 없을 때 반환된다.
var ErrNoLockfile = errors.New("lockfile이 없습니다")

// Manager는 환경별 lockfile 생성(lock)과 재구축(thaw)을 담당한다.
type Manager struct {
	paths *paths.Resolver
	uv    *uv.Adapter
	reg   *registry.Registry
}

// NewManager는 새 freeze Manager를 생성한다.
func NewManager(p *paths.Resolver, u *uv.Adapter, r *registry.Registry) *Manager {
	return &Manager{paths: p, uv: u, reg: r}
}

// Lock은 환경의 설치 패키지 목록을 lockfile로 기록한다.
func (m *Manager) Lock(ctx context.Context, name string) error {
	if !m.paths.EnvironmentExists(name) {
		return fmt.Errorf("freeze.Lock: %w: %s", paths.ErrNotFound, name)
	}

	out, err := m.uv.PipFreeze(ctx, m.paths.EnvPython(name))
	if err != nil {
		return fmt.Errorf("freeze.Lock: %w", err)
	}

	if err := os.WriteFile(m.paths.LockfilePath(name), []byte(out), 0600); err != nil {
		return fmt.Errorf("freeze.Lock: %w", err)
	}
	return nil
}

// Thaw는 lockfile로부터 환경을 재구축한다.
// 기존 환경을 삭제하고 같은 python 버전으로 재생성한 뒤 패키지를 설치한다.
func (m *Manager) Thaw(ctx context.Context, name string) error {
	if !m.paths.EnvironmentExists(name) {
		return fmt.Errorf("freeze.Thaw: %w: %s", paths.ErrNotFound, name)
	}

	lockPath := m.paths.LockfilePath(name)
	lock, err := os.ReadFile(lockPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("freeze.Thaw: %w: %s", ErrNoLockfile, name)
		}
		return fmt.Errorf("freeze.Thaw: %w", err)
	}

	// lockfile은 환경 디렉토리 안에 있으므로 재생성 전에 내용을 보존해야 한다.
	pythonVersion := meta.Read(m.paths.MetadataPath(name), name).PythonVersion
	if pythonVersion == meta.UnknownVersion {
		return fmt.Errorf("freeze.Thaw: 메타데이터에 python 버전이 없어 재구축할 수 없습니다: %s", name)
	}

	if err := m.reg.Remove(name); err != nil {
		return fmt.Errorf("freeze.Thaw: %w", err)
	}
	if err := m.reg.Create(ctx, name, pythonVersion); err != nil {
		return fmt.Errorf("freeze.Thaw: %w", err)
	}
	if err := os.WriteFile(lockPath, lock, 0600); err != nil {
		return fmt.Errorf("freeze.Thaw: %w", err)
	}

	if err := m.uv.PipInstallRequirements(ctx, m.paths.EnvPython(name), lockPath); err != nil {
		return fmt.Errorf("freeze.Thaw: %w", err)
	}
	return nil
}
