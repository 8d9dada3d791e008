package registry

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hbjs97/uvenv/internal/meta"
	"github.com/hbjs97/uvenv/internal/paths"
	"github.com/hbjs97/uvenv/internal/shell"
	"github.com/hbjs97/uvenv/internal/uv"
)

// ErrAlreadyExists는 같은 이름의 환경이 이미 있을 때 반환된다.
var ErrAlreadyExists = errors.New("환경이 이미 존재합니다")

// ErrNotFound는 환경이 없을 때 반환된다. paths의 sentinel을 재노출한다.
var ErrNotFound = paths.ErrNotFound

// ErrCreationFailed는 uv 호출 실패로 환경 생성이 실패했을 때 반환된다.
var ErrCreationFailed = errors.New("환경 생성 실패")

// ErrRemovalFailed는 환경 디렉토리 삭제가 실패했을 때 반환된다.
var ErrRemovalFailed = errors.New("환경 삭제 실패")

// Info는 list가 반환하는 환경 표시 레코드다.
type Info struct {
	Name          string
	Path          string
	PythonVersion string
	Status        string
}

// Registry는 환경 생성/삭제/조회 생명주기를 관리한다.
// base 디렉토리 트리와 메타데이터 파일의 유일한 소유자다.
type Registry struct {
	paths *paths.Resolver
	uv    *uv.Adapter
}

// New는 새 Registry를 생성한다.
func New(p *paths.Resolver, u *uv.Adapter) *Registry {
	return &Registry{paths: p, uv: u}
}

// Exists는 환경 존재 여부를 확인한다.
func (r *Registry) Exists(name string) bool {
	return r.paths.EnvironmentExists(name)
}

// Create는 uv로 가상환경을 생성하고 초기 메타데이터를 기록한다.
// uv 실패 시 부분 생성된 디렉토리를 삭제한 뒤 ErrCreationFailed를 반환한다.
func (r *Registry) Create(ctx context.Context, name, pythonVersion string) error {
	if r.paths.EnvironmentExists(name) {
		return fmt.Errorf("registry.Create: %w: %s", ErrAlreadyExists, name)
	}

	if err := os.MkdirAll(r.paths.BaseDir(), 0755); err != nil {
		return fmt.Errorf("registry.Create: %w: %v", ErrCreationFailed, err)
	}

	envDir := r.paths.EnvDir(name)
	if err := r.uv.Venv(ctx, envDir, pythonVersion); err != nil {
		r.rollback(envDir)
		return fmt.Errorf("registry.Create: %w: %v", ErrCreationFailed, err)
	}

	// 디렉토리와 메타데이터는 함께 생성되거나 함께 사라져야 한다.
	if err := meta.Write(r.paths.MetadataPath(name), meta.New(name, pythonVersion)); err != nil {
		r.rollback(envDir)
		return fmt.Errorf("registry.Create: %w: %v", ErrCreationFailed, err)
	}

	return nil
}

// Remove는 환경 디렉토리 트리를 재귀적으로 삭제한다.
func (r *Registry) Remove(name string) error {
	if !r.paths.EnvironmentExists(name) {
		return fmt.Errorf("registry.Remove: %w: %s", ErrNotFound, name)
	}
	if err := os.RemoveAll(r.paths.EnvDir(name)); err != nil {
		return fmt.Errorf("registry.Remove: %w: %v", ErrRemovalFailed, err)
	}
	return nil
}

// List는 모든 환경을 이름 사전순으로 반환한다.
// 메타데이터 없음/손상은 기본값으로 대체된다.
func (r *Registry) List() ([]Info, error) {
	names, err := r.paths.ListEnvironments()
	if err != nil {
		return nil, fmt.Errorf("registry.List: %w", err)
	}

	infos := make([]Info, 0, len(names))
	for _, name := range names {
		m := meta.Read(r.paths.MetadataPath(name), name)
		infos = append(infos, Info{
			Name:          name,
			Path:          r.paths.EnvDir(name),
			PythonVersion: m.PythonVersion,
			Status:        m.Status(),
		})
	}
	return infos, nil
}

// ActivationScript는 bash 계열 기본 activation 명령을 반환한다.
// 셸별 분기는 shell 패키지가 담당한다.
func (r *Registry) ActivationScript(name string) (string, error) {
	if !r.paths.EnvironmentExists(name) {
		return "", fmt.Errorf("registry.ActivationScript: %w: %s", ErrNotFound, name)
	}
	return shell.Command(r.paths.BinDir(name), "bash"), nil
}

func (r *Registry) rollback(envDir string) {
	if _, err := os.Stat(envDir); err == nil {
		_ = os.RemoveAll(envDir) // rollback 실패 시에도 원래 에러를 우선한다
	}
}
