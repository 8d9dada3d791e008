// Package paths computes on-disk locations for environments and their
// metadata. Path construction is pure; only EnvironmentExists and
// ListEnvironments touch the filesystem.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
)

// ErrNotFound는 요청한 환경이 존재하지 않을 때의 sentinel error다.
// 존재 여부는 이 패키지의 판정이므로 sentinel도 여기에 둔다.
var ErrNotFound = errors.New("환경을 찾을 수 없습니다")

const (
	metadataFile = "uvenv.json"
	lockfileName = "uvenv.lock"
)

// Resolver는 base 디렉토리 기준으로 환경 경로를 계산한다.
type Resolver struct {
	baseDir string
}

// New는 주어진 base 디렉토리의 Resolver를 생성한다.
func New(baseDir string) *Resolver {
	return &Resolver{baseDir: baseDir}
}

// BaseDir는 환경들이 저장되는 base 디렉토리를 반환한다.
func (r *Resolver) BaseDir() string {
	return r.baseDir
}

// EnvDir는 환경 루트 디렉토리 경로를 반환한다.
func (r *Resolver) EnvDir(name string) string {
	return filepath.Join(r.baseDir, name)
}

// BinDir는 환경의 실행 파일 디렉토리 경로를 반환한다.
// Windows에서는 Scripts, 그 외에는 bin이다.
func (r *Resolver) BinDir(name string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(r.EnvDir(name), "Scripts")
	}
	return filepath.Join(r.EnvDir(name), "bin")
}

// MetadataPath는 환경 메타데이터 파일 경로를 반환한다.
// 메타데이터는 환경 디렉토리 내부에 있어 환경 삭제 시 함께 제거된다.
func (r *Resolver) MetadataPath(name string) string {
	return filepath.Join(r.EnvDir(name), metadataFile)
}

// LockfilePath는 환경 lockfile 경로를 반환한다.
func (r *Resolver) LockfilePath(name string) string {
	return filepath.Join(r.EnvDir(name), lockfileName)
}

// EnvPython은 환경에 설치된 python 인터프리터 경로를 반환한다.
func (r *Resolver) EnvPython(name string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(r.BinDir(name), "python.exe")
	}
	return filepath.Join(r.BinDir(name), "python")
}

// EnvironmentExists는 환경 루트 디렉토리 존재 여부를 확인한다.
func (r *Resolver) EnvironmentExists(name string) bool {
	info, err := os.Stat(r.EnvDir(name))
	return err == nil && info.IsDir()
}

// ListEnvironments는 base 디렉토리 하위의 환경 이름을 사전순으로 반환한다.
// base 디렉토리가 없으면 빈 슬라이스를 반환한다.
func (r *Resolver) ListEnvironments() ([]string, error) {
	entries, err := os.ReadDir(r.baseDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("paths.ListEnvironments: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
