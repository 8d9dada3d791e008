package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/hbjs97/uvenv/internal/paths"
)

// Resolver는 환경 + 셸 유형을 activation 명령 문자열로 변환한다.
// 내부 상태 없는 순수 request/response 매핑이다.
type Resolver struct {
	paths *paths.Resolver
}

// NewResolver는 새 activation Resolver를 생성한다.
func NewResolver(p *paths.Resolver) *Resolver {
	return &Resolver{paths: p}
}

// Resolve는 환경의 셸별 activation 명령을 반환한다.
// shellType이 비어 있으면 Detect로 감지한다.
func (r *Resolver) Resolve(name, shellType string) (string, error) {
	if !r.paths.EnvironmentExists(name) {
		return "", fmt.Errorf("shell.Resolve: %w: %s", paths.ErrNotFound, name)
	}
	if shellType == "" {
		shellType = Detect()
	}
	return Command(r.paths.BinDir(name), shellType), nil
}

// Command는 bin 디렉토리와 셸 유형에 대한 activation 명령을 반환한다.
func Command(binDir, shellType string) string {
	switch shellType {
	case "fish":
		return fmt.Sprintf("source %s", filepath.Join(binDir, "activate.fish"))
	case "powershell":
		return fmt.Sprintf("& %s", filepath.Join(binDir, "Activate.ps1"))
	default: // bash, zsh, 미인식 셸
		return fmt.Sprintf("source %s", filepath.Join(binDir, "activate"))
	}
}

// DeactivationCommand는 deactivation 명령을 반환한다.
// venv가 설치하는 shell function 이름이라 셸과 무관하게 동일하다.
func DeactivationCommand(shellType string) string {
	_ = shellType
	return "deactivate"
}

// Detect는 SHELL 환경변수와 OS에서 현재 셸을 감지한다.
// 판정 불가 시 bash를 반환한다.
func Detect() string {
	sh := os.Getenv("SHELL")
	switch {
	case strings.Contains(sh, "bash"):
		return "bash"
	case strings.Contains(sh, "zsh"):
		return "zsh"
	case strings.Contains(sh, "fish"):
		return "fish"
	case runtime.GOOS == "windows":
		return "powershell"
	default:
		return "bash"
	}
}
