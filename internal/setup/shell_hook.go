// Package setup installs uvenv shell integration into the user's
// shell configuration files.
package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/uvenv/internal/shell"
)

const installedMarker = "completion for uvenv"

// RCPath는 셸별 completion 설치 대상 파일 경로를 반환한다.
func RCPath(shellType string) string {
	home, _ := os.UserHomeDir() // 홈 디렉토리 조회 실패 시 빈 문자열
	switch shellType {
	case "zsh":
		return filepath.Join(home, ".zshrc")
	case "bash":
		return filepath.Join(home, ".bashrc")
	case "fish":
		return filepath.Join(home, ".config", "fish", "completions", "uvenv.fish")
	default:
		return ""
	}
}

// InstallCompletion은 셸 설정 파일에 uvenv completion을 설치한다.
// 이미 설치되어 있으면 건너뛴다. fish는 전용 파일을 덮어쓴다.
func InstallCompletion(shellType, rcPath string) error {
	script, err := shell.CompletionScript(shellType)
	if err != nil {
		return fmt.Errorf("setup.InstallCompletion: %w", err)
	}
	if rcPath == "" {
		return fmt.Errorf("setup.InstallCompletion: 지원하지 않는 셸: %s", shellType)
	}

	if err := os.MkdirAll(filepath.Dir(rcPath), 0755); err != nil {
		return fmt.Errorf("setup.InstallCompletion: %w", err)
	}

	if shellType == "fish" {
		// fish는 completions 디렉토리의 파일 전체가 uvenv 소유다.
		if err := os.WriteFile(rcPath, []byte(script), 0644); err != nil {
			return fmt.Errorf("setup.InstallCompletion: %w", err)
		}
		return nil
	}

	existing, _ := os.ReadFile(rcPath) // 파일이 없으면 빈 바이트
	if strings.Contains(string(existing), installedMarker) {
		return nil // 이미 설치됨
	}

	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("setup.InstallCompletion: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n%s", script); err != nil {
		return fmt.Errorf("setup.InstallCompletion: %w", err)
	}

	return nil
}
