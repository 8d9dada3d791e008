// Package uv wraps the uv CLI behind the Commander abstraction.
// Every environment mutation ultimately goes through this adapter.
package uv

import (
	"context"
	"fmt"
	"strings"

	"github.com/hbjs97/uvenv/internal/cmdexec"
)

// Adapter는 uv CLI를 Commander를 통해 실행한다.
type Adapter struct {
	cmd cmdexec.Commander
	bin string
}

// NewAdapter는 새 UV Adapter를 생성한다. bin이 비어 있으면 "uv"를 사용한다.
func NewAdapter(cmd cmdexec.Commander, bin string) *Adapter {
	if bin == "" {
		bin = "uv"
	}
	return &Adapter{cmd: cmd, bin: bin}
}

// Venv는 지정 경로에 가상환경을 생성한다.
// 실패 시 uv의 진단 출력을 에러 메시지에 포함한다.
func (a *Adapter) Venv(ctx context.Context, path, pythonVersion string) error {
	out, err := a.cmd.Run(ctx, a.bin, "venv", path, "--python", pythonVersion)
	if err != nil {
		return fmt.Errorf("uv.Venv: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// PythonInstall은 python 인터프리터를 설치한다.
func (a *Adapter) PythonInstall(ctx context.Context, version string) error {
	out, err := a.cmd.Run(ctx, a.bin, "python", "install", version)
	if err != nil {
		return fmt.Errorf("uv.PythonInstall: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// PythonList는 설치 가능한/설치된 python 목록 출력을 반환한다.
func (a *Adapter) PythonList(ctx context.Context) (string, error) {
	out, err := a.cmd.Run(ctx, a.bin, "python", "list")
	if err != nil {
		return "", fmt.Errorf("uv.PythonList: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}

// PipFreeze는 환경에 설치된 패키지 목록을 requirements 형식으로 반환한다.
func (a *Adapter) PipFreeze(ctx context.Context, envPython string) (string, error) {
	out, err := a.cmd.Run(ctx, a.bin, "pip", "freeze", "--python", envPython)
	if err != nil {
		return "", fmt.Errorf("uv.PipFreeze: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}

// PipInstallRequirements는 requirements 파일의 패키지를 환경에 설치한다.
func (a *Adapter) PipInstallRequirements(ctx context.Context, envPython, reqPath string) error {
	out, err := a.cmd.Run(ctx, a.bin, "pip", "install", "-r", reqPath, "--python", envPython)
	if err != nil {
		return fmt.Errorf("uv.PipInstallRequirements: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Version은 uv 버전 문자열을 반환한다. doctor 진단에 사용된다.
func (a *Adapter) Version(ctx context.Context) (string, error) {
	out, err := a.cmd.Run(ctx, a.bin, "--version")
	if err != nil {
		return "", fmt.Errorf("uv.Version: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
