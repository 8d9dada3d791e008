package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/uvenv/internal/config"
	"github.com/hbjs97/uvenv/internal/uv"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckUV는 uv 바이너리 존재와 버전을 확인한다.
func CheckUV(ctx context.Context, adapter *uv.Adapter) DiagResult {
	version, err := adapter.Version(ctx)
	if err != nil {
		return DiagResult{
			Name:    "uv",
			Status:  StatusFail,
			Message: "uv를 실행할 수 없습니다",
			Fix:     "https://docs.astral.sh/uv/getting-started/installation/",
		}
	}
	return DiagResult{Name: "uv", Status: StatusOK, Message: version}
}

// CheckBaseDir는 환경 base 디렉토리의 쓰기 가능 여부를 확인한다.
// 디렉토리가 아직 없으면 경고만 한다 (첫 create가 생성한다).
func CheckBaseDir(baseDir string) DiagResult {
	info, err := os.Stat(baseDir)
	if os.IsNotExist(err) {
		return DiagResult{
			Name:    "base_dir",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s 없음 (첫 create 시 생성됨)", baseDir),
		}
	}
	if err != nil || !info.IsDir() {
		return DiagResult{
			Name:    "base_dir",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s는 디렉토리가 아닙니다", baseDir),
			Fix:     "config.toml의 base_dir를 확인하세요",
		}
	}

	probe := filepath.Join(baseDir, ".uvenv-doctor")
	if err := os.WriteFile(probe, nil, 0600); err != nil {
		return DiagResult{
			Name:    "base_dir",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s에 쓰기 불가: %v", baseDir, err),
			Fix:     "디렉토리 권한을 확인하세요",
		}
	}
	_ = os.Remove(probe)

	return DiagResult{Name: "base_dir", Status: StatusOK, Message: baseDir}
}

// CheckConfig는 설정 파일을 검증한다. 파일 없음은 기본값 사용이므로 경고다.
func CheckConfig(cfgPath string) DiagResult {
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		return DiagResult{
			Name:    "config",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s 없음 (기본값 사용)", cfgPath),
		}
	}
	if _, err := config.Load(cfgPath); err != nil {
		return DiagResult{
			Name:    "config",
			Status:  StatusFail,
			Message: err.Error(),
			Fix:     fmt.Sprintf("%s를 수정하거나 삭제하세요", cfgPath),
		}
	}
	return DiagResult{Name: "config", Status: StatusOK, Message: cfgPath}
}

// Run은 전체 진단을 수행한다.
func Run(ctx context.Context, adapter *uv.Adapter, cfgPath, baseDir string) []DiagResult {
	return []DiagResult{
		CheckConfig(cfgPath),
		CheckUV(ctx, adapter),
		CheckBaseDir(baseDir),
	}
}
