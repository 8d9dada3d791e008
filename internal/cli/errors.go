package cli

import (
	"github.com/hbjs97/uvenv/internal/config"
	"github.com/hbjs97/uvenv/internal/freeze"
	"github.com/hbjs97/uvenv/internal/registry"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrNotFound는 환경이 존재하지 않을 때의 sentinel error다.
	ErrNotFound = registry.ErrNotFound
	// ErrAlreadyExists는 같은 이름의 환경이 이미 있을 때의 sentinel error다.
	ErrAlreadyExists = registry.ErrAlreadyExists
	// ErrCreationFailed는 uv 호출 실패로 생성이 실패했을 때의 sentinel error다.
	ErrCreationFailed = registry.ErrCreationFailed
	// ErrRemovalFailed는 환경 삭제 실패의 sentinel error다.
	ErrRemovalFailed = registry.ErrRemovalFailed
	// ErrNoLockfile는 thaw 대상에 lockfile이 없을 때의 sentinel error다.
	ErrNoLockfile = freeze.ErrNoLockfile
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)
