package cli

import (
	"errors"
)

// ExitCode는 uvenv의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitNotFound는 환경 없음이다.
	ExitNotFound ExitCode = 2
	// ExitAlreadyExists는 환경 중복이다.
	ExitAlreadyExists ExitCode = 3
	// ExitCreationFailed는 uv 호출 실패로 인한 생성 실패다.
	ExitCreationFailed ExitCode = 4
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 5
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrAlreadyExists):
		return ExitAlreadyExists
	case errors.Is(err, ErrCreationFailed):
		return ExitCreationFailed
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitGeneral
	}
}
