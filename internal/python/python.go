// Package python manages uv-installed python interpreters.
package python

import (
	"context"
	"fmt"

	"github.com/hbjs97/uvenv/internal/uv"
)

// Manager는 uv가 관리하는 python 인터프리터 설치/조회를 담당한다.
type Manager struct {
	uv *uv.Adapter
}

// NewManager는 새 python Manager를 생성한다.
func NewManager(u *uv.Adapter) *Manager {
	return &Manager{uv: u}
}

// Install은 지정 버전의 python을 설치한다.
func (m *Manager) Install(ctx context.Context, version string) error {
	if version == "" {
		return fmt.Errorf("python.Install: 빈 버전")
	}
	if err := m.uv.PythonInstall(ctx, version); err != nil {
		return fmt.Errorf("python.Install: %w", err)
	}
	return nil
}

// List는 uv python list의 출력을 그대로 반환한다.
func (m *Manager) List(ctx context.Context) (string, error) {
	out, err := m.uv.PythonList(ctx)
	if err != nil {
		return "", fmt.Errorf("python.List: %w", err)
	}
	return out, nil
}
