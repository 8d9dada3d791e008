// Package meta reads and writes the per-environment JSON metadata file.
// Missing or corrupt files degrade to a default record instead of failing,
// so a half-usable environment still shows up in listings.
package meta

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// UnknownVersion은 메타데이터가 없을 때의 python 버전 표시값이다.
const UnknownVersion = "unknown"

// Metadata는 하나의 환경 메타데이터 레코드다.
type Metadata struct {
	Name          string  `json:"name"`
	PythonVersion string  `json:"python_version"`
	CreatedAt     string  `json:"created_at"`
	LastUsed      *string `json:"last_used"`
	Active        bool    `json:"active"`
}

// New는 생성 직후의 초기 메타데이터를 반환한다.
func New(name, pythonVersion string) *Metadata {
	return &Metadata{
		Name:          name,
		PythonVersion: pythonVersion,
		CreatedAt:     time.Now().Format(time.RFC3339),
		LastUsed:      nil,
		Active:        false,
	}
}

// Defaults는 메타데이터 없음/손상 시의 기본 레코드를 반환한다.
func Defaults(name string) *Metadata {
	return &Metadata{Name: name, PythonVersion: UnknownVersion}
}

// Read는 메타데이터 파일을 파싱한다.
// 파일 없음/파싱 실패 시 기본 레코드 반환 (graceful).
func Read(path, name string) *Metadata {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults(name)
	}
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return Defaults(name)
	}
	if m.Name == "" {
		m.Name = name
	}
	if m.PythonVersion == "" {
		m.PythonVersion = UnknownVersion
	}
	return &m
}

// Write는 메타데이터를 JSON 파일로 저장한다 (0600 권한).
func Write(path string, m *Metadata) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("meta.Write: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("meta.Write: %w", err)
	}
	return nil
}

// Status는 active 플래그를 표시 문자열로 변환한다.
func (m *Metadata) Status() string {
	if m.Active {
		return "active"
	}
	return "inactive"
}
