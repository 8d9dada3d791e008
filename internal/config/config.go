package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// Config는 uvenv 설정 파일의 최상위 구조체다.
type Config struct {
	Version            int    `toml:"version"`
	BaseDir            string `toml:"base_dir"`
	UVBinary           string `toml:"uv_binary"`
	DefaultShell       string `toml:"default_shell"`
	CommandTimeoutSecs int    `toml:"command_timeout_secs"`
}

// Default는 기본값으로 채워진 Config를 반환한다.
func Default() *Config {
	cfg := &Config{Version: 1}
	cfg.applyDefaults()
	return cfg
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본 설정을 반환한다 (graceful). 파싱 실패는 ErrConfig다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config.Load: %w: %v", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save는 Config를 TOML 파일로 저장한다 (0600 권한).
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

// CommandTimeout은 외부 명령 타임아웃을 반환한다. 음수 설정이면 0 (무제한).
func (c *Config) CommandTimeout() time.Duration {
	if c.CommandTimeoutSecs < 0 {
		return 0
	}
	return time.Duration(c.CommandTimeoutSecs) * time.Second
}

func (c *Config) applyDefaults() {
	if c.BaseDir == "" {
		c.BaseDir = filepath.Join(homeDir(), ".uvenv", "envs")
	}
	if c.UVBinary == "" {
		c.UVBinary = "uv"
	}
	if c.CommandTimeoutSecs == 0 {
		c.CommandTimeoutSecs = 600
	}
}

func (c *Config) validate() error {
	switch c.DefaultShell {
	case "", "bash", "zsh", "fish", "powershell":
	default:
		return fmt.Errorf("config.Load: %w: 지원하지 않는 default_shell: %s", ErrConfig, c.DefaultShell)
	}
	return nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
