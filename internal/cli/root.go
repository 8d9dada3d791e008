package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/hbjs97/uvenv/internal/cmdexec"
	"github.com/hbjs97/uvenv/internal/config"
	"github.com/hbjs97/uvenv/internal/paths"
	"github.com/hbjs97/uvenv/internal/registry"
	"github.com/hbjs97/uvenv/internal/uv"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// App은 CLI 명령이 공유하는 의존성을 담는다.
// 모든 명령은 App을 통해 Commander와 설정 경로를 주입받는다.
type App struct {
	CfgPath   string
	Commander cmdexec.Commander
	Out       io.Writer
}

// NewRootCmd는 uvenv CLI의 루트 명령을 생성한다.
func NewRootCmd() *cobra.Command {
	app := &App{
		Commander: &cmdexec.RealCommander{},
		Out:       os.Stdout,
	}
	return app.RootCmd()
}

// RootCmd는 App의 의존성으로 루트 명령 트리를 구성한다.
func (a *App) RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "uvenv",
		Short:        "uv 기반 Python 가상환경 매니저",
		SilenceUsage: true,
		Version:      version,
	}

	defaultCfg := filepath.Join(homeDir(), ".config", "uvenv", "config.toml")
	if a.CfgPath == "" {
		a.CfgPath = defaultCfg
	}
	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.CfgPath, "설정 파일 경로")

	cmd.AddCommand(
		a.newCreateCmd(),
		a.newActivateCmd(),
		a.newListCmd(),
		a.newRemoveCmd(),
		a.newLockCmd(),
		a.newThawCmd(),
		a.newPythonCmd(),
		a.newShellIntegrationCmd(),
		a.newDoctorCmd(),
	)
	return cmd
}

// loadConfig는 설정을 로드한다. 파일 없음은 기본값 사용이다.
func (a *App) loadConfig() (*config.Config, error) {
	return config.Load(a.CfgPath)
}

// components는 설정으로부터 경로/uv/registry를 조립한다.
func (a *App) components(cfg *config.Config) (*paths.Resolver, *uv.Adapter, *registry.Registry) {
	p := paths.New(cfg.BaseDir)
	u := uv.NewAdapter(a.Commander, cfg.UVBinary)
	return p, u, registry.New(p, u)
}

// opCtx는 설정된 타임아웃을 적용한 컨텍스트를 반환한다.
func opCtx(parent context.Context, cfg *config.Config) (context.Context, context.CancelFunc) {
	if d := cfg.CommandTimeout(); d > 0 {
		return context.WithTimeout(parent, d)
	}
	return context.WithCancel(parent)
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
