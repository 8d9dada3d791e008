package cli

import (
	"fmt"
	"strings"

	"github.com/hbjs97/uvenv/internal/python"
	"github.com/spf13/cobra"
)

func (a *App) newPythonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "python",
		Short: "uv가 관리하는 python 인터프리터를 관리한다",
	}
	cmd.AddCommand(a.newPythonInstallCmd(), a.newPythonListCmd())
	return cmd
}

func (a *App) newPythonInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install <version>",
		Short: "python 버전을 설치한다",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPythonInstall(cmd, args[0])
		},
	}
}

func (a *App) newPythonListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "사용 가능한 python 버전을 나열한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPythonList(cmd)
		},
	}
}

func (a *App) runPythonInstall(cmd *cobra.Command, version string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	_, u, _ := a.components(cfg)

	printInfo(a.Out, "Python %s 설치 중...", version)

	ctx, cancel := opCtx(cmd.Context(), cfg)
	defer cancel()

	if err := python.NewManager(u).Install(ctx, version); err != nil {
		printFail(a.Out, "Python %s 설치 실패", version)
		return err
	}

	printOK(a.Out, "Python %s 설치 완료", version)
	return nil
}

func (a *App) runPythonList(cmd *cobra.Command) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	_, u, _ := a.components(cfg)

	ctx, cancel := opCtx(cmd.Context(), cfg)
	defer cancel()

	out, err := python.NewManager(u).List(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.Out, strings.TrimRight(out, "\n"))
	return nil
}
