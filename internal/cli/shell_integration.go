package cli

import (
	"fmt"

	"github.com/hbjs97/uvenv/internal/setup"
	"github.com/hbjs97/uvenv/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newShellIntegrationCmd() *cobra.Command {
	var shellType string
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "shell-integration",
		Short: "셸 completion을 설치하거나 출력한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShellIntegration(shellType, printOnly)
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "", "셸 유형 (bash, zsh, fish; 기본은 자동 감지)")
	cmd.Flags().BoolVar(&printOnly, "print", false, "설치하지 않고 스크립트만 출력")
	return cmd
}

func (a *App) runShellIntegration(shellType string, printOnly bool) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if shellType == "" {
		shellType = cfg.DefaultShell
	}
	if shellType == "" {
		shellType = shell.Detect()
	}

	if printOnly {
		script, err := shell.CompletionScript(shellType)
		if err != nil {
			return err
		}
		fmt.Fprint(a.Out, script)
		return nil
	}

	rcPath := setup.RCPath(shellType)
	if err := setup.InstallCompletion(shellType, rcPath); err != nil {
		printFail(a.Out, "%s completion 설치 실패", shellType)
		return err
	}

	printOK(a.Out, "%s completion 설치 완료: %s", shellType, rcPath)
	return nil
}
