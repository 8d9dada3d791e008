package cli

import (
	"fmt"

	"github.com/hbjs97/uvenv/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newActivateCmd() *cobra.Command {
	var shellType string

	cmd := &cobra.Command{
		Use:   "activate <name>",
		Short: "환경의 셸 activation 명령을 출력한다",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runActivate(args[0], shellType)
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "", "셸 유형 (bash, zsh, fish, powershell; 기본은 자동 감지)")
	return cmd
}

func (a *App) runActivate(name, shellType string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	p, _, _ := a.components(cfg)

	if shellType == "" {
		shellType = cfg.DefaultShell
	}

	resolver := shell.NewResolver(p)
	command, err := resolver.Resolve(name, shellType)
	if err != nil {
		return err
	}

	// eval "$(uvenv activate <name>)" 형태로 쓰이므로 명령만 출력한다.
	fmt.Fprintln(a.Out, command)
	return nil
}
