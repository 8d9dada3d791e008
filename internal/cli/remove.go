package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func (a *App) newRemoveCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "가상환경을 삭제한다",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRemove(args[0], force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "확인 없이 삭제")
	return cmd
}

func (a *App) runRemove(name string, force bool) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	_, _, reg := a.components(cfg)

	if !force {
		var confirm bool
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("환경 '%s'을(를) 삭제할까요?", name)).
			Value(&confirm)
		if err := prompt.Run(); err != nil {
			return fmt.Errorf("cli.remove: %w", err)
		}
		if !confirm {
			printWarn(a.Out, "취소되었습니다")
			return nil
		}
	}

	if err := reg.Remove(name); err != nil {
		printFail(a.Out, "환경 '%s' 삭제 실패", name)
		return err
	}

	printOK(a.Out, "환경 '%s' 삭제 완료", name)
	return nil
}
