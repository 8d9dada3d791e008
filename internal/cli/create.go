package cli

import (
	"github.com/spf13/cobra"
)

func (a *App) newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name> <python-version>",
		Short: "새 가상환경을 생성한다",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCreate(cmd, args[0], args[1])
		},
	}
}

func (a *App) runCreate(cmd *cobra.Command, name, pythonVersion string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	_, _, reg := a.components(cfg)

	printInfo(a.Out, "환경 '%s' 생성 중 (Python %s)...", name, pythonVersion)

	ctx, cancel := opCtx(cmd.Context(), cfg)
	defer cancel()

	if err := reg.Create(ctx, name, pythonVersion); err != nil {
		printFail(a.Out, "환경 '%s' 생성 실패", name)
		return err
	}

	printOK(a.Out, "환경 '%s' 생성 완료", name)
	return nil
}
