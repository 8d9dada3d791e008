package cli

import (
	"github.com/hbjs97/uvenv/internal/freeze"
	"github.com/spf13/cobra"
)

func (a *App) newLockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock <name>",
		Short: "환경의 lockfile을 생성한다",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLock(cmd, args[0])
		},
	}
}

func (a *App) newThawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "thaw <name>",
		Short: "lockfile로부터 환경을 재구축한다",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runThaw(cmd, args[0])
		},
	}
}

func (a *App) freezeManager(cmd *cobra.Command) (*freeze.Manager, func(), error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	p, u, reg := a.components(cfg)
	ctx, cancel := opCtx(cmd.Context(), cfg)
	cmd.SetContext(ctx)
	return freeze.NewManager(p, u, reg), cancel, nil
}

func (a *App) runLock(cmd *cobra.Command, name string) error {
	m, cancel, err := a.freezeManager(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	printInfo(a.Out, "환경 '%s'의 lockfile 생성 중...", name)

	if err := m.Lock(cmd.Context(), name); err != nil {
		printFail(a.Out, "환경 '%s' lockfile 생성 실패", name)
		return err
	}

	printOK(a.Out, "환경 '%s' lockfile 생성 완료", name)
	return nil
}

func (a *App) runThaw(cmd *cobra.Command, name string) error {
	m, cancel, err := a.freezeManager(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	printInfo(a.Out, "환경 '%s'을(를) lockfile로부터 재구축 중...", name)

	if err := m.Thaw(cmd.Context(), name); err != nil {
		printFail(a.Out, "환경 '%s' 재구축 실패", name)
		return err
	}

	printOK(a.Out, "환경 '%s' 재구축 완료", name)
	return nil
}
