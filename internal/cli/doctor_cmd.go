package cli

import (
	"fmt"

	"github.com/hbjs97/uvenv/internal/doctor"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "uvenv 실행 환경을 진단한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd)
		},
	}
}

func (a *App) runDoctor(cmd *cobra.Command) error {
	cfg, err := a.loadConfig()
	if err != nil {
		// 설정이 깨져 있어도 나머지 진단은 계속한다.
		printFail(a.Out, "config: %v", err)
		return err
	}
	_, u, _ := a.components(cfg)

	ctx, cancel := opCtx(cmd.Context(), cfg)
	defer cancel()

	failed := false
	for _, r := range doctor.Run(ctx, u, a.CfgPath, cfg.BaseDir) {
		switch r.Status {
		case doctor.StatusOK:
			printOK(a.Out, "%s: %s", r.Name, r.Message)
		case doctor.StatusWarn:
			printWarn(a.Out, "! %s: %s", r.Name, r.Message)
		case doctor.StatusFail:
			failed = true
			printFail(a.Out, "%s: %s", r.Name, r.Message)
			if r.Fix != "" {
				fmt.Fprintf(a.Out, "  → %s\n", r.Fix)
			}
		}
	}

	if failed {
		return fmt.Errorf("cli.doctor: 진단 실패 항목이 있습니다")
	}
	return nil
}
