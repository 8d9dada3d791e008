package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func (a *App) newListCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "모든 가상환경을 나열한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(quiet)
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "환경 이름만 출력 (completion용)")
	return cmd
}

func (a *App) runList(quiet bool) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	_, _, reg := a.components(cfg)

	envs, err := reg.List()
	if err != nil {
		return err
	}

	if quiet {
		for _, e := range envs {
			fmt.Fprintln(a.Out, e.Name)
		}
		return nil
	}

	if len(envs) == 0 {
		printWarn(a.Out, "가상환경이 없습니다")
		return nil
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("NAME", "PYTHON", "PATH", "STATUS").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return titleStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, e := range envs {
		t.Row(e.Name, e.PythonVersion, e.Path, e.Status)
	}
	fmt.Fprintln(a.Out, t.Render())
	return nil
}
