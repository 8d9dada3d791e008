package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// ✓/✗ 상태 라인과 목록 테이블에 쓰는 스타일 모음이다.
var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	titleStyle = lipgloss.NewStyle().Bold(true)
)

func printOK(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", okStyle.Render("✓"), fmt.Sprintf(format, args...))
}

func printFail(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", failStyle.Render("✗"), fmt.Sprintf(format, args...))
}

func printWarn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s\n", warnStyle.Render(fmt.Sprintf(format, args...)))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s\n", infoStyle.Render(fmt.Sprintf(format, args...)))
}
