package display

import (
	"emuscan/internal/site"
	"emuscan/internal/stringutil"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// Summary is the completion message printed after a successful run.
func Summary(report *site.Report) string {
	dir := filepath.ToSlash(filepath.Clean(report.OutputDirectory))
	if !filepath.IsAbs(report.OutputDirectory) && !strings.HasPrefix(dir, ".") {
		dir = "./" + dir
	}

	title := titleStyle.Render(fmt.Sprintf("✅ CRT-style ROM library generated in %s/", dir))

	body := strings.Join([]string{
		fmt.Sprintf("Systems: %d", report.Systems),
		fmt.Sprintf("Games:   %d", report.Games),
		fmt.Sprintf("Files:   %d (%s)", report.FilesWritten, stringutil.FormatBytes(report.BytesWritten)),
	}, "\n")

	return lipgloss.JoinVertical(lipgloss.Left, title, boxStyle.Render(body))
}
