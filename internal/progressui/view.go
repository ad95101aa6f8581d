package progressui

import (
	"fmt"
	"strings"
	"time"

	"github.com/lakshaymaurya-felt/winshred/internal/ui"
)

func (m Model) View() string {
	// The command prints the final summary after the program exits.
	if m.result != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + ui.TitleStyle.Render(m.title) + "\n\n")
	b.WriteString("  " + m.bar.View() + "\n\n")

	p := m.last
	if p.TotalPasses > 0 {
		line := fmt.Sprintf("  Pass %d/%d   %s written", p.Pass, p.TotalPasses, ui.HumanBytes(p.BytesWritten))
		if p.ETA > 0 {
			line += "   ETA " + ui.HumanDuration(p.ETA)
		}
		b.WriteString(ui.MutedStyle.Render(line) + "\n")
		if p.Status != "" {
			b.WriteString(ui.MutedStyle.Render("  "+p.Status) + "\n")
		}
	} else {
		b.WriteString(ui.MutedStyle.Render("  Starting…") + "\n")
	}

	b.WriteString("\n")
	if m.cancelling {
		b.WriteString(ui.WarningStyle.Render("  Cancelling, finishing current block…") + "\n")
	} else {
		b.WriteString(ui.MutedStyle.Render(
			"  elapsed "+ui.HumanDuration(time.Since(m.started))+"   press q to cancel") + "\n")
	}
	return b.String()
}
