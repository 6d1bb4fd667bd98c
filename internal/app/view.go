package app

import (
	"fmt"
	"strings"

	"github.com/llehouerou/segmented/internal/ui/styles"
)

func (m Model) View() string {
	th := styles.T()

	var b strings.Builder
	b.WriteString(styles.ApplyGradient("segmented", th.Highlight, th.Secondary))
	b.WriteString("\n\n")

	b.WriteString(m.tabs.View())
	b.WriteString("\n\n")
	b.WriteString(m.channels.View())
	b.WriteString("\n\n")
	b.WriteString(m.filters.View())
	b.WriteString("\n\n")

	b.WriteString(th.S().Muted.Render(m.statusLine()))
	b.WriteString("\n")

	if m.focus == focusInput {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString(th.S().Muted.Render(
		"click/drag select · hold for secondary · ←→ move · s/S secondary · tab focus · q quit"))

	return b.String()
}

func (m Model) statusLine() string {
	return fmt.Sprintf("tab %d%s · channel %d · filter %d%s",
		m.sel.tab, fmtSecondary(m.sel.tabSecondary),
		m.sel.channel,
		m.sel.filter, fmtSecondary(m.sel.filterSecondary))
}

func fmtSecondary(p *int) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf(" (alt %d)", *p)
}
