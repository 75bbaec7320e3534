package formatter

import (
	"fmt"
	"strings"

	"github.com/GeekPO11/dlulu/internal/domain"
)

// FormatGoalList renders goals as an aligned table with progress bars.
func FormatGoalList(goals []*domain.Goal) string {
	if len(goals) == 0 {
		return Dim("No goals yet. Create one with `dlulu goal new`.") + "\n"
	}

	headers := []string{"ID", "Goal", "Phase", "Cadence", "Progress", "Status"}
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		phaseTitle := "-"
		if p := g.ActivePhase(); p != nil {
			phaseTitle = p.Title
		}
		rows = append(rows, []string{
			TruncID(g.ID),
			StyleFg.Render(g.Title),
			phaseTitle,
			fmt.Sprintf("%dx/wk", g.CadencePerWeek),
			RenderProgress(g.ProgressPct/100, 10),
			StatusPill(g.Status),
		})
	}
	return RenderTable(headers, rows)
}

// FormatGoalDetail renders one goal with its full hierarchy.
func FormatGoalDetail(g *domain.Goal) string {
	var b strings.Builder
	b.WriteString(Header(g.Title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s  %s\n\n",
		StatusPill(g.Status),
		Dim(string(g.Archetype)),
		RenderProgress(g.ProgressPct/100, 14),
	))

	activeIdx := g.ActivePhaseIndex()
	for pi, phase := range g.Phases {
		marker := "  "
		if pi == activeIdx && g.Status == domain.GoalActive {
			marker = StyleHeader.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", marker, Bold(phase.Title), Dim(string(phase.Status))))
		for _, ms := range phase.Milestones {
			check := "○"
			if ms.IsCompleted {
				check = StyleGreen.Render("✔")
			}
			b.WriteString(fmt.Sprintf("    %s %s\n", check, ms.Title))
			for _, task := range ms.Tasks {
				line := task.Title
				switch {
				case task.Strikethrough:
					line = Dim(line + " (dropped)")
				case task.IsCompleted:
					line = Dim(line)
				}
				b.WriteString(fmt.Sprintf("      - %s\n", line))
			}
		}
	}
	return b.String()
}
