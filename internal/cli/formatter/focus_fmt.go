package formatter

import (
	"fmt"
	"strings"

	"github.com/GeekPO11/dlulu/internal/app"
)

// FormatFocus formats today's focus suggestions as a styled dashboard.
func FormatFocus(resp *app.FocusResponse) string {
	var b strings.Builder

	b.WriteString(Header("Today's Focus"))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Scheduled load: %s", FormatMinutes(resp.TodayLoadMin))))
	b.WriteString("\n\n")

	if len(resp.Suggestions) == 0 {
		b.WriteString(Dim("Nothing to suggest."))
		b.WriteString("\n")
		return b.String()
	}

	for i, sug := range resp.Suggestions {
		titleLine := fmt.Sprintf("%s %s  %s  %s",
			Bold(fmt.Sprintf("%d.", i+1)),
			StyleFg.Render(sug.Title),
			StyleBlue.Render(fmt.Sprintf("(%s)", FormatMinutes(sug.EstimatedMin))),
			PriorityIndicator(sug.Priority),
		)
		b.WriteString(titleLine + "\n")

		if sug.Description != "" {
			b.WriteString(fmt.Sprintf("   %s\n", Dim(sug.Description)))
		}
		if sug.GoalID != "" {
			b.WriteString(fmt.Sprintf("   %s\n", Dim("Goal: "+sug.GoalID)))
		}
		if i < len(resp.Suggestions)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
