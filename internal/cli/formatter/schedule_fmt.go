package formatter

import (
	"fmt"
	"strings"

	"github.com/GeekPO11/dlulu/internal/app"
)

// FormatSchedule renders the outcome of scheduling one goal.
func FormatSchedule(resp *app.ScheduleResponse) string {
	var b strings.Builder

	b.WriteString(Header("Schedule"))
	b.WriteString("\n")

	strategyLine := fmt.Sprintf("Strategy: %s, %dx/week, %s sessions",
		resp.Strategy.Archetype,
		resp.Strategy.FrequencyPerWeek,
		FormatMinutes(resp.Strategy.SessionDurationMin),
	)
	if resp.FallbackApplied {
		b.WriteString(StyleYellow.Render("⚠ planner unavailable, using default strategy"))
		b.WriteString("\n")
	}
	b.WriteString(Dim(strategyLine))
	b.WriteString("\n\n")

	if len(resp.Events) == 0 {
		b.WriteString(Dim("No sessions placed."))
		b.WriteString("\n")
	}
	for _, ev := range resp.Events {
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			StyleGreen.Render("+"),
			StyleFg.Render(ev.Title),
			StyleBlue.Render(EventTime(ev.StartAt, ev.EndAt, ev.AllDay)),
		))
	}

	for _, up := range resp.Unplaced {
		b.WriteString(fmt.Sprintf("%s %s  %s\n   %s\n",
			StyleRed.Render("!"),
			StyleFg.Render(strings.Join(up.Titles, " / ")),
			StyleBlue.Render(fmt.Sprintf("(%s)", FormatMinutes(up.DurationMin))),
			Dim("unplaced: "+up.Reason),
		))
	}

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d placed, %d unplaced", len(resp.Events), len(resp.Unplaced))))
	b.WriteString("\n")
	return b.String()
}
