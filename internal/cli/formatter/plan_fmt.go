package formatter

import (
	"fmt"
	"strings"

	"github.com/GeekPO11/dlulu/internal/app"
	"github.com/GeekPO11/dlulu/internal/domain"
)

// FormatExpand renders the outcome of a master-plan expansion.
func FormatExpand(resp *app.ExpandResponse) string {
	var b strings.Builder

	b.WriteString(Header("Master Plan"))
	b.WriteString("\n")
	if resp.FallbackApplied {
		b.WriteString(StyleYellow.Render("⚠ planner unavailable, plan built from goal settings"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(resp.Created) == 0 && len(resp.Conflicts) == 0 {
		b.WriteString(Dim("Nothing to expand."))
		b.WriteString("\n")
		return b.String()
	}

	var lastDay string
	for _, ev := range resp.Created {
		day := ev.StartAt.Format("2006-01-02")
		if day != lastDay {
			b.WriteString(Bold(ev.StartAt.Format("Mon Jan 2")) + "\n")
			lastDay = day
		}
		marker := StyleGreen.Render("+")
		label := ev.StartAt.Format("15:04")
		if ev.Type == domain.EventMilestoneDeadline {
			marker = StylePurple.Render("◆")
			label = "all day"
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n", marker, Dim(label), StyleFg.Render(ev.Title)))
	}

	if len(resp.Conflicts) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Conflicts"))
		b.WriteString("\n")
		for _, c := range resp.Conflicts {
			b.WriteString(fmt.Sprintf("%s %s  %s\n   %s\n",
				StyleRed.Render("!"),
				StyleFg.Render(c.Event.Title),
				StyleBlue.Render(EventTime(c.Event.StartAt, c.Event.EndAt, c.Event.AllDay)),
				Dim(c.Reason),
			))
		}
		b.WriteString(Dim("Run `dlulu conflicts propose <event-id>` for alternatives."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d events created, %d conflicts", len(resp.Created), len(resp.Conflicts))))
	b.WriteString("\n")
	return b.String()
}

// FormatProposals renders repair alternatives for one conflicted event.
func FormatProposals(resp *app.ConflictResponse) string {
	var b strings.Builder

	b.WriteString(Header("Alternatives"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s\n",
		StyleFg.Render(resp.Event.Title),
		StyleBlue.Render(EventTime(resp.Event.StartAt, resp.Event.EndAt, resp.Event.AllDay)),
	))
	if resp.Reason != "" {
		b.WriteString(Dim("Reason: " + resp.Reason))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(resp.Proposals) == 0 {
		b.WriteString(Dim("No free slot found within the next week."))
		b.WriteString("\n")
		return b.String()
	}

	for i, p := range resp.Proposals {
		b.WriteString(fmt.Sprintf("%s %s\n",
			Bold(fmt.Sprintf("%d.", i+1)),
			StyleGreen.Render(EventTime(p.StartAt, p.EndAt, false)),
		))
	}
	b.WriteString("\n")
	b.WriteString(Dim("Apply one with `dlulu event reschedule`."))
	b.WriteString("\n")
	return b.String()
}
