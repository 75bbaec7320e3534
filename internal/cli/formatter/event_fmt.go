package formatter

import (
	"github.com/GeekPO11/dlulu/internal/domain"
)

// FormatEventList renders calendar events as an aligned table.
func FormatEventList(events []*domain.CalendarEvent) string {
	if len(events) == 0 {
		return Dim("No events in this window.") + "\n"
	}

	headers := []string{"ID", "When", "Title", "Status"}
	rows := make([][]string, 0, len(events))
	for _, ev := range events {
		rows = append(rows, []string{
			TruncID(ev.ID),
			EventTime(ev.StartAt, ev.EndAt, ev.AllDay),
			StyleFg.Render(ev.Title),
			EventStatusPill(ev.Status),
		})
	}
	return RenderTable(headers, rows)
}
