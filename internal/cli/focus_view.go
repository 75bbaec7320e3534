package cli

import (
	"context"
	"fmt"
	"strings"

	dluluapp "github.com/GeekPO11/dlulu/internal/app"
	"github.com/GeekPO11/dlulu/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// focusModel is the bubbletea model behind `dlulu focus`: a spinner
// while suggestions load, then a selectable list.
type focusModel struct {
	app     *App
	spin    spinner.Model
	loading bool
	err     error
	resp    *dluluapp.FocusResponse
	cursor  int
}

type focusLoadedMsg struct {
	resp *dluluapp.FocusResponse
	err  error
}

func newFocusModel(app *App) focusModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(formatter.ColorPurple)
	return focusModel{app: app, spin: s, loading: true}
}

func (m focusModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadFocus())
}

func (m focusModel) loadFocus() tea.Cmd {
	return func() tea.Msg {
		resp, err := m.app.Focus.Suggest(context.Background(), dluluapp.FocusRequest{})
		return focusLoadedMsg{resp: resp, err: err}
	}
}

func (m focusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case focusLoadedMsg:
		m.loading = false
		m.resp = msg.resp
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.resp != nil && m.cursor < len(m.resp.Suggestions)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m focusModel) View() string {
	if m.loading {
		return fmt.Sprintf("\n  %s %s\n", m.spin.View(), formatter.Dim("picking today's focus..."))
	}
	if m.err != nil {
		return fmt.Sprintf("\n  %s\n  %s\n", formatter.StyleRed.Render("Could not load suggestions."), formatter.Dim(m.err.Error()))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.Header("Today's Focus"))
	b.WriteString("\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("Scheduled load: %s", formatter.FormatMinutes(m.resp.TodayLoadMin))))
	b.WriteString("\n\n")

	for i, sug := range m.resp.Suggestions {
		marker := "  "
		title := formatter.StyleFg.Render(sug.Title)
		if i == m.cursor {
			marker = formatter.StyleHeader.Render("▸ ")
			title = formatter.Bold(sug.Title)
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %s\n",
			marker,
			title,
			formatter.StyleBlue.Render(fmt.Sprintf("(%s)", formatter.FormatMinutes(sug.EstimatedMin))),
			formatter.PriorityIndicator(sug.Priority),
		))
		if i == m.cursor && sug.Description != "" {
			b.WriteString(fmt.Sprintf("   %s\n", formatter.Dim(sug.Description)))
		}
	}

	b.WriteString("\n")
	b.WriteString(formatter.Dim("↑/↓ move  q quit"))
	b.WriteString("\n")
	return b.String()
}
