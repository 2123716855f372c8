package tui

import (
	"fmt"
	"strings"

	"kharch/internal/cli"
	"kharch/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type expensesState struct {
	cursor    int
	offset    int
	searching bool
	input     textinput.Model
}

func newExpensesState() expensesState {
	return expensesState{input: newSearchInput()}
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "search items and remarks"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	return ti
}

// updateExpensesKeys handles list navigation and mutations. Returns
// handled=false for keys the global handler should see.
func (a App) updateExpensesKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.expenses.cursor < len(a.filtered)-1 {
			a.expenses.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.expenses.cursor > 0 {
			a.expenses.cursor--
		}
		return a, nil, true
	case "g":
		a.expenses.cursor = 0
		a.expenses.offset = 0
		return a, nil, true
	case "G":
		a.expenses.cursor = len(a.filtered) - 1
		if a.expenses.cursor < 0 {
			a.expenses.cursor = 0
		}
		return a, nil, true
	case "/":
		a.expenses.searching = true
		a.expenses.input = newSearchInput()
		a.expenses.input.SetValue(a.search)
		a.expenses.input.Focus()
		return a, a.expenses.input.Cursor.BlinkCmd(), true
	case "esc":
		if a.search != "" {
			a.search = ""
			a.recompute()
		}
		return a, nil, true
	case "d":
		if len(a.filtered) == 0 {
			return a, nil, true
		}
		e := a.filtered[a.expenses.cursor]
		if err := a.ls.Delete(e.ID); err != nil {
			a.status = err.Error()
		} else {
			a.status = fmt.Sprintf("deleted %s", e.Item)
		}
		a.recompute()
		return a, nil, true
	case "enter":
		if len(a.filtered) == 0 {
			return a, nil, true
		}
		m, cmd := a.openForm(a.filtered[a.expenses.cursor].ID)
		return m, cmd, true
	}
	return a, nil, false
}

func (a App) updateExpensesSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.search = strings.TrimSpace(a.expenses.input.Value())
		a.expenses.searching = false
		a.expenses.cursor = 0
		a.expenses.offset = 0
		a.recompute()
		return a, nil
	case "esc":
		a.expenses.searching = false
		return a, nil
	}

	var cmd tea.Cmd
	a.expenses.input, cmd = a.expenses.input.Update(msg)
	return a, cmd
}

func (a App) renderExpensesTab(cw, contentH int) string {
	t := theme.Active
	cur := a.cfg.General.Currency
	reg := a.ls.Categories()
	var b strings.Builder

	if a.expenses.searching {
		b.WriteString(" " + a.expenses.input.View() + "\n")
	}

	if len(a.filtered) == 0 {
		b.WriteString("\n  No expenses match the current filter.\n")
		b.WriteString("  Press a to add one, or esc to clear the search.\n")
		return b.String()
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	itemW := cw - 56
	if itemW < 14 {
		itemW = 14
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf(" %-11s %-*s %-26s %12s", "Date", itemW, "Item", "Category", "Price")))
	b.WriteString("\n")

	// Window the list around the cursor
	visible := contentH - 3
	if a.expenses.searching {
		visible--
	}
	if visible < 1 {
		visible = 1
	}
	offset := a.expenses.offset
	if a.expenses.cursor < offset {
		offset = a.expenses.cursor
	}
	if a.expenses.cursor >= offset+visible {
		offset = a.expenses.cursor - visible + 1
	}

	end := offset + visible
	if end > len(a.filtered) {
		end = len(a.filtered)
	}

	for i := offset; i < end; i++ {
		e := a.filtered[i]
		cat := reg.Resolve(e.Category)
		line := fmt.Sprintf(" %-11s %-*s %-26s %12s",
			cli.FormatDate(e.Date),
			itemW, truncStr(e.Item, itemW),
			cat.Emoji+" "+truncStr(cat.Name, 22),
			cli.FormatAmount(e.Price, cur))
		if i == a.expenses.cursor {
			b.WriteString(selStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if len(a.filtered) > visible {
		b.WriteString(dimStyle.Render(fmt.Sprintf(" %d-%d of %d", offset+1, end, len(a.filtered))))
	}

	return b.String()
}
