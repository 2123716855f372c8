package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"kharch/internal/cli"
	"kharch/internal/model"
	"kharch/internal/stats"
	"kharch/internal/tui/components"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type budgetState struct {
	editing bool
	input   textinput.Model
}

func newBudgetState() budgetState {
	ti := textinput.New()
	ti.Placeholder = "amount"
	ti.Prompt = "> "
	ti.CharLimit = 12
	return budgetState{input: ti}
}

// editMonth is the month a budget edit applies to: the filtered month,
// or the current calendar month when viewing all.
func (a App) editMonth() string {
	return a.budget.Month
}

func (a App) updateBudgetKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "s", "enter":
		a.budgets.editing = true
		a.budgets.input.SetValue("")
		a.budgets.input.Focus()
		return a, a.budgets.input.Cursor.BlinkCmd(), true
	case "D":
		month := a.editMonth()
		if err := a.ls.ClearBudget(month); err != nil {
			a.status = err.Error()
		} else {
			a.status = "cleared budget for " + model.DisplayMonth(month)
		}
		a.recompute()
		return a, nil, true
	}
	return a, nil, false
}

func (a App) updateBudgetInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		raw := strings.TrimSpace(a.budgets.input.Value())
		a.budgets.editing = false
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			a.status = fmt.Sprintf("invalid amount %q", raw)
			return a, nil
		}
		if err := a.ls.SetBudget(a.editMonth(), amount); err != nil {
			a.status = err.Error()
			return a, nil
		}
		a.status = "budget saved"
		a.recompute()
		return a, nil
	case "esc":
		a.budgets.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.budgets.input, cmd = a.budgets.input.Update(msg)
	return a, cmd
}

func (a App) renderBudgetTab(cw int) string {
	cur := a.cfg.General.Currency
	bs := a.budget
	var b strings.Builder

	var body strings.Builder
	if bs.Band == model.BandUnset {
		body.WriteString("No budget set for " + model.DisplayMonth(bs.Month) + ".\n")
		fmt.Fprintf(&body, "Spent so far: %s\n", cli.FormatAmount(bs.Spent, cur))
	} else {
		barW := components.CardInnerWidth(cw) - 26
		if barW < 10 {
			barW = 10
		}
		body.WriteString(components.BudgetBar(model.DisplayMonth(bs.Month), bs.Percent, 10, barW))
		body.WriteString("\n\n")
		fmt.Fprintf(&body, "Budget:    %s\n", cli.FormatAmount(bs.Budget, cur))
		fmt.Fprintf(&body, "Spent:     %s\n", cli.FormatAmount(bs.Spent, cur))
		if bs.Remaining >= 0 {
			fmt.Fprintf(&body, "Remaining: %s\n", cli.FormatAmount(bs.Remaining, cur))
		} else {
			fmt.Fprintf(&body, "Over by:   %s\n", cli.FormatAmount(-bs.Remaining, cur))
		}
		fmt.Fprintf(&body, "Status:    %s\n", bs.Band)
	}
	body.WriteString("\n")
	if a.budgets.editing {
		body.WriteString("New budget: " + a.budgets.input.View())
	} else {
		body.WriteString("[s]et budget  [D]elete budget")
	}

	b.WriteString(components.ContentCard(
		"Budget · "+model.DisplayMonth(bs.Month), body.String(), cw))
	b.WriteString("\n")

	// All configured budgets with their consumption
	budgets := a.ls.Budgets()
	if len(budgets) > 0 {
		ledger := a.ls.Expenses()
		var list strings.Builder
		barW := components.CardInnerWidth(cw) - 26
		if barW < 10 {
			barW = 10
		}
		for _, m := range model.Months {
			if _, ok := budgets[m]; !ok {
				continue
			}
			st := stats.BudgetFor(ledger, budgets, m, time.Now())
			list.WriteString(components.BudgetBar(model.DisplayMonth(m), st.Percent, 10, barW))
			list.WriteString("\n")
		}
		b.WriteString(components.ContentCard("All Budgets", strings.TrimRight(list.String(), "\n"), cw))
	}

	return b.String()
}
