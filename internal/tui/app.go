// Package tui provides the interactive Bubble Tea dashboard for kharch.
package tui

import (
	"fmt"
	"strings"
	"time"

	"kharch/internal/config"
	"kharch/internal/ledger"
	"kharch/internal/model"
	"kharch/internal/query"
	"kharch/internal/stats"
	"kharch/internal/tui/components"
	"kharch/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model.
type App struct {
	ls  *ledger.Store
	cfg config.Config

	// Filter state
	month  string // canonical month key or query.MonthAll
	search string

	// Pre-computed for current filter
	filtered []model.Expense
	summary  model.PeriodSummary
	budget   model.BudgetStatus
	monthly  []model.MonthTotal
	byCat    []model.CategoryTotal

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	status    string // transient message shown in the status bar

	// Per-tab state
	expenses expensesState
	budgets  budgetState
	settings settingsState

	// Add/edit overlay (huh form)
	form     *huh.Form
	formVals formValues
	editID   int64 // 0 while adding
}

const (
	minTerminalWidth = 70
	compactWidth     = 110
	maxContentWidth  = 170

	minContentHeight = 5
)

// NewApp creates a new TUI app model over an already-loaded ledger.
func NewApp(ls *ledger.Store, cfg config.Config) App {
	month := cfg.General.DefaultMonth
	if month != query.MonthAll && !model.IsMonth(month) {
		month = query.MonthAll
	}

	a := App{
		ls:    ls,
		cfg:   cfg,
		month: month,
	}
	a.expenses = newExpensesState()
	a.budgets = newBudgetState()
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

func (a *App) recompute() {
	all := a.ls.Expenses()
	now := time.Now()

	a.filtered = query.Apply(all, query.Filter{Month: a.month, Search: a.search})
	query.SortByCreatedDesc(a.filtered)

	a.summary = stats.Summarize(all, a.filtered, a.month, now)
	a.budget = stats.BudgetFor(all, a.ls.Budgets(), a.month, now)
	a.monthly = stats.MonthlyTotals(all)
	a.byCat = stats.CategoryTotals(a.filtered)

	if a.expenses.cursor >= len(a.filtered) {
		a.expenses.cursor = len(a.filtered) - 1
	}
	if a.expenses.cursor < 0 {
		a.expenses.cursor = 0
	}
}

// cycleMonth moves the month filter forward or backward through
// all -> january -> ... -> december -> all.
func (a *App) cycleMonth(delta int) {
	idx := 0
	for i, m := range model.Months {
		if m == a.month {
			idx = i + 1
			break
		}
	}
	idx = (idx + delta + 13) % 13
	if idx == 0 {
		a.month = query.MonthAll
	} else {
		a.month = model.Months[idx-1]
	}
	a.recompute()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.form != nil {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabExpenses && a.expenses.cursor > 0 {
				a.expenses.cursor--
			}
			return a, nil
		case tea.MouseButtonWheelDown:
			if a.activeTab == tabExpenses && a.expenses.cursor < len(a.filtered)-1 {
				a.expenses.cursor++
			}
			return a, nil
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

const (
	tabOverview = iota
	tabExpenses
	tabCharts
	tabBudget
	tabSettings
)

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// Add/edit form intercepts all keys
	if a.form != nil {
		return a.updateForm(msg)
	}

	// Text-input modes intercept all keys
	if a.activeTab == tabExpenses && a.expenses.searching {
		return a.updateExpensesSearch(msg)
	}
	if a.activeTab == tabBudget && a.budgets.editing {
		return a.updateBudgetInput(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	a.status = ""

	// Tab-specific keys first
	switch a.activeTab {
	case tabExpenses:
		if m, cmd, handled := a.updateExpensesKeys(key); handled {
			return m, cmd
		}
	case tabBudget:
		if m, cmd, handled := a.updateBudgetKeys(key); handled {
			return m, cmd
		}
	case tabSettings:
		if m, cmd, handled := a.updateSettingsKeys(key); handled {
			return m, cmd
		}
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "a":
		return a.openForm(0)
	case "[":
		a.cycleMonth(-1)
		return a, nil
	case "]":
		a.cycleMonth(1)
		return a, nil
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}

	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.form != nil {
		return a.form.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  kharch needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o e c b x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"[ ]", "Previous / Next month filter"},
		{"j k", "Navigate expense list"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"a", "Add expense"},
		{"enter", "Edit selected expense"},
		{"d", "Delete selected expense"},
		{"/", "Search items and remarks"},
		{"esc", "Clear search / Cancel"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// Header: tab bar + filter pill
	filterPillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	filterAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	filterStr := filterPillStyle.Render(" ") +
		filterAccentStyle.Render(a.filterLabel())
	if a.search != "" {
		filterStr += filterPillStyle.Render(" │ /") + filterAccentStyle.Render(a.search)
	}
	if a.status != "" {
		filterStr += filterPillStyle.Render(" │ ") + filterPillStyle.Render(a.status)
	}
	filterStr += filterPillStyle.Render(" ")

	filterRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		filterRowStyle.Render(filterStr)

	statusBar := components.RenderStatusBar(w, a.filterLabel(), len(a.filtered))

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabExpenses:
		content = a.renderExpensesTab(cw, contentH)
	case tabCharts:
		content = a.renderChartsTab(cw)
	case tabBudget:
		content = a.renderBudgetTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) filterLabel() string {
	if a.month == query.MonthAll {
		return "All Months"
	}
	return model.DisplayMonth(a.month)
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// tabAtX returns the tab index at the given X coordinate, or -1.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space in the tab bar
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 2 // two-space separator
	}
	return -1
}
