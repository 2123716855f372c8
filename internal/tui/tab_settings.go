package tui

import (
	"fmt"
	"strings"

	"kharch/internal/config"
	"kharch/internal/tui/components"
	"kharch/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type settingsState struct {
	cursor int
}

var currencies = []string{"₹", "$", "€", "£"}

func (a App) updateSettingsKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.settings.cursor < 1 {
			a.settings.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
		return a, nil, true
	case "enter", "l", "h":
		delta := 1
		if key == "h" {
			delta = -1
		}
		switch a.settings.cursor {
		case 0: // theme
			idx := 0
			for i, t := range theme.All {
				if t.Name == a.cfg.Appearance.Theme {
					idx = i
					break
				}
			}
			idx = (idx + delta + len(theme.All)) % len(theme.All)
			a.cfg.Appearance.Theme = theme.All[idx].Name
			theme.SetActive(a.cfg.Appearance.Theme)
		case 1: // currency
			idx := 0
			for i, c := range currencies {
				if c == a.cfg.General.Currency {
					idx = i
					break
				}
			}
			idx = (idx + delta + len(currencies)) % len(currencies)
			a.cfg.General.Currency = currencies[idx]
		}
		if err := config.Save(a.cfg); err != nil {
			a.status = err.Error()
		} else {
			a.status = "settings saved"
		}
		return a, nil, true
	}
	return a, nil, false
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	rows := []struct{ label, value string }{
		{"Theme", a.cfg.Appearance.Theme},
		{"Currency", a.cfg.General.Currency},
	}

	var body strings.Builder
	for i, r := range rows {
		line := fmt.Sprintf("%-12s %s", r.label, r.value)
		if i == a.settings.cursor {
			body.WriteString(selStyle.Render("▸ " + line))
		} else {
			body.WriteString(rowStyle.Render("  " + line))
		}
		body.WriteString("\n")
	}
	body.WriteString("\n")
	body.WriteString(dimStyle.Render("j/k select · enter/h/l change · saved to " + config.ConfigPath()))

	return components.ContentCard("Settings", body.String(), cw)
}
