package csvio

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"kharch/internal/model"
)

// csvHeader is the canonical header row for exports. ParseCSV maps
// these names back by substring, so exports round-trip.
const csvHeader = "Date,Month,Item,Category,Price,Remarks"

// ToCSV renders records as CSV text with the canonical header row.
// Item and remarks are always quoted since they carry free text.
func ToCSV(records []model.Expense) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')
	for _, e := range records {
		b.WriteString(formatDate(e.Date))
		b.WriteByte(',')
		b.WriteString(model.DisplayMonth(e.Month))
		b.WriteByte(',')
		b.WriteString(quoteField(e.Item))
		b.WriteByte(',')
		b.WriteString(e.Category)
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(e.Price, 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(quoteField(e.Remarks))
		b.WriteByte('\n')
	}
	return b.String()
}

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// ToPlainText renders records as a numbered human-readable report.
func ToPlainText(records []model.Expense, currency string, now time.Time) string {
	var total float64
	for _, e := range records {
		total += e.Price
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Expense Report - %s\n", now.Format("02 Jan 2006"))
	fmt.Fprintf(&b, "Total: %s%.2f across %d expenses\n\n", currency, total, len(records))
	for i, e := range records {
		fmt.Fprintf(&b, "%d. %s - %s%.2f (%s, %s)",
			i+1, e.Item, currency, e.Price, e.Category, model.DisplayMonth(e.Month))
		if e.Remarks != "" {
			fmt.Fprintf(&b, " - %s", e.Remarks)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Backup is the JSON backup envelope holding the full ledger state.
type Backup struct {
	Expenses         []model.Expense    `json:"expenses"`
	Budgets          map[string]float64 `json:"budgets"`
	CustomCategories []model.Category   `json:"customCategories"`
	ExportedAt       time.Time          `json:"exportedAt"`
}

// ToJSONBackup serializes the full ledger state, indented for
// hand-inspection.
func ToJSONBackup(expenses []model.Expense, budgets map[string]float64, custom []model.Category, now time.Time) ([]byte, error) {
	return json.MarshalIndent(Backup{
		Expenses:         expenses,
		Budgets:          budgets,
		CustomCategories: custom,
		ExportedAt:       now,
	}, "", "  ")
}

// ParseBackup decodes a backup blob produced by ToJSONBackup.
func ParseBackup(data []byte) (Backup, error) {
	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return Backup{}, fmt.Errorf("decoding backup: %w", err)
	}
	return b, nil
}
