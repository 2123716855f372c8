// Package csvio converts between ledger records and their CSV, plain
// text, and JSON backup forms.
package csvio

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"kharch/internal/model"
)

// Diagnostic describes one rejected CSV row.
type Diagnostic struct {
	Line   int // 1-based line number in the input
	Reason string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Reason)
}

// ParseResult holds the accepted drafts plus per-row skip diagnostics.
// A bad row never aborts the parse.
type ParseResult struct {
	Drafts  []model.Draft
	Skipped []Diagnostic
}

// column indexes into a split row, -1 when the column is absent.
type columns struct {
	date, month, item, category, price, remarks int
}

// positional layout assumed when the first line is not a header row.
var positionalColumns = columns{date: 0, month: 1, item: 2, category: 3, price: 4, remarks: 5}

// ParseCSV parses free-form CSV text into draft expenses. The first
// line is treated as a header row when it mentions date, item, or
// category (case-insensitive); headers are matched by substring, so
// "Item Name" or "Price (INR)" map fine. Without headers the
// positional order date, month, item, category, price, remarks is
// assumed. Rows with a missing or unrecognizable month fall back to
// the current calendar month at now.
func ParseCSV(content string, now time.Time) ParseResult {
	var res ParseResult
	lines := strings.Split(content, "\n")
	if len(lines) == 0 {
		return res
	}

	cols := positionalColumns
	start := 0
	if hasHeaders(lines[0]) {
		cols = mapHeaders(splitLine(lines[0]))
		start = 1
	}

	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		cells := splitLine(line)
		d, reason := rowToDraft(cells, cols, now)
		if reason != "" {
			res.Skipped = append(res.Skipped, Diagnostic{Line: i + 1, Reason: reason})
			continue
		}
		res.Drafts = append(res.Drafts, d)
	}
	return res
}

func hasHeaders(first string) bool {
	l := strings.ToLower(first)
	return strings.Contains(l, "date") ||
		strings.Contains(l, "item") ||
		strings.Contains(l, "category")
}

// mapHeaders assigns column roles by substring. "date" is checked
// before "month" so a "Date of Month" style header lands on date.
func mapHeaders(headers []string) columns {
	cols := columns{date: -1, month: -1, item: -1, category: -1, price: -1, remarks: -1}
	for i, h := range headers {
		h = strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(h, "date"):
			cols.date = i
		case strings.Contains(h, "month"):
			cols.month = i
		case strings.Contains(h, "item"):
			cols.item = i
		case strings.Contains(h, "category"):
			cols.category = i
		case strings.Contains(h, "price"):
			cols.price = i
		case strings.Contains(h, "remark"):
			cols.remarks = i
		}
	}
	return cols
}

func rowToDraft(cells []string, cols columns, now time.Time) (model.Draft, string) {
	item := strings.TrimSpace(cell(cells, cols.item))
	if item == "" {
		return model.Draft{}, "missing item"
	}
	cat := strings.ToLower(strings.TrimSpace(cell(cells, cols.category)))
	if cat == "" {
		return model.Draft{}, "missing category"
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(cell(cells, cols.price)), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return model.Draft{}, "invalid price"
	}

	month := strings.ToLower(strings.TrimSpace(cell(cells, cols.month)))
	if !model.IsMonth(month) {
		month = model.CurrentMonth(now)
	}
	return model.Draft{
		Item:     item,
		Category: cat,
		Price:    price,
		Date:     parseDate(cell(cells, cols.date)),
		Month:    month,
		Remarks:  strings.TrimSpace(cell(cells, cols.remarks)),
	}, ""
}

func cell(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}

// splitLine splits one CSV line on commas, honoring double-quoted
// fields. Inside quotes a doubled quote ("") is a literal quote.
func splitLine(line string) []string {
	var (
		fields  []string
		cur     strings.Builder
		quoting bool
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if quoting && i+1 < len(line) && line[i+1] == '"' {
				cur.WriteByte('"')
				i++
			} else {
				quoting = !quoting
			}
		case c == ',' && !quoting:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

// dateLayouts covers the formats the importer accepts. Unparseable
// dates degrade to the zero time rather than rejecting the row.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006/01/02",
	"02-01-2006",
	"01/02/2006",
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
