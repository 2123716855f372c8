package csvio

import (
	"strings"
	"testing"
	"time"

	"kharch/internal/model"
)

var importNow = time.Date(2026, time.August, 10, 9, 0, 0, 0, time.UTC)

func TestParseCSVWithHeaders(t *testing.T) {
	content := "Date,Month,Item,Category,Price,Remarks\n" +
		"2026-01-05,January,Milk,food,30,daily\n" +
		"2026-01-06,january,Rent,rent,5000,\n"

	res := ParseCSV(content, importNow)
	if len(res.Skipped) != 0 {
		t.Fatalf("skipped = %v", res.Skipped)
	}
	if len(res.Drafts) != 2 {
		t.Fatalf("got %d drafts", len(res.Drafts))
	}

	d := res.Drafts[0]
	if d.Item != "Milk" || d.Category != "food" || d.Price != 30 || d.Month != "january" {
		t.Errorf("draft = %+v", d)
	}
	if d.Date.Format("2006-01-02") != "2026-01-05" {
		t.Errorf("date = %v", d.Date)
	}
	if d.Remarks != "daily" {
		t.Errorf("remarks = %q", d.Remarks)
	}
}

func TestParseCSVHeaderSubstringMapping(t *testing.T) {
	// Header names only need to contain the column word.
	content := "Item Name,Price (INR),Category Type\n" +
		"Chai,12,food\n"

	res := ParseCSV(content, importNow)
	if len(res.Drafts) != 1 {
		t.Fatalf("drafts = %v, skipped = %v", res.Drafts, res.Skipped)
	}
	d := res.Drafts[0]
	if d.Item != "Chai" || d.Price != 12 || d.Category != "food" {
		t.Errorf("draft = %+v", d)
	}
	// No month column: fall back to the import-time month.
	if d.Month != "august" {
		t.Errorf("month = %q, want august fallback", d.Month)
	}
}

func TestParseCSVPositional(t *testing.T) {
	// No header keywords on line one: positional layout applies and
	// line one is data.
	content := "2026-02-01,february,Bus pass,transport,500,monthly\n"

	res := ParseCSV(content, importNow)
	if len(res.Drafts) != 1 {
		t.Fatalf("drafts = %v, skipped = %v", res.Drafts, res.Skipped)
	}
	if res.Drafts[0].Item != "Bus pass" || res.Drafts[0].Month != "february" {
		t.Errorf("draft = %+v", res.Drafts[0])
	}
}

func TestParseCSVQuotedFields(t *testing.T) {
	content := "Date,Month,Item,Category,Price,Remarks\n" +
		`,january,"Bread, sliced",food,45,"said ""fresh"" today"` + "\n"

	res := ParseCSV(content, importNow)
	if len(res.Drafts) != 1 {
		t.Fatalf("drafts = %v, skipped = %v", res.Drafts, res.Skipped)
	}
	d := res.Drafts[0]
	if d.Item != "Bread, sliced" {
		t.Errorf("item = %q", d.Item)
	}
	if d.Remarks != `said "fresh" today` {
		t.Errorf("remarks = %q", d.Remarks)
	}
	if !d.Date.IsZero() {
		t.Errorf("empty date should stay zero, got %v", d.Date)
	}
}

func TestParseCSVSkipsBadRows(t *testing.T) {
	content := "Date,Month,Item,Category,Price,Remarks\n" +
		",january,,food,30,\n" + // no item
		",january,Milk,,30,\n" + // no category
		",january,Milk,food,zero,\n" + // bad price
		",january,Milk,food,-4,\n" + // negative price
		"\n" + // blank lines are ignored, not diagnosed
		",smarch,Milk,food,30,\n" // bad month falls back, still accepted

	res := ParseCSV(content, importNow)
	if len(res.Drafts) != 1 {
		t.Fatalf("drafts = %v", res.Drafts)
	}
	if res.Drafts[0].Month != "august" {
		t.Errorf("fallback month = %q", res.Drafts[0].Month)
	}
	if len(res.Skipped) != 4 {
		t.Fatalf("skipped = %v", res.Skipped)
	}
	// Diagnostics carry 1-based input line numbers.
	if res.Skipped[0].Line != 2 || res.Skipped[3].Line != 5 {
		t.Errorf("diagnostic lines = %v", res.Skipped)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	records := []model.Expense{
		{Item: "Bread, sliced", Category: "food", Price: 45.5, Month: "january",
			Date: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), Remarks: `with "butter"`},
		{Item: "Rent", Category: "rent", Price: 5000, Month: "february"},
	}

	res := ParseCSV(ToCSV(records), importNow)
	if len(res.Skipped) != 0 {
		t.Fatalf("round trip skipped rows: %v", res.Skipped)
	}
	if len(res.Drafts) != len(records) {
		t.Fatalf("got %d drafts, want %d", len(res.Drafts), len(records))
	}
	for i, d := range res.Drafts {
		want := records[i]
		if d.Item != want.Item || d.Category != want.Category ||
			d.Price != want.Price || d.Month != want.Month || d.Remarks != want.Remarks {
			t.Errorf("row %d: got %+v, want %+v", i, d, want)
		}
	}
}

func TestBackupRoundTrip(t *testing.T) {
	expenses := []model.Expense{{ID: 7, Item: "Milk", Category: "food", Price: 30, Month: "january"}}
	budgets := map[string]float64{"january": 1000}
	custom := []model.Category{{ID: "custom_1", Name: "Pets", Emoji: "🐕"}}

	blob, err := ToJSONBackup(expenses, budgets, custom, importNow)
	if err != nil {
		t.Fatalf("ToJSONBackup: %v", err)
	}

	got, err := ParseBackup(blob)
	if err != nil {
		t.Fatalf("ParseBackup: %v", err)
	}
	if len(got.Expenses) != 1 || got.Expenses[0].ID != 7 {
		t.Errorf("expenses = %+v", got.Expenses)
	}
	if got.Budgets["january"] != 1000 {
		t.Errorf("budgets = %v", got.Budgets)
	}
	if len(got.CustomCategories) != 1 || got.CustomCategories[0].Name != "Pets" {
		t.Errorf("custom = %v", got.CustomCategories)
	}

	if _, err := ParseBackup([]byte("{not json")); err == nil {
		t.Error("ParseBackup should reject malformed input")
	}
}

func TestToPlainText(t *testing.T) {
	records := []model.Expense{
		{Item: "Milk", Category: "food", Price: 30, Month: "january", Remarks: "daily"},
		{Item: "Rent", Category: "rent", Price: 5000, Month: "january"},
	}
	out := ToPlainText(records, "₹", importNow)
	if !strings.Contains(out, "₹5030.00") {
		t.Errorf("missing total in:\n%s", out)
	}
	if !strings.Contains(out, "1. Milk") || !strings.Contains(out, "2. Rent") {
		t.Errorf("missing entries in:\n%s", out)
	}
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{`"a,b",c`, []string{"a,b", "c"}},
		{`"he said ""hi""",x`, []string{`he said "hi"`, "x"}},
		{"a,,c", []string{"a", "", "c"}},
		{"", []string{""}},
		{`"unclosed,still one field`, []string{"unclosed,still one field"}},
	}
	for _, tt := range tests {
		got := splitLine(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("splitLine(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitLine(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func FuzzSplitLine(f *testing.F) {
	f.Add("a,b,c")
	f.Add(`"a,b",c`)
	f.Add(`"he said ""hi"""`)
	f.Add(",,,")
	f.Add(`"`)

	f.Fuzz(func(t *testing.T, line string) {
		if strings.ContainsAny(line, "\n\r") {
			t.Skip()
		}
		fields := splitLine(line)
		if len(fields) == 0 {
			t.Fatal("splitLine returned no fields")
		}
		// Commas can only disappear into quoted fields, never grow.
		unquoted := strings.Count(line, ",")
		if len(fields) > unquoted+1 {
			t.Fatalf("more fields (%d) than commas allow (%d): %q", len(fields), unquoted+1, line)
		}
	})
}
