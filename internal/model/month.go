package model

import (
	"strings"
	"time"
)

// Months lists the 12 canonical month keys in calendar order.
var Months = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// monthDays is the fixed day count used for daily averages of a named
// month. February stays at 28; there is no leap-year adjustment here.
var monthDays = map[string]int{
	"january": 31, "february": 28, "march": 31, "april": 30,
	"may": 31, "june": 30, "july": 31, "august": 31,
	"september": 30, "october": 31, "november": 30, "december": 31,
}

// IsMonth reports whether key is one of the 12 canonical month keys.
func IsMonth(key string) bool {
	_, ok := monthDays[key]
	return ok
}

// MonthDays returns the fixed day count for a canonical month key,
// or 30 for anything unrecognized.
func MonthDays(key string) int {
	if d, ok := monthDays[key]; ok {
		return d
	}
	return 30
}

// CurrentMonth returns the canonical key for now's calendar month.
func CurrentMonth(now time.Time) string {
	return Months[int(now.Month())-1]
}

// DisplayMonth returns the capitalized display name for a month key.
// Unknown keys are returned as-is.
func DisplayMonth(key string) string {
	if !IsMonth(key) {
		return key
	}
	return strings.ToUpper(key[:1]) + key[1:]
}
