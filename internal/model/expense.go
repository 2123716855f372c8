// Package model defines domain types for the kharch expense ledger.
package model

import "time"

// Expense is a single recorded expense entry.
//
// Month is always one of the 12 canonical lowercase month keys for a
// persisted record; it is set independently of Date, which is optional
// (zero value means "no date recorded").
type Expense struct {
	ID       int64     `json:"id"`
	Item     string    `json:"item"`
	Category string    `json:"category"`
	Price    float64   `json:"price"`
	Date     time.Time `json:"date"`
	Month    string    `json:"month"`
	Remarks  string    `json:"remarks,omitempty"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
}

// Draft is an unvalidated candidate expense prior to acceptance by the
// ledger (add, update, or import). It carries no identity or timestamps.
type Draft struct {
	Item     string
	Category string
	Price    float64
	Date     time.Time
	Month    string
	Remarks  string
}
