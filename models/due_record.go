package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DueStatus string

const (
	StatusDue  DueStatus = "due"
	StatusPaid DueStatus = "paid"
)

// DueRecord is an obligation owned by the records subsystem. The reminder engine only reads it.
// DueDate is nil and Amount is invalid when the stored value is missing or cannot be parsed.
type DueRecord struct {
	ID          int64               `json:"id" db:"id"`
	Scope       string              `json:"scope" db:"scope"`
	Description string              `json:"description" db:"description"`
	Amount      decimal.NullDecimal `json:"amount" db:"amount"`
	DueDate     *time.Time          `json:"due_date" db:"due_date"`
	Status      DueStatus           `json:"status" db:"status"`
}

// IsCandidate reports whether the record can be reminded about at all.
func (r DueRecord) IsCandidate() bool {
	return r.Status == StatusDue
}
