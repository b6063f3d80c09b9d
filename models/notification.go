package models

import (
	"fmt"
	"time"
)

type NotificationType string

const (
	TypeReminder NotificationType = "reminder"
	TypeCustomer NotificationType = "customer"
	TypeIncome   NotificationType = "income"
	TypeExpense  NotificationType = "expense"
	TypeDue      NotificationType = "due"
)

// DefaultScope is the single global scope of the legacy mute switch.
const DefaultScope = "reminder"

func (t NotificationType) Valid() bool {
	switch t {
	case TypeReminder, TypeCustomer, TypeIncome, TypeExpense, TypeDue:
		return true
	}
	return false
}

type Notification struct {
	ID        int64            `json:"id" db:"id"`
	Scope     string           `json:"scope" db:"scope"`
	Message   string           `json:"message" db:"message"`
	Type      NotificationType `json:"type" db:"type"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

// ReminderFingerprint identifies the reminder of one obligation for one eligibility day.
type ReminderFingerprint struct {
	DueRecordID    int64
	EligibilityDay time.Time
}

func (f ReminderFingerprint) String() string {
	return fmt.Sprintf("due:%d:%s", f.DueRecordID, f.EligibilityDay.Format("2006-01-02"))
}
