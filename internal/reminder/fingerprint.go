package reminder

import (
	"fmt"
	"time"

	"github.com/valeriaulyamaeva/due-reminders/models"
)

const messageDateLayout = "02 Jan 2006"

// StartOfDay truncates t to midnight of its calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// EligibilityDay is the day before the due date: the only day a reminder is sent.
func EligibilityDay(dueDate time.Time, loc *time.Location) time.Time {
	y, m, d := dueDate.Date()
	return time.Date(y, m, d-1, 0, 0, 0, 0, loc)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Fingerprint keys the ledger by record id, so two records with the same amount and date stay distinct.
func Fingerprint(record models.DueRecord, day time.Time) models.ReminderFingerprint {
	return models.ReminderFingerprint{DueRecordID: record.ID, EligibilityDay: day}
}

// Message renders the reminder text. The format does not depend on the host locale.
func Message(record models.DueRecord) string {
	text := fmt.Sprintf("Reminder: payment of %s is due on %s",
		record.Amount.Decimal.StringFixed(2), record.DueDate.Format(messageDateLayout))
	if record.Description != "" {
		text += " (" + record.Description + ")"
	}
	return text
}
