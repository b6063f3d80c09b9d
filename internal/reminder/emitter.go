package reminder

import (
	"context"

	"github.com/valeriaulyamaeva/due-reminders/models"
)

// NotificationWriter persists a reminder and its ledger entry atomically. It must
// return models.ErrDuplicateReminder when the fingerprint is already recorded.
type NotificationWriter interface {
	CreateReminder(ctx context.Context, n *models.Notification, fp models.ReminderFingerprint) error
}

type Emitter struct {
	writer NotificationWriter
}

func NewEmitter(writer NotificationWriter) *Emitter {
	return &Emitter{writer: writer}
}

// Emit creates the reminder notification for record. The unread count is not
// tracked here; readers count is_read = false directly.
func (e *Emitter) Emit(ctx context.Context, record models.DueRecord, fp models.ReminderFingerprint) (*models.Notification, error) {
	notification := &models.Notification{
		Scope:   record.Scope,
		Message: Message(record),
		Type:    models.TypeReminder,
	}
	if notification.Scope == "" {
		notification.Scope = models.DefaultScope
	}
	if err := e.writer.CreateReminder(ctx, notification, fp); err != nil {
		return nil, err
	}
	return notification, nil
}
