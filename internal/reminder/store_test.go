package reminder

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/valeriaulyamaeva/due-reminders/models"
)

// memoryStore mirrors the database: the ledger check and insert happen under one lock.
type memoryStore struct {
	mu            sync.Mutex
	records       []models.DueRecord
	ledger        map[string]int64
	notifications []models.Notification
	nextID        int64

	readErr   error
	ledgerErr error
	writeErr  map[int64]error // by due record id
}

func newMemoryStore(records ...models.DueRecord) *memoryStore {
	return &memoryStore{records: records, ledger: map[string]int64{}, writeErr: map[int64]error{}}
}

func (m *memoryStore) DueRecordsFrom(_ context.Context, day time.Time) ([]models.DueRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return nil, m.readErr
	}
	var out []models.DueRecord
	for _, r := range m.records {
		if r.Status != models.StatusDue {
			continue
		}
		// Rows with unparseable dates still reach the scanner from some sources.
		if r.DueDate != nil && r.DueDate.Before(day) && !sameDay(*r.DueDate, day) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *memoryStore) ReminderExists(_ context.Context, fp models.ReminderFingerprint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ledgerErr != nil {
		return false, m.ledgerErr
	}
	_, ok := m.ledger[fp.String()]
	return ok, nil
}

func (m *memoryStore) CreateReminder(_ context.Context, n *models.Notification, fp models.ReminderFingerprint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.writeErr[fp.DueRecordID]; err != nil {
		return err
	}
	if _, ok := m.ledger[fp.String()]; ok {
		return models.ErrDuplicateReminder
	}
	m.nextID++
	n.ID = m.nextID
	n.CreatedAt = time.Now()
	m.ledger[fp.String()] = n.ID
	m.notifications = append(m.notifications, *n)
	return nil
}

func (m *memoryStore) reminders() []models.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Notification, len(m.notifications))
	copy(out, m.notifications)
	return out
}

// racyLedger always answers "not reminded", as two overlapping scans would observe.
type racyLedger struct{}

func (racyLedger) ReminderExists(context.Context, models.ReminderFingerprint) (bool, error) {
	return false, nil
}

var errStorage = errors.New("connection reset")
