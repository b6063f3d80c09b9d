package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/valeriaulyamaeva/due-reminders/models"
)

// fakeStore keeps notifications, mute settings and the ledger in memory.
type fakeStore struct {
	mu            sync.Mutex
	now           time.Time
	records       []models.DueRecord
	notifications map[int64]*models.Notification
	ledger        map[string]bool
	mutes         map[string]bool
	nextID        int64
	muteErr       error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		now:           time.Date(2025, 8, 29, 8, 0, 0, 0, time.UTC),
		notifications: map[int64]*models.Notification{},
		ledger:        map[string]bool{},
		mutes:         map[string]bool{},
	}
}

func (f *fakeStore) add(scope string, kind models.NotificationType, message string) *models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.now = f.now.Add(time.Minute)
	n := &models.Notification{ID: f.nextID, Scope: scope, Type: kind, Message: message, CreatedAt: f.now}
	f.notifications[n.ID] = n
	return n
}

func (f *fakeStore) ListNotifications(_ context.Context, scope string, withoutReminders bool) ([]models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Notification{}
	for _, n := range f.notifications {
		if n.Scope != scope || (withoutReminders && n.Type == models.TypeReminder) {
			continue
		}
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeStore) CountUnread(ctx context.Context, scope string, withoutReminders bool) (int, error) {
	list, _ := f.ListNotifications(ctx, scope, withoutReminders)
	count := 0
	for _, n := range list {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) MarkRead(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.notifications[id]
	if !ok {
		return models.ErrNotFound
	}
	n.IsRead = true
	return nil
}

func (f *fakeStore) MarkAllRead(_ context.Context, scope string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var updated int64
	for _, n := range f.notifications {
		if n.Scope == scope && !n.IsRead {
			n.IsRead = true
			updated++
		}
	}
	return updated, nil
}

func (f *fakeStore) DeleteNotification(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.notifications[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.notifications, id)
	return nil
}

func (f *fakeStore) MuteSetting(_ context.Context, scope string) (*models.MuteSetting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.muteErr != nil {
		return nil, f.muteErr
	}
	return &models.MuteSetting{Scope: scope, IsMuted: f.mutes[scope]}, nil
}

func (f *fakeStore) SetMuted(_ context.Context, scope string, muted bool) (*models.MuteSetting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.muteErr != nil {
		return nil, f.muteErr
	}
	f.mutes[scope] = muted
	return &models.MuteSetting{Scope: scope, IsMuted: muted}, nil
}

func (f *fakeStore) ToggleMuted(_ context.Context, scope string) (*models.MuteSetting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.muteErr != nil {
		return nil, f.muteErr
	}
	f.mutes[scope] = !f.mutes[scope]
	return &models.MuteSetting{Scope: scope, IsMuted: f.mutes[scope]}, nil
}

func (f *fakeStore) DueRecordsFrom(_ context.Context, day time.Time) ([]models.DueRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.DueRecord
	for _, r := range f.records {
		if r.Status == models.StatusDue && r.DueDate != nil && !r.DueDate.Before(day) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) ReminderExists(_ context.Context, fp models.ReminderFingerprint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ledger[fp.String()], nil
}

func (f *fakeStore) CreateReminder(_ context.Context, n *models.Notification, fp models.ReminderFingerprint) error {
	f.mu.Lock()
	if f.ledger[fp.String()] {
		f.mu.Unlock()
		return models.ErrDuplicateReminder
	}
	f.ledger[fp.String()] = true
	f.mu.Unlock()

	created := f.add(n.Scope, models.TypeReminder, n.Message)
	*n = *created
	return nil
}
