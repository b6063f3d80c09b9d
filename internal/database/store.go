package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/due-reminders/models"
)

// Store binds the package functions to a pool so the reminder engine and the
// HTTP services can depend on narrow interfaces instead of *pgxpool.Pool.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) DueRecordsFrom(ctx context.Context, day time.Time) ([]models.DueRecord, error) {
	return ListDueRecordsFrom(ctx, s.pool, day)
}

func (s *Store) DueRecords(ctx context.Context, scope string, status models.DueStatus) ([]models.DueRecord, error) {
	return ListDueRecords(ctx, s.pool, scope, status)
}

func (s *Store) ReminderExists(ctx context.Context, fp models.ReminderFingerprint) (bool, error) {
	return ReminderExists(ctx, s.pool, fp)
}

func (s *Store) CreateReminder(ctx context.Context, n *models.Notification, fp models.ReminderFingerprint) error {
	return CreateReminderNotification(ctx, s.pool, n, fp)
}

func (s *Store) ListNotifications(ctx context.Context, scope string, withoutReminders bool) ([]models.Notification, error) {
	return ListNotifications(ctx, s.pool, scope, withoutReminders)
}

func (s *Store) CountUnread(ctx context.Context, scope string, withoutReminders bool) (int, error) {
	return CountUnreadNotifications(ctx, s.pool, scope, withoutReminders)
}

func (s *Store) MarkRead(ctx context.Context, id int64) error {
	return MarkNotificationAsRead(ctx, s.pool, id)
}

func (s *Store) MarkAllRead(ctx context.Context, scope string) (int64, error) {
	return MarkAllNotificationsAsRead(ctx, s.pool, scope)
}

func (s *Store) DeleteNotification(ctx context.Context, id int64) error {
	return DeleteNotification(ctx, s.pool, id)
}

func (s *Store) MuteSetting(ctx context.Context, scope string) (*models.MuteSetting, error) {
	return GetMuteSetting(ctx, s.pool, scope)
}

func (s *Store) SetMuted(ctx context.Context, scope string, muted bool) (*models.MuteSetting, error) {
	return SetMuted(ctx, s.pool, scope, muted)
}

func (s *Store) ToggleMuted(ctx context.Context, scope string) (*models.MuteSetting, error) {
	return ToggleMuted(ctx, s.pool, scope)
}
