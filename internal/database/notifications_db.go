package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/due-reminders/models"
)

const notificationColumns = `id, scope, message, type, is_read, created_at`

// CreateNotification stores a notification produced outside the reminder engine.
func CreateNotification(ctx context.Context, pool *pgxpool.Pool, notification *models.Notification) error {
	if !notification.Type.Valid() {
		return fmt.Errorf("неизвестный тип уведомления %q", notification.Type)
	}
	if notification.Scope == "" {
		notification.Scope = models.DefaultScope
	}
	return insertNotification(ctx, pool, notification)
}

// CreateReminderNotification writes the ledger row and the notification in one transaction.
// It returns models.ErrDuplicateReminder when the fingerprint is already in the ledger.
func CreateReminderNotification(ctx context.Context, pool *pgxpool.Pool, notification *models.Notification, fp models.ReminderFingerprint) error {
	notification.Type = models.TypeReminder
	if notification.Scope == "" {
		notification.Scope = models.DefaultScope
	}

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		var stored string
		err := tx.QueryRow(ctx, `
			INSERT INTO reminder_ledger (fingerprint, due_record_id, eligibility_day)
			VALUES ($1, $2, $3::date)
			ON CONFLICT (fingerprint) DO NOTHING
			RETURNING fingerprint`,
			fp.String(), fp.DueRecordID, fp.EligibilityDay.Format(dayLayout)).Scan(&stored)
		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
			return models.ErrDuplicateReminder
		}
		if err != nil {
			return fmt.Errorf("ошибка записи в журнал напоминаний: %w", err)
		}

		if err := insertNotification(ctx, tx, notification); err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `UPDATE reminder_ledger SET notification_id = $1 WHERE fingerprint = $2`,
			notification.ID, stored)
		if err != nil {
			return fmt.Errorf("ошибка записи в журнал напоминаний: %w", err)
		}
		return nil
	})
}

// ReminderExists reports whether the fingerprint was already reminded about, even if the
// notification itself has since been deleted.
func ReminderExists(ctx context.Context, pool *pgxpool.Pool, fp models.ReminderFingerprint) (bool, error) {
	var exists bool
	err := pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM reminder_ledger WHERE fingerprint = $1)`,
		fp.String()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("ошибка проверки журнала напоминаний: %w", err)
	}
	return exists, nil
}

func GetNotificationByID(ctx context.Context, pool *pgxpool.Pool, notificationID int64) (*models.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`

	notification := &models.Notification{}
	err := scanNotification(pool.QueryRow(ctx, query, notificationID), notification)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("уведомление с ID %d: %w", notificationID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении уведомления: %w", err)
	}
	return notification, nil
}

// ListNotifications returns the scope's notifications, newest first.
func ListNotifications(ctx context.Context, pool *pgxpool.Pool, scope string, withoutReminders bool) ([]models.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE scope = $1 AND (NOT $2 OR type <> 'reminder')
		ORDER BY created_at DESC, id DESC`

	rows, err := pool.Query(ctx, query, scope, withoutReminders)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения уведомлений: %w", err)
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := scanNotification(rows, &n); err != nil {
			return nil, fmt.Errorf("ошибка чтения уведомления: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка получения уведомлений: %w", err)
	}
	return notifications, nil
}

func CountUnreadNotifications(ctx context.Context, pool *pgxpool.Pool, scope string, withoutReminders bool) (int, error) {
	var count int
	err := pool.QueryRow(ctx, `
		SELECT count(*) FROM notifications
		WHERE scope = $1 AND NOT is_read AND (NOT $2 OR type <> 'reminder')`,
		scope, withoutReminders).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчёта непрочитанных уведомлений: %w", err)
	}
	return count, nil
}

// MarkNotificationAsRead only ever sets is_read to true.
func MarkNotificationAsRead(ctx context.Context, pool *pgxpool.Pool, notificationID int64) error {
	result, err := pool.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1`, notificationID)
	if err != nil {
		return fmt.Errorf("ошибка обновления уведомления: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("уведомление с ID %d: %w", notificationID, models.ErrNotFound)
	}
	return nil
}

func MarkAllNotificationsAsRead(ctx context.Context, pool *pgxpool.Pool, scope string) (int64, error) {
	result, err := pool.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE scope = $1 AND NOT is_read`, scope)
	if err != nil {
		return 0, fmt.Errorf("ошибка обновления уведомлений: %w", err)
	}
	return result.RowsAffected(), nil
}

// DeleteNotification removes the notification. Its ledger row stays, so the reminder is not recreated.
func DeleteNotification(ctx context.Context, pool *pgxpool.Pool, notificationID int64) error {
	result, err := pool.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, notificationID)
	if err != nil {
		return fmt.Errorf("ошибка удаления уведомления: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("уведомление с ID %d: %w", notificationID, models.ErrNotFound)
	}
	return nil
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertNotification(ctx context.Context, q queryRower, notification *models.Notification) error {
	err := q.QueryRow(ctx, `
		INSERT INTO notifications (scope, message, type, is_read)
		VALUES ($1, $2, $3, FALSE)
		RETURNING id, is_read, created_at`,
		notification.Scope,
		notification.Message,
		string(notification.Type)).Scan(&notification.ID, &notification.IsRead, &notification.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении уведомления: %w", err)
	}
	return nil
}

func scanNotification(row pgx.Row, n *models.Notification) error {
	var kind string
	if err := row.Scan(&n.ID, &n.Scope, &n.Message, &kind, &n.IsRead, &n.CreatedAt); err != nil {
		return err
	}
	n.Type = models.NotificationType(kind)
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
