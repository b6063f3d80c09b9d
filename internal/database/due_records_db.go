package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/due-reminders/models"
)

const dayLayout = "2006-01-02"

const dueRecordColumns = `id, scope, description, amount::text, due_date, status`

// ListDueRecordsFrom returns unpaid records due on or after day. Overdue records are not returned.
func ListDueRecordsFrom(ctx context.Context, pool *pgxpool.Pool, day time.Time) ([]models.DueRecord, error) {
	query := `
		SELECT ` + dueRecordColumns + `
		FROM due_records
		WHERE status = 'due' AND due_date >= $1::date
		ORDER BY due_date, id`

	rows, err := pool.Query(ctx, query, day.Format(dayLayout))
	if err != nil {
		return nil, fmt.Errorf("ошибка получения записей к оплате: %w", err)
	}
	return collectDueRecords(rows)
}

// ListDueRecords backs the read-only due-records view. Empty scope or status means "any".
func ListDueRecords(ctx context.Context, pool *pgxpool.Pool, scope string, status models.DueStatus) ([]models.DueRecord, error) {
	query := `
		SELECT ` + dueRecordColumns + `
		FROM due_records
		WHERE ($1 = '' OR scope = $1) AND ($2 = '' OR status = $2)
		ORDER BY due_date NULLS LAST, id`

	rows, err := pool.Query(ctx, query, scope, string(status))
	if err != nil {
		return nil, fmt.Errorf("ошибка получения записей к оплате: %w", err)
	}
	return collectDueRecords(rows)
}

func CreateDueRecord(ctx context.Context, pool *pgxpool.Pool, record *models.DueRecord) error {
	if record.Scope == "" {
		record.Scope = models.DefaultScope
	}
	if record.Status == "" {
		record.Status = models.StatusDue
	}
	var dueDate *string
	if record.DueDate != nil {
		d := record.DueDate.Format(dayLayout)
		dueDate = &d
	}

	query := `
		INSERT INTO due_records (scope, description, amount, due_date, status)
		VALUES ($1, $2, $3::numeric, $4::date, $5)
		RETURNING id`
	err := pool.QueryRow(ctx, query,
		record.Scope,
		record.Description,
		record.Amount,
		dueDate,
		string(record.Status)).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("ошибка добавления записи к оплате: %w", err)
	}
	return nil
}

func collectDueRecords(rows pgx.Rows) ([]models.DueRecord, error) {
	defer rows.Close()

	records := []models.DueRecord{}
	for rows.Next() {
		var (
			record models.DueRecord
			amount *string
			status string
		)
		if err := rows.Scan(&record.ID, &record.Scope, &record.Description, &amount, &record.DueDate, &status); err != nil {
			return nil, fmt.Errorf("ошибка чтения записи к оплате: %w", err)
		}
		record.Status = models.DueStatus(status)
		if amount != nil {
			d, err := decimal.NewFromString(*amount)
			if err != nil {
				log.Printf("Некорректная сумма у записи ID %d: %q", record.ID, *amount)
			} else {
				record.Amount = decimal.NewNullDecimal(d)
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка получения записей к оплате: %w", err)
	}
	return records, nil
}
