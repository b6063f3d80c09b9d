package utils

import (
	"context"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/due-reminders/internal/database"
	"github.com/valeriaulyamaeva/due-reminders/models"
)

// GenerateDueRecords inserts n fake obligations in scope, due within the next two weeks
// of today. Roughly one in five is already paid.
func GenerateDueRecords(ctx context.Context, pool *pgxpool.Pool, scope string, n int, today time.Time) ([]models.DueRecord, error) {
	records := make([]models.DueRecord, 0, n)
	for i := 0; i < n; i++ {
		record := RandomDueRecord(scope, today)
		if err := database.CreateDueRecord(ctx, pool, &record); err != nil {
			return records, err
		}
		records = append(records, record)
	}
	return records, nil
}

func RandomDueRecord(scope string, today time.Time) models.DueRecord {
	y, m, d := today.Date()
	due := time.Date(y, m, d+rand.Intn(14)+1, 0, 0, 0, 0, time.UTC)
	return models.DueRecord{
		Scope:       scope,
		Description: gofakeit.Company(),
		Amount:      decimal.NewNullDecimal(decimal.NewFromFloat(gofakeit.Price(10, 5000)).Round(2)),
		DueDate:     &due,
		Status:      randomDueStatus(),
	}
}

func randomDueStatus() models.DueStatus {
	if rand.Intn(5) == 0 {
		return models.StatusPaid
	}
	return models.StatusDue
}
