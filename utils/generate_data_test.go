package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valeriaulyamaeva/due-reminders/models"
)

func TestRandomDueRecord(t *testing.T) {
	today := time.Date(2025, 8, 29, 15, 0, 0, 0, time.UTC)
	for i := 0; i < 50; i++ {
		r := RandomDueRecord("seed", today)
		assert.Equal(t, "seed", r.Scope)
		require.NotNil(t, r.DueDate)
		assert.True(t, r.DueDate.After(today), "due date %s", r.DueDate)
		assert.True(t, r.DueDate.Before(today.AddDate(0, 0, 15)))
		assert.True(t, r.Amount.Valid)
		assert.True(t, r.Amount.Decimal.IsPositive())
		assert.Contains(t, []models.DueStatus{models.StatusDue, models.StatusPaid}, r.Status)
	}
}
