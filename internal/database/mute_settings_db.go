package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/due-reminders/models"
)

// GetMuteSetting upserts the scope's row so a first read creates it unmuted.
func GetMuteSetting(ctx context.Context, pool *pgxpool.Pool, scope string) (*models.MuteSetting, error) {
	query := `
		INSERT INTO mute_settings (scope) VALUES ($1)
		ON CONFLICT (scope) DO UPDATE SET scope = EXCLUDED.scope
		RETURNING scope, is_muted, updated_at`

	var setting models.MuteSetting
	err := pool.QueryRow(ctx, query, scope).Scan(&setting.Scope, &setting.IsMuted, &setting.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения настройки уведомлений для %q: %w", scope, err)
	}
	return &setting, nil
}

func SetMuted(ctx context.Context, pool *pgxpool.Pool, scope string, muted bool) (*models.MuteSetting, error) {
	query := `
		INSERT INTO mute_settings (scope, is_muted) VALUES ($1, $2)
		ON CONFLICT (scope) DO UPDATE SET is_muted = EXCLUDED.is_muted, updated_at = now()
		RETURNING scope, is_muted, updated_at`

	var setting models.MuteSetting
	err := pool.QueryRow(ctx, query, scope, muted).Scan(&setting.Scope, &setting.IsMuted, &setting.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("ошибка обновления настройки уведомлений для %q: %w", scope, err)
	}
	return &setting, nil
}

// ToggleMuted flips the flag in a single statement; a missing row becomes muted.
func ToggleMuted(ctx context.Context, pool *pgxpool.Pool, scope string) (*models.MuteSetting, error) {
	query := `
		INSERT INTO mute_settings (scope, is_muted) VALUES ($1, TRUE)
		ON CONFLICT (scope) DO UPDATE SET is_muted = NOT mute_settings.is_muted, updated_at = now()
		RETURNING scope, is_muted, updated_at`

	var setting models.MuteSetting
	err := pool.QueryRow(ctx, query, scope).Scan(&setting.Scope, &setting.IsMuted, &setting.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("ошибка переключения настройки уведомлений для %q: %w", scope, err)
	}
	return &setting, nil
}
