package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/valeriaulyamaeva/due-reminders/models"
)

// ErrMuteUnavailable wraps mute registry failures. Callers must see them: a mute
// request is never silently dropped.
var ErrMuteUnavailable = errors.New("mute setting unavailable")

type NotificationStore interface {
	ListNotifications(ctx context.Context, scope string, withoutReminders bool) ([]models.Notification, error)
	CountUnread(ctx context.Context, scope string, withoutReminders bool) (int, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context, scope string) (int64, error)
	DeleteNotification(ctx context.Context, id int64) error
}

type MuteRegistry interface {
	MuteSetting(ctx context.Context, scope string) (*models.MuteSetting, error)
	SetMuted(ctx context.Context, scope string, muted bool) (*models.MuteSetting, error)
	ToggleMuted(ctx context.Context, scope string) (*models.MuteSetting, error)
}

// Notifications serves the notification read paths. Reads go through the mute
// gate: a muted scope hides its reminder notifications without touching them.
type Notifications struct {
	store NotificationStore
	mutes MuteRegistry
}

func NewNotifications(store NotificationStore, mutes MuteRegistry) *Notifications {
	return &Notifications{store: store, mutes: mutes}
}

func scopeOrDefault(scope string) string {
	if scope == "" {
		return models.DefaultScope
	}
	return scope
}

// List returns the scope's notifications newest first, minus reminders when the scope is muted.
func (s *Notifications) List(ctx context.Context, scope string) ([]models.Notification, error) {
	scope = scopeOrDefault(scope)
	muted, err := s.hideReminders(ctx, scope)
	if err != nil {
		return nil, err
	}
	return s.store.ListNotifications(ctx, scope, muted)
}

// UnreadCount is a live count, so it cannot drift from the stored read flags.
func (s *Notifications) UnreadCount(ctx context.Context, scope string) (int, error) {
	scope = scopeOrDefault(scope)
	muted, err := s.hideReminders(ctx, scope)
	if err != nil {
		return 0, err
	}
	return s.store.CountUnread(ctx, scope, muted)
}

func (s *Notifications) MarkRead(ctx context.Context, id int64) error {
	return s.store.MarkRead(ctx, id)
}

func (s *Notifications) MarkAllRead(ctx context.Context, scope string) (int64, error) {
	return s.store.MarkAllRead(ctx, scopeOrDefault(scope))
}

func (s *Notifications) Delete(ctx context.Context, id int64) error {
	return s.store.DeleteNotification(ctx, id)
}

func (s *Notifications) Mute(ctx context.Context, scope string) (*models.MuteSetting, error) {
	setting, err := s.mutes.MuteSetting(ctx, scopeOrDefault(scope))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMuteUnavailable, err)
	}
	return setting, nil
}

// UpdateMute toggles the flag when mute is nil and sets it otherwise.
func (s *Notifications) UpdateMute(ctx context.Context, scope string, mute *bool) (*models.MuteSetting, error) {
	scope = scopeOrDefault(scope)
	var (
		setting *models.MuteSetting
		err     error
	)
	if mute == nil {
		setting, err = s.mutes.ToggleMuted(ctx, scope)
	} else {
		setting, err = s.mutes.SetMuted(ctx, scope, *mute)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMuteUnavailable, err)
	}
	log.Printf("Notifications for scope %q muted=%t", scope, setting.IsMuted)
	return setting, nil
}

func (s *Notifications) hideReminders(ctx context.Context, scope string) (bool, error) {
	setting, err := s.mutes.MuteSetting(ctx, scope)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrMuteUnavailable, err)
	}
	return setting.IsMuted, nil
}
