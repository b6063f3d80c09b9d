package models

import "errors"

var (
	ErrNotFound = errors.New("запись не найдена")
	// ErrDuplicateReminder means the dedup ledger already holds the fingerprint.
	ErrDuplicateReminder = errors.New("напоминание уже создано")
)
