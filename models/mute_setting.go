package models

import "time"

type MuteSetting struct {
	Scope     string    `json:"scope" db:"scope"`
	IsMuted   bool      `json:"isMuted" db:"is_muted"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
