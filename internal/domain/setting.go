package domain

import "time"

// Setting is a key/value pair; values are string-encoded and the
// caller decides the type. Settings are upserted, never deleted.
type Setting struct {
	Key         string    `json:"key" gorm:"primaryKey"`
	Value       string    `json:"value" gorm:"type:text"`
	Category    string    `json:"category" gorm:"index"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
