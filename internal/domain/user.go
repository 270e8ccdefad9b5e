package domain

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
)

// User is an admin dashboard account.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" validate:"required,email" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role"`
	Avatar       string    `json:"avatar"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PasswordReset is a pending admin password-reset code. The code is
// hashed at rest and expires after a configured TTL.
type PasswordReset struct {
	ID        string     `json:"-" gorm:"primaryKey"`
	Email     string     `json:"-" gorm:"index"`
	CodeHash  string     `json:"-"`
	ExpiresAt time.Time  `json:"-"`
	UsedAt    *time.Time `json:"-"`
	CreatedAt time.Time  `json:"-"`
}

func (PasswordReset) TableName() string { return "password_resets" }
