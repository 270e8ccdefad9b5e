package domain

import "time"

type Visitor struct {
	ID         string     `json:"id" gorm:"primaryKey"`
	Name       string     `json:"name,omitempty"`
	Email      string     `json:"email,omitempty" gorm:"index"`
	Mobile     string     `json:"mobile,omitempty"`
	Verified   bool       `json:"verified"`
	VerifiedAt *time.Time `json:"verifiedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}
