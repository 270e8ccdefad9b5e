package domain

import "time"

type CommentStatus string

const (
	CommentPending  CommentStatus = "PENDING"
	CommentApproved CommentStatus = "APPROVED"
	CommentRejected CommentStatus = "REJECTED"
)

// Comment is a visitor review of a property. New comments start
// PENDING; moderation flips them to APPROVED or REJECTED. Either
// transition may be re-applied at any time, last write wins.
type Comment struct {
	ID         string        `json:"id" gorm:"primaryKey"`
	PropertyID string        `json:"propertyId" gorm:"index"`
	VisitorID  string        `json:"visitorId" gorm:"index"`
	Content    string        `json:"content" gorm:"type:text"`
	Rating     *int          `json:"rating,omitempty"`
	Status     CommentStatus `json:"status" gorm:"index"`
	Reply      *string       `json:"reply,omitempty" gorm:"type:text"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`

	Visitor  *Visitor  `json:"visitor,omitempty" gorm:"foreignKey:VisitorID"`
	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
}
