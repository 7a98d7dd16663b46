package models

import "time"

// Review is a customer review. Only approved reviews appear on the
// public site; moderation happens in the back office.
type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	AuthorName string    `gorm:"type:varchar(100);not null" json:"author_name"`
	Email      string    `gorm:"type:varchar(180)" json:"email"`
	Rating     int       `gorm:"not null" json:"rating"` // 1..5
	Comment    string    `gorm:"type:text;not null" json:"comment"`
	IsApproved bool      `gorm:"not null;default:false" json:"is_approved"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
