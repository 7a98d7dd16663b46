package models

import "time"

// GalleryImage is a photo shown in the public gallery, ordered by Position.
type GalleryImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Filename  string    `gorm:"type:varchar(255);not null" json:"filename"`
	Category  string    `gorm:"type:varchar(50)" json:"category"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
