package models

import "time"

// Menu categories as shown on the public site.
const (
	CategoryEntrees  = "entrees"
	CategoryPlats    = "plats"
	CategoryDesserts = "desserts"
	CategoryBoissons = "boissons"
)

// MenuItem is a dish on the public menu. Prices are tax-inclusive (TTC)
// end-customer prices.
type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       string    `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string    `gorm:"type:varchar(50);not null;index" json:"category"`
	Image       string    `gorm:"type:varchar(255)" json:"image"`
	IsAvailable bool      `gorm:"not null;default:true" json:"is_available"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
