package models

import "time"

// OrderItem is a line item snapshot. Product name and unit price are
// denormalized at order time so later menu edits never alter past orders.
type OrderItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderID     uint      `gorm:"not null;index" json:"order_id"`
	Order       Order     `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ProductID   uint      `gorm:"not null" json:"product_id"`
	ProductName string    `gorm:"type:varchar(255);not null" json:"product_name"`
	UnitPrice   string    `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	Total       string    `gorm:"type:decimal(10,2);not null" json:"total"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
