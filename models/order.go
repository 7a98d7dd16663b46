package models

import (
	"fmt"
	"time"
)

// OrderStatus is the lifecycle state of an order. Parsing from the wire
// happens once, at the API boundary, via ParseOrderStatus.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderPreparing  OrderStatus = "preparing"
	OrderDelivering OrderStatus = "delivering"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderDelivering, OrderCompleted, OrderCancelled:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown order status: %q", s)
}

type DeliveryMode string

const (
	DeliveryModeDelivery DeliveryMode = "delivery"
	DeliveryModePickup   DeliveryMode = "pickup"
)

func ParseDeliveryMode(s string) (DeliveryMode, error) {
	switch DeliveryMode(s) {
	case DeliveryModeDelivery, DeliveryModePickup:
		return DeliveryMode(s), nil
	}
	return "", fmt.Errorf("unknown delivery mode: %q", s)
}

type PaymentMode string

const (
	PaymentModeCard PaymentMode = "card"
	PaymentModeCash PaymentMode = "cash"
)

func ParsePaymentMode(s string) (PaymentMode, error) {
	switch PaymentMode(s) {
	case PaymentModeCard, PaymentModeCash:
		return PaymentMode(s), nil
	}
	return "", fmt.Errorf("unknown payment mode: %q", s)
}

// Order is a confirmed purchase, created atomically from a cart snapshot.
// Monetary columns are decimal(10,2) stored as fixed 2-decimal strings.
// Invariant: total = subtotal + tax_amount + delivery_fee - discount_amount.
type Order struct {
	ID                   uint         `gorm:"primaryKey" json:"id"`
	No                   string       `gorm:"type:varchar(30);uniqueIndex;not null" json:"no"`
	Status               OrderStatus  `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	DeliveryMode         DeliveryMode `gorm:"type:varchar(20);not null" json:"delivery_mode"`
	PaymentMode          PaymentMode  `gorm:"type:varchar(20);not null" json:"payment_mode"`
	ClientFirstName      string       `gorm:"type:varchar(100)" json:"client_first_name"`
	ClientLastName       string       `gorm:"type:varchar(100)" json:"client_last_name"`
	ClientName           string       `gorm:"type:varchar(200)" json:"client_name"`
	ClientPhone          string       `gorm:"type:varchar(30)" json:"client_phone"`
	ClientEmail          string       `gorm:"type:varchar(180)" json:"client_email"`
	DeliveryAddress      string       `gorm:"type:varchar(255)" json:"delivery_address"`
	DeliveryZip          string       `gorm:"type:varchar(10)" json:"delivery_zip"`
	DeliveryInstructions string       `gorm:"type:text" json:"delivery_instructions"`
	DeliveryFee          string       `gorm:"type:decimal(10,2);not null;default:'0.00'" json:"delivery_fee"`
	Subtotal             string       `gorm:"type:decimal(10,2);not null;default:'0.00'" json:"subtotal"`
	TaxAmount            string       `gorm:"type:decimal(10,2);not null;default:'0.00'" json:"tax_amount"`
	DiscountAmount       string       `gorm:"type:decimal(10,2);not null;default:'0.00'" json:"discount_amount"`
	Total                string       `gorm:"type:decimal(10,2);not null;default:'0.00'" json:"total"`
	CouponID             *uint        `gorm:"index" json:"coupon_id,omitempty"`
	Coupon               *Coupon      `gorm:"foreignKey:CouponID;constraint:OnDelete:SET NULL" json:"coupon,omitempty"`
	Items                []OrderItem  `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt            time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time    `gorm:"not null" json:"updated_at"`
}
