package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// Coupon is an admin-managed discount rule. "Exhausted" and "expired" are
// computed predicates evaluated at read time, never persisted states.
type Coupon struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Code           string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	Description    string     `gorm:"type:text" json:"description"`
	DiscountType   string     `gorm:"type:varchar(20);not null" json:"discount_type"`
	DiscountValue  string     `gorm:"type:decimal(10,2);not null" json:"discount_value"`
	MinOrderAmount *string    `gorm:"type:decimal(10,2)" json:"min_order_amount,omitempty"`
	MaxDiscount    *string    `gorm:"type:decimal(10,2)" json:"max_discount,omitempty"`
	UsageLimit     *int       `json:"usage_limit,omitempty"`
	UsageCount     int        `gorm:"not null;default:0" json:"usage_count"`
	IsActive       bool       `gorm:"not null;default:true" json:"is_active"`
	ValidFrom      *time.Time `json:"valid_from,omitempty"`
	ValidUntil     *time.Time `json:"valid_until,omitempty"`
	CreatedAt      time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"not null" json:"updated_at"`
}

// amount parses a stored decimal(10,2) string, treating anything
// unparseable as zero.
func amount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// IsValid reports whether now falls inside the validity window. Either
// bound may be open.
func (cp *Coupon) IsValid(now time.Time) bool {
	if cp.ValidFrom != nil && now.Before(*cp.ValidFrom) {
		return false
	}
	if cp.ValidUntil != nil && now.After(*cp.ValidUntil) {
		return false
	}
	return true
}

// CanBeUsed reports overall usability: active, usage limit not reached,
// and within the validity window.
func (cp *Coupon) CanBeUsed(now time.Time) bool {
	if !cp.IsActive {
		return false
	}
	if cp.UsageLimit != nil && cp.UsageCount >= *cp.UsageLimit {
		return false
	}
	return cp.IsValid(now)
}

// CanBeAppliedToAmount checks the minimum-order constraint.
func (cp *Coupon) CanBeAppliedToAmount(orderAmount decimal.Decimal) bool {
	if cp.MinOrderAmount == nil {
		return true
	}
	return orderAmount.GreaterThanOrEqual(amount(*cp.MinOrderAmount))
}

// CalculateDiscount computes the discount for a given order amount.
// Percentage discounts are capped at MaxDiscount when set; fixed discounts
// never exceed the order amount itself. Result is rounded to 2 decimals.
func (cp *Coupon) CalculateDiscount(orderAmount decimal.Decimal) decimal.Decimal {
	value := amount(cp.DiscountValue)

	var discount decimal.Decimal
	switch cp.DiscountType {
	case DiscountTypePercentage:
		discount = orderAmount.Mul(value).Div(decimal.NewFromInt(100))
	case DiscountTypeFixed:
		discount = value
		if discount.GreaterThan(orderAmount) {
			discount = orderAmount
		}
	default:
		return decimal.Zero
	}

	if cp.MaxDiscount != nil {
		if max := amount(*cp.MaxDiscount); discount.GreaterThan(max) {
			discount = max
		}
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	return discount.Round(2)
}
