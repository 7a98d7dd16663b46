package services

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bistronome/restaurant-app/models"
	"github.com/bistronome/restaurant-app/utils"
)

// CouponService encapsulates coupon validation, application (usage
// increment) and listing, keeping controllers on HTTP concerns only.
type CouponService struct {
	DB *gorm.DB
}

func NewCouponService(db *gorm.DB) *CouponService {
	return &CouponService{DB: db}
}

// CouponDiscount is the validation result. Monetary values are fixed
// 2-decimal strings.
type CouponDiscount struct {
	CouponID       uint   `json:"couponId"`
	Code           string `json:"code"`
	DiscountType   string `json:"discountType"`
	DiscountValue  string `json:"discountValue"`
	DiscountAmount string `json:"discountAmount"`
	NewTotal       string `json:"newTotal"`
}

// Validate checks a coupon code against an order amount and computes the
// discount breakdown. Read-only: usage count is not touched here.
func (s *CouponService) Validate(code string, orderAmount decimal.Decimal) (*CouponDiscount, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	var coupon models.Coupon
	if err := s.DB.Where("code = ?", code).First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("invalid coupon code")
		}
		return nil, err
	}

	now := time.Now()
	if !coupon.IsActive {
		return nil, utils.InvalidStatef("coupon not active")
	}
	if !coupon.CanBeUsed(now) {
		return nil, utils.InvalidStatef("coupon no longer available")
	}
	if !coupon.CanBeAppliedToAmount(orderAmount) {
		min := utils.ParseAmount(*coupon.MinOrderAmount)
		return nil, utils.InvalidInputf("minimum order amount not reached (minimum: %s)", utils.FormatAmount(min))
	}

	discount := coupon.CalculateDiscount(orderAmount)

	return &CouponDiscount{
		CouponID:       coupon.ID,
		Code:           coupon.Code,
		DiscountType:   coupon.DiscountType,
		DiscountValue:  coupon.DiscountValue,
		DiscountAmount: utils.FormatAmount(discount),
		NewTotal:       utils.FormatAmount(orderAmount.Sub(discount)),
	}, nil
}

// Apply increments the coupon usage count. Called only after an order is
// confirmed, never during validation. The increment is a conditional
// UPDATE guarded in SQL, so concurrent applies cannot push usage_count
// past usage_limit.
func (s *CouponService) Apply(couponID uint) error {
	var coupon models.Coupon
	if err := s.DB.First(&coupon, couponID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundf("coupon not found: %d", couponID)
		}
		return err
	}

	if !coupon.CanBeUsed(time.Now()) {
		return utils.InvalidStatef("coupon no longer available")
	}

	res := s.DB.Model(&models.Coupon{}).
		Where("id = ? AND is_active = ?", couponID, true).
		Where("usage_limit IS NULL OR usage_count < usage_limit").
		UpdateColumn("usage_count", gorm.Expr("usage_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Lost the race against a concurrent apply.
		return utils.InvalidStatef("coupon no longer available")
	}
	return nil
}

// CouponInfo is the listing shape, with the computed predicates exposed
// as flags.
type CouponInfo struct {
	ID             uint       `json:"id"`
	Code           string     `json:"code"`
	Description    string     `json:"description"`
	DiscountType   string     `json:"discountType"`
	DiscountValue  string     `json:"discountValue"`
	MinOrderAmount *string    `json:"minOrderAmount"`
	MaxDiscount    *string    `json:"maxDiscount"`
	UsageLimit     *int       `json:"usageLimit"`
	UsageCount     int        `json:"usageCount"`
	ValidFrom      *time.Time `json:"validFrom"`
	ValidUntil     *time.Time `json:"validUntil"`
	IsValid        bool       `json:"isValid"`
	CanBeUsed      bool       `json:"canBeUsed"`
}

// ListActive returns active coupons, newest first.
func (s *CouponService) ListActive() ([]CouponInfo, error) {
	var coupons []models.Coupon
	if err := s.DB.Where("is_active = ?", true).Order("created_at DESC").Find(&coupons).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]CouponInfo, 0, len(coupons))
	for _, cp := range coupons {
		out = append(out, CouponInfo{
			ID:             cp.ID,
			Code:           cp.Code,
			Description:    cp.Description,
			DiscountType:   cp.DiscountType,
			DiscountValue:  cp.DiscountValue,
			MinOrderAmount: cp.MinOrderAmount,
			MaxDiscount:    cp.MaxDiscount,
			UsageLimit:     cp.UsageLimit,
			UsageCount:     cp.UsageCount,
			ValidFrom:      cp.ValidFrom,
			ValidUntil:     cp.ValidUntil,
			IsValid:        cp.IsValid(now),
			CanBeUsed:      cp.CanBeUsed(now),
		})
	}
	return out, nil
}
