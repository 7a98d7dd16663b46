package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bistronome/restaurant-app/models"
	"github.com/bistronome/restaurant-app/utils"
)

func setupTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.MenuItem{}, &models.Coupon{},
		&models.Order{}, &models.OrderItem{},
		&models.Reservation{}, &models.Review{}, &models.ContactMessage{},
	))
	return db
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestValidateUnknownCode(t *testing.T) {
	db := setupTestDB(t, "coupon_unknown")
	svc := NewCouponService(db)

	_, err := svc.Validate("NOPE", dec("50.00"))
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestValidateNormalizesCode(t *testing.T) {
	db := setupTestDB(t, "coupon_normalize")
	svc := NewCouponService(db)

	db.Create(&models.Coupon{
		Code: "WELCOME5", DiscountType: models.DiscountTypeFixed,
		DiscountValue: "5.00", IsActive: true,
	})

	result, err := svc.Validate("  welcome5  ", dec("50.00"))
	require.NoError(t, err)
	assert.Equal(t, "WELCOME5", result.Code)
	assert.Equal(t, "5.00", result.DiscountAmount)
	assert.Equal(t, "45.00", result.NewTotal)
}

func TestValidateInactiveCoupon(t *testing.T) {
	db := setupTestDB(t, "coupon_inactive")
	svc := NewCouponService(db)

	db.Create(&models.Coupon{
		Code: "OLD", DiscountType: models.DiscountTypeFixed,
		DiscountValue: "5.00", IsActive: false,
	})

	_, err := svc.Validate("OLD", dec("50.00"))
	assert.ErrorIs(t, err, utils.ErrInvalidState)
}

func TestValidateExpiredCoupon(t *testing.T) {
	db := setupTestDB(t, "coupon_expired")
	svc := NewCouponService(db)

	past := time.Now().Add(-24 * time.Hour)
	db.Create(&models.Coupon{
		Code: "EXPIRED", DiscountType: models.DiscountTypePercentage,
		DiscountValue: "10.00", IsActive: true, ValidUntil: &past,
	})

	_, err := svc.Validate("EXPIRED", dec("100.00"))
	assert.ErrorIs(t, err, utils.ErrInvalidState)
}

func TestValidateExhaustedCoupon(t *testing.T) {
	db := setupTestDB(t, "coupon_exhausted")
	svc := NewCouponService(db)

	db.Create(&models.Coupon{
		Code: "FULL", DiscountType: models.DiscountTypeFixed,
		DiscountValue: "5.00", IsActive: true,
		UsageLimit: intPtr(3), UsageCount: 3,
	})

	_, err := svc.Validate("FULL", dec("50.00"))
	assert.ErrorIs(t, err, utils.ErrInvalidState)
}

func TestValidateMinimumOrderAmount(t *testing.T) {
	db := setupTestDB(t, "coupon_minimum")
	svc := NewCouponService(db)

	db.Create(&models.Coupon{
		Code: "PROMO10", DiscountType: models.DiscountTypePercentage,
		DiscountValue: "10.00", IsActive: true,
		MinOrderAmount: strPtr("20.00"),
	})

	_, err := svc.Validate("PROMO10", dec("15.00"))
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	assert.Contains(t, err.Error(), "20.00")

	result, err := svc.Validate("PROMO10", dec("20.00"))
	require.NoError(t, err)
	assert.Equal(t, "2.00", result.DiscountAmount)
}

func TestValidatePercentageCappedAtMaxDiscount(t *testing.T) {
	db := setupTestDB(t, "coupon_cap")
	svc := NewCouponService(db)

	db.Create(&models.Coupon{
		Code: "SUMMER20", DiscountType: models.DiscountTypePercentage,
		DiscountValue: "20.00", IsActive: true,
		MaxDiscount: strPtr("10.00"),
	})

	result, err := svc.Validate("SUMMER20", dec("100.00"))
	require.NoError(t, err)
	assert.Equal(t, "10.00", result.DiscountAmount)
	assert.Equal(t, "90.00", result.NewTotal)
}

func TestValidateFixedNeverExceedsOrderAmount(t *testing.T) {
	db := setupTestDB(t, "coupon_clamp")
	svc := NewCouponService(db)

	db.Create(&models.Coupon{
		Code: "WELCOME5", DiscountType: models.DiscountTypeFixed,
		DiscountValue: "5.00", IsActive: true,
	})

	result, err := svc.Validate("WELCOME5", dec("3.00"))
	require.NoError(t, err)
	assert.Equal(t, "3.00", result.DiscountAmount)
	assert.Equal(t, "0.00", result.NewTotal)
}

func TestValidateDoesNotTouchUsageCount(t *testing.T) {
	db := setupTestDB(t, "coupon_readonly")
	svc := NewCouponService(db)

	db.Create(&models.Coupon{
		Code: "KEEP", DiscountType: models.DiscountTypeFixed,
		DiscountValue: "5.00", IsActive: true, UsageLimit: intPtr(10),
	})

	_, err := svc.Validate("KEEP", dec("50.00"))
	require.NoError(t, err)

	var coupon models.Coupon
	require.NoError(t, db.Where("code = ?", "KEEP").First(&coupon).Error)
	assert.Equal(t, 0, coupon.UsageCount)
}

func TestApplyIncrementsUsage(t *testing.T) {
	db := setupTestDB(t, "coupon_apply")
	svc := NewCouponService(db)

	coupon := models.Coupon{
		Code: "APPLY", DiscountType: models.DiscountTypeFixed,
		DiscountValue: "5.00", IsActive: true, UsageLimit: intPtr(2),
	}
	db.Create(&coupon)

	require.NoError(t, svc.Apply(coupon.ID))
	require.NoError(t, svc.Apply(coupon.ID))

	var got models.Coupon
	require.NoError(t, db.First(&got, coupon.ID).Error)
	assert.Equal(t, 2, got.UsageCount)

	// Third apply hits the limit; usage count stays put.
	err := svc.Apply(coupon.ID)
	assert.ErrorIs(t, err, utils.ErrInvalidState)

	require.NoError(t, db.First(&got, coupon.ID).Error)
	assert.Equal(t, 2, got.UsageCount)
}

func TestApplyUnknownCoupon(t *testing.T) {
	db := setupTestDB(t, "coupon_apply_missing")
	svc := NewCouponService(db)

	err := svc.Apply(12345)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestListActive(t *testing.T) {
	db := setupTestDB(t, "coupon_list")
	svc := NewCouponService(db)

	past := time.Now().Add(-24 * time.Hour)
	db.Create(&models.Coupon{Code: "A", DiscountType: models.DiscountTypeFixed, DiscountValue: "5.00", IsActive: true})
	db.Create(&models.Coupon{Code: "B", DiscountType: models.DiscountTypeFixed, DiscountValue: "5.00", IsActive: false})
	db.Create(&models.Coupon{Code: "C", DiscountType: models.DiscountTypeFixed, DiscountValue: "5.00", IsActive: true, ValidUntil: &past})

	list, err := svc.ListActive()
	require.NoError(t, err)
	require.Len(t, list, 2)

	byCode := map[string]CouponInfo{}
	for _, info := range list {
		byCode[info.Code] = info
	}
	assert.True(t, byCode["A"].CanBeUsed)
	assert.False(t, byCode["C"].CanBeUsed, "expired coupon is listed but not usable")
	assert.False(t, byCode["C"].IsValid)
}
