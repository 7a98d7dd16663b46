package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bistronome/restaurant-app/models"
	"github.com/bistronome/restaurant-app/services"
	"github.com/bistronome/restaurant-app/utils"
)

type CouponController struct {
	DB      *gorm.DB
	Coupons *services.CouponService
}

func NewCouponController(db *gorm.DB, coupons *services.CouponService) *CouponController {
	return &CouponController{DB: db, Coupons: coupons}
}

// Validate -> POST /api/coupon/validate {code, orderAmount}
// Read-only: computes the discount breakdown without touching usage.
func (cc *CouponController) Validate(c *gin.Context) {
	var req struct {
		Code        string   `json:"code" binding:"required"`
		OrderAmount *float64 `json:"orderAmount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	result, err := cc.Coupons.Validate(req.Code, decimal.NewFromFloat(*req.OrderAmount))
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Coupon applied successfully", result)
}

// Apply -> POST /api/coupon/apply/:coupon_id, increments usage count
func (cc *CouponController) Apply(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("coupon_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid coupon id"))
		return
	}

	if err := cc.Coupons.Apply(uint(id)); err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Coupon usage recorded", nil)
}

// List -> GET /api/coupon/list, active coupons with computed flags
func (cc *CouponController) List(c *gin.Context) {
	coupons, err := cc.Coupons.ListActive()
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Active coupons", coupons)
}

type couponRequest struct {
	Code           string     `json:"code" binding:"required"`
	Description    string     `json:"description"`
	DiscountType   string     `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue  string     `json:"discount_value" binding:"required"`
	MinOrderAmount *string    `json:"min_order_amount"`
	MaxDiscount    *string    `json:"max_discount"`
	UsageLimit     *int       `json:"usage_limit"`
	IsActive       *bool      `json:"is_active"`
	ValidFrom      *time.Time `json:"valid_from"`
	ValidUntil     *time.Time `json:"valid_until"`
}

func (r *couponRequest) apply(coupon *models.Coupon) {
	coupon.Code = strings.ToUpper(strings.TrimSpace(r.Code))
	coupon.Description = r.Description
	coupon.DiscountType = r.DiscountType
	coupon.DiscountValue = utils.FormatAmount(utils.ParseAmount(r.DiscountValue))
	coupon.MinOrderAmount = normalizeAmount(r.MinOrderAmount)
	coupon.MaxDiscount = normalizeAmount(r.MaxDiscount)
	coupon.UsageLimit = r.UsageLimit
	coupon.ValidFrom = r.ValidFrom
	coupon.ValidUntil = r.ValidUntil
	if r.IsActive != nil {
		coupon.IsActive = *r.IsActive
	}
}

func normalizeAmount(s *string) *string {
	if s == nil {
		return nil
	}
	v := utils.FormatAmount(utils.ParseAmount(*s))
	return &v
}

// CreateCoupon -> admin
func (cc *CouponController) CreateCoupon(c *gin.Context) {
	var req couponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	coupon := models.Coupon{IsActive: true}
	req.apply(&coupon)

	if err := cc.DB.Create(&coupon).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Coupon created", coupon)
}

// UpdateCoupon -> admin; usage_count is never editable here
func (cc *CouponController) UpdateCoupon(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("coupon_id"))

	var coupon models.Coupon
	if err := cc.DB.First(&coupon, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("coupon not found"))
		return
	}

	var req couponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	req.apply(&coupon)
	if err := cc.DB.Save(&coupon).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Coupon updated", coupon)
}

// ToggleCoupon -> admin flips the active flag
func (cc *CouponController) ToggleCoupon(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("coupon_id"))

	var coupon models.Coupon
	if err := cc.DB.First(&coupon, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("coupon not found"))
		return
	}

	coupon.IsActive = !coupon.IsActive
	if err := cc.DB.Model(&coupon).Update("is_active", coupon.IsActive).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Coupon toggled", coupon)
}

func (cc *CouponController) DeleteCoupon(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("coupon_id"))

	res := cc.DB.Delete(&models.Coupon{}, id)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("coupon not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Coupon deleted", nil)
}
