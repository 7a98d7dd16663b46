package services

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bistronome/restaurant-app/config"
	"github.com/bistronome/restaurant-app/models"
	"github.com/bistronome/restaurant-app/utils"
)

// OrderService assembles orders from cart snapshots and owns the pricing
// pipeline: cart TTC total -> tax split -> delivery fee -> discount ->
// persisted order.
type OrderService struct {
	DB       *gorm.DB
	Tax      *TaxCalculationService
	Settings config.RestaurantSettings
}

func NewOrderService(db *gorm.DB, tax *TaxCalculationService, settings config.RestaurantSettings) *OrderService {
	return &OrderService{DB: db, Tax: tax, Settings: settings}
}

// CreateOrderRequest is the raw order intent posted at checkout. Mode
// strings are parsed once here; coupon and manual discount are mutually
// exclusive, coupon wins when both are given.
type CreateOrderRequest struct {
	DeliveryMode         string  `json:"deliveryMode"`
	PaymentMode          string  `json:"paymentMode"`
	ClientFirstName      string  `json:"clientFirstName"`
	ClientLastName       string  `json:"clientLastName"`
	ClientPhone          string  `json:"clientPhone"`
	ClientEmail          string  `json:"clientEmail"`
	DeliveryAddress      string  `json:"deliveryAddress"`
	DeliveryZip          string  `json:"deliveryZip"`
	DeliveryInstructions string  `json:"deliveryInstructions"`
	DeliveryFee          *string `json:"deliveryFee"`
	CouponID             *uint   `json:"couponId"`
	DiscountAmount       *string `json:"discountAmount"`
}

var (
	zipRe           = regexp.MustCompile(`^\d{5}$`)
	nationalPhoneRe = regexp.MustCompile(`^0[1-9]\d{8}$`)
	intlPhoneRe     = regexp.MustCompile(`^\+33[1-9]\d{8}$`)
)

// validFrenchPhone accepts the national 0X… 10-digit form and the
// international +33… form, mobiles (06, 07) and landlines (01-05).
func validFrenchPhone(phone string) bool {
	clean := strings.NewReplacer(" ", "", "-", "", ".", "").Replace(phone)

	var local string
	switch {
	case len(clean) == 10 && nationalPhoneRe.MatchString(clean):
		local = clean
	case len(clean) == 12 && intlPhoneRe.MatchString(clean):
		local = "0" + clean[3:]
	default:
		return false
	}

	switch local[:2] {
	case "01", "02", "03", "04", "05", "06", "07":
		return true
	}
	return false
}

// CreateOrder builds and persists an order from a non-empty cart
// snapshot. The cart total is tax-inclusive; the net subtotal is derived
// by dividing out the VAT. The write is one transaction (order plus
// items); the caller clears the session cart afterwards.
func (s *OrderService) CreateOrder(cart models.Cart, req CreateOrderRequest) (*models.Order, error) {
	if len(cart) == 0 {
		return nil, utils.InvalidInputf("cart is empty")
	}

	deliveryMode := models.DeliveryModeDelivery
	if req.DeliveryMode != "" {
		var err error
		if deliveryMode, err = models.ParseDeliveryMode(req.DeliveryMode); err != nil {
			return nil, utils.InvalidInputf("%v", err)
		}
	}
	paymentMode := models.PaymentModeCard
	if req.PaymentMode != "" {
		var err error
		if paymentMode, err = models.ParsePaymentMode(req.PaymentMode); err != nil {
			return nil, utils.InvalidInputf("%v", err)
		}
	}

	order := models.Order{
		Status:               models.OrderPending,
		DeliveryMode:         deliveryMode,
		PaymentMode:          paymentMode,
		ClientFirstName:      req.ClientFirstName,
		ClientLastName:       req.ClientLastName,
		ClientPhone:          req.ClientPhone,
		ClientEmail:          req.ClientEmail,
		DeliveryInstructions: req.DeliveryInstructions,
	}
	if req.ClientFirstName != "" && req.ClientLastName != "" {
		order.ClientName = req.ClientFirstName + " " + req.ClientLastName
	}

	if deliveryMode == models.DeliveryModeDelivery {
		if strings.TrimSpace(req.DeliveryAddress) == "" {
			return nil, utils.InvalidInputf("delivery address required")
		}
		if req.DeliveryZip != "" && !zipRe.MatchString(req.DeliveryZip) {
			return nil, utils.InvalidInputf("invalid delivery zip code")
		}
		order.DeliveryAddress = req.DeliveryAddress
		order.DeliveryZip = req.DeliveryZip

		fee := s.Settings.DeliveryFee
		if req.DeliveryFee != nil {
			fee = utils.ParseAmount(*req.DeliveryFee)
		}
		order.DeliveryFee = utils.FormatAmount(fee)
	} else {
		order.DeliveryFee = "0.00"
	}

	if req.ClientPhone != "" && !validFrenchPhone(req.ClientPhone) {
		return nil, utils.InvalidInputf("invalid phone number")
	}

	// Cart prices already include VAT (TTC).
	cartTotal := cart.Total()
	breakdown := s.Tax.CalculateTaxFromTTC(cartTotal)
	preDiscount := cartTotal.Add(utils.ParseAmount(order.DeliveryFee))

	discount := decimal.Zero
	if req.CouponID != nil {
		coupon, err := s.applicableCoupon(*req.CouponID, preDiscount)
		if err != nil {
			return nil, err
		}
		discount = coupon.CalculateDiscount(preDiscount)
		order.CouponID = &coupon.ID
	} else if req.DiscountAmount != nil {
		// Trusted admin path.
		discount = utils.ParseAmount(*req.DiscountAmount)
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	if discount.GreaterThan(preDiscount) {
		discount = preDiscount
	}

	order.Subtotal = utils.FormatAmount(breakdown.AmountWithoutTax)
	order.TaxAmount = utils.FormatAmount(breakdown.TaxAmount)
	order.DiscountAmount = utils.FormatAmount(discount)
	order.Total = utils.FormatAmount(preDiscount.Sub(discount))

	for _, it := range cart {
		unit := utils.ParseAmount(it.Price)
		order.Items = append(order.Items, models.OrderItem{
			ProductID:   it.ID,
			ProductName: it.Name,
			UnitPrice:   utils.FormatAmount(unit),
			Quantity:    it.Quantity,
			Total:       utils.FormatAmount(unit.Mul(decimal.NewFromInt(int64(it.Quantity)))),
		})
	}

	// The order number carries a random suffix; the unique index is the
	// real guarantee, so retry a couple of times on a collision.
	var persistErr error
	for attempt := 0; attempt < 3; attempt++ {
		order.No = generateOrderNumber()
		persistErr = s.DB.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&order).Error
		})
		if persistErr == nil {
			return &order, nil
		}
		if !isDuplicateKey(persistErr) {
			return nil, persistErr
		}
		order.ID = 0
	}
	return nil, persistErr
}

func (s *OrderService) applicableCoupon(couponID uint, orderAmount decimal.Decimal) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := s.DB.First(&coupon, couponID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("coupon not found: %d", couponID)
		}
		return nil, err
	}
	if !coupon.CanBeUsed(time.Now()) {
		return nil, utils.InvalidStatef("coupon no longer available")
	}
	if !coupon.CanBeAppliedToAmount(orderAmount) {
		min := utils.ParseAmount(*coupon.MinOrderAmount)
		return nil, utils.InvalidInputf("minimum order amount not reached (minimum: %s)", utils.FormatAmount(min))
	}
	return &coupon, nil
}

func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%s-%04d", time.Now().Format("20060102"), rand.Intn(9999)+1)
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry")
}

func (s *OrderService) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.DB.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("order not found: %d", id)
		}
		return nil, err
	}
	return &order, nil
}

// ListOrders returns orders newest first, optionally filtered by status.
func (s *OrderService) ListOrders(status string) ([]models.Order, error) {
	q := s.DB.Preload("Items").Order("created_at DESC")
	if status != "" {
		parsed, err := models.ParseOrderStatus(status)
		if err != nil {
			return nil, utils.InvalidInputf("%v", err)
		}
		q = q.Where("status = ?", parsed)
	}

	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) UpdateOrderStatus(id uint, status string) (*models.Order, error) {
	parsed, err := models.ParseOrderStatus(status)
	if err != nil {
		return nil, utils.InvalidInputf("%v", err)
	}

	order, err := s.GetOrder(id)
	if err != nil {
		return nil, err
	}

	order.Status = parsed
	if err := s.DB.Model(order).Update("status", parsed).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// RecalculateOrder re-derives the stored totals from the order's current
// items. Idempotent: with unchanged items, coupon and fee, repeated calls
// store identical values.
func (s *OrderService) RecalculateOrder(id uint) (*models.Order, error) {
	order, err := s.GetOrder(id)
	if err != nil {
		return nil, err
	}

	var coupon *models.Coupon
	if order.CouponID != nil {
		var cp models.Coupon
		if err := s.DB.First(&cp, *order.CouponID).Error; err == nil {
			coupon = &cp
		}
	}

	s.Tax.RecalculateTotals(order, coupon)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for i := range order.Items {
			if err := tx.Model(&order.Items[i]).Update("total", order.Items[i].Total).Error; err != nil {
				return err
			}
		}
		return tx.Model(order).Updates(map[string]interface{}{
			"subtotal":        order.Subtotal,
			"tax_amount":      order.TaxAmount,
			"discount_amount": order.DiscountAmount,
			"total":           order.Total,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
