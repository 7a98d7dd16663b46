package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bistronome/restaurant-app/services"
	"github.com/bistronome/restaurant-app/utils"
)

type OrderController struct {
	Orders   *services.OrderService
	Carts    *services.CartService
	Coupons  *services.CouponService
	Notifier services.Notifier
}

func NewOrderController(orders *services.OrderService, carts *services.CartService, coupons *services.CouponService, notifier services.Notifier) *OrderController {
	return &OrderController{Orders: orders, Carts: carts, Coupons: coupons, Notifier: notifier}
}

// Checkout -> create an order from the session cart. The cart is cleared
// only after the order persisted; coupon usage and the notification are
// follow-ups that never fail the request.
func (oc *OrderController) Checkout(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	token := cartSessionToken(c)
	order, err := oc.Orders.CreateOrder(oc.Carts.Snapshot(token), req)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	oc.Carts.Clear(token)

	if order.CouponID != nil {
		if err := oc.Coupons.Apply(*order.CouponID); err != nil {
			utils.ErrorLogger.Printf("order %s: coupon %d apply failed: %v", order.No, *order.CouponID, err)
		}
	}
	oc.Notifier.OrderCreated(order)

	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetAllOrders -> admin list, optional ?status= filter
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Orders.ListOrders(c.Query("status"))
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))

	order, err := oc.Orders.GetOrder(uint(id))
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.UpdateOrderStatus(uint(id), req.Status)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// RecalculateOrder -> admin-triggered re-derivation of stored totals
func (oc *OrderController) RecalculateOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))

	order, err := oc.Orders.RecalculateOrder(uint(id))
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order totals recalculated", order)
}
