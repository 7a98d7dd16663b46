package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bistronome/restaurant-app/services"
	"github.com/bistronome/restaurant-app/utils"
)

const cartCookieName = "cart_session"

// cartSessionToken returns the cart session token from the cookie,
// creating one when the visitor has none yet.
func cartSessionToken(c *gin.Context) string {
	if token, err := c.Cookie(cartCookieName); err == nil && token != "" {
		return token
	}
	token := uuid.NewString()
	c.SetCookie(cartCookieName, token, 86400, "/", "", false, true)
	return token
}

type CartController struct {
	Carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{Carts: carts}
}

func (cc *CartController) GetCart(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Cart contents", cc.Carts.Get(cartSessionToken(c)))
}

// AddItem -> add a menu item (or increase quantity)
func (cc *CartController) AddItem(c *gin.Context) {
	var req struct {
		MenuItemID uint `json:"menuItemId" binding:"required"`
		Quantity   int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	view, err := cc.Carts.Add(cartSessionToken(c), req.MenuItemID, req.Quantity)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item added to cart", view)
}

func (cc *CartController) UpdateQuantity(c *gin.Context) {
	var req struct {
		MenuItemID uint `json:"menuItemId" binding:"required"`
		Quantity   int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	view, err := cc.Carts.UpdateQuantity(cartSessionToken(c), req.MenuItemID, req.Quantity)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart updated", view)
}

func (cc *CartController) RemoveItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	view, err := cc.Carts.Remove(cartSessionToken(c), uint(id))
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item removed from cart", view)
}

func (cc *CartController) ClearCart(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", cc.Carts.Clear(cartSessionToken(c)))
}
