package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bistronome/restaurant-app/config"
	"github.com/bistronome/restaurant-app/utils"
)

type SettingsController struct {
	Settings config.RestaurantSettings
}

func NewSettingsController(settings config.RestaurantSettings) *SettingsController {
	return &SettingsController{Settings: settings}
}

// GetSettings -> public operating parameters the checkout UI needs
func (sc *SettingsController) GetSettings(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Restaurant settings", gin.H{
		"vatRate":               sc.Settings.VatRate,
		"deliveryFee":           utils.FormatAmount(sc.Settings.DeliveryFee),
		"freeDeliveryThreshold": utils.FormatAmount(sc.Settings.FreeDeliveryThreshold),
		"deliveryRadiusKm":      sc.Settings.DeliveryRadiusKm,
		"contactEmail":          sc.Settings.ContactEmail,
		"contactPhone":          sc.Settings.ContactPhone,
	})
}
