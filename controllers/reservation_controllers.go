package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bistronome/restaurant-app/services"
	"github.com/bistronome/restaurant-app/utils"
)

type ReservationController struct {
	Reservations *services.ReservationService
	Notifier     services.Notifier
}

func NewReservationController(reservations *services.ReservationService, notifier services.Notifier) *ReservationController {
	return &ReservationController{Reservations: reservations, Notifier: notifier}
}

// CreateReservation -> public booking request, starts as pending
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req services.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Reservations.Create(req)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	rc.Notifier.ReservationCreated(reservation)
	utils.RespondJSON(c, http.StatusCreated, "Reservation created", reservation)
}

// GetAllReservations -> admin, optional ?status= filter
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	reservations, err := rc.Reservations.List(c.Query("status"))
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("reservation_id"))

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Reservations.UpdateStatus(uint(id), req.Status)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation status updated", reservation)
}
