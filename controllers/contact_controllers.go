package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bistronome/restaurant-app/services"
	"github.com/bistronome/restaurant-app/utils"
)

type ContactController struct {
	Contacts *services.ContactService
	Notifier services.Notifier
}

func NewContactController(contacts *services.ContactService, notifier services.Notifier) *ContactController {
	return &ContactController{Contacts: contacts, Notifier: notifier}
}

func (cc *ContactController) CreateMessage(c *gin.Context) {
	var req services.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	msg, err := cc.Contacts.Create(req)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	cc.Notifier.ContactReceived(msg)
	utils.RespondJSON(c, http.StatusCreated, "Message sent", msg)
}

// GetAllMessages -> admin inbox
func (cc *ContactController) GetAllMessages(c *gin.Context) {
	messages, err := cc.Contacts.List()
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of messages", messages)
}

func (cc *ContactController) MarkMessageRead(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("message_id"))

	msg, err := cc.Contacts.MarkRead(uint(id))
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Message marked as read", msg)
}
