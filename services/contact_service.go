package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/bistronome/restaurant-app/models"
	"github.com/bistronome/restaurant-app/utils"
)

// ContactService stores contact form submissions for the back office.
type ContactService struct {
	DB *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{DB: db}
}

type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (s *ContactService) Create(req CreateContactRequest) (*models.ContactMessage, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, utils.InvalidInputf("name required")
	}
	if !emailRe.MatchString(req.Email) {
		return nil, utils.InvalidInputf("invalid email address")
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, utils.InvalidInputf("message required")
	}

	msg := models.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   req.Email,
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}
	if err := s.DB.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *ContactService) List() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := s.DB.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func (s *ContactService) MarkRead(id uint) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := s.DB.First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("message not found: %d", id)
		}
		return nil, err
	}
	if err := s.DB.Model(&msg).Update("is_read", true).Error; err != nil {
		return nil, err
	}
	msg.IsRead = true
	return &msg, nil
}
