package services

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/bistronome/restaurant-app/models"
	"github.com/bistronome/restaurant-app/utils"
)

var (
	timeRe  = regexp.MustCompile(`^\d{2}:\d{2}$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ReservationService creates and manages table booking requests.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

type CreateReservationRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // HH:MM
	Guests    int    `json:"guests"`
	Message   string `json:"message"`
}

func (s *ReservationService) Create(req CreateReservationRequest) (*models.Reservation, error) {
	first := strings.TrimSpace(req.FirstName)
	last := strings.TrimSpace(req.LastName)
	if len(first) < 2 || len(first) > 100 || len(last) < 2 || len(last) > 100 {
		return nil, utils.InvalidInputf("first and last name must be 2-100 characters")
	}
	if !emailRe.MatchString(req.Email) {
		return nil, utils.InvalidInputf("invalid email address")
	}
	if l := len(strings.TrimSpace(req.Phone)); l < 8 || l > 30 {
		return nil, utils.InvalidInputf("invalid phone number")
	}
	if !timeRe.MatchString(req.Time) {
		return nil, utils.InvalidInputf("invalid time format, expected HH:MM")
	}
	if req.Guests < 1 || req.Guests > 20 {
		return nil, utils.InvalidInputf("guests must be between 1 and 20")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, utils.InvalidInputf("invalid date format, expected YYYY-MM-DD")
	}

	reservation := models.Reservation{
		FirstName: first,
		LastName:  last,
		Email:     req.Email,
		Phone:     strings.TrimSpace(req.Phone),
		Date:      date,
		Time:      req.Time,
		Guests:    req.Guests,
		Message:   req.Message,
		Status:    models.ReservationPending,
	}
	if err := s.DB.Create(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (s *ReservationService) List(status string) ([]models.Reservation, error) {
	q := s.DB.Order("date ASC, time ASC")
	if status != "" {
		parsed, err := models.ParseReservationStatus(status)
		if err != nil {
			return nil, utils.InvalidInputf("%v", err)
		}
		q = q.Where("status = ?", parsed)
	}

	var reservations []models.Reservation
	if err := q.Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// UpdateStatus parses the serialized status once, here at the boundary,
// and stamps ConfirmedAt on the pending -> confirmed transition.
func (s *ReservationService) UpdateStatus(id uint, status string) (*models.Reservation, error) {
	parsed, err := models.ParseReservationStatus(status)
	if err != nil {
		return nil, utils.InvalidInputf("%v", err)
	}

	var reservation models.Reservation
	if err := s.DB.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("reservation not found: %d", id)
		}
		return nil, err
	}

	updates := map[string]interface{}{"status": parsed}
	if parsed == models.ReservationConfirmed && reservation.ConfirmedAt == nil {
		now := time.Now()
		reservation.ConfirmedAt = &now
		updates["confirmed_at"] = &now
	}
	if err := s.DB.Model(&reservation).Updates(updates).Error; err != nil {
		return nil, err
	}
	reservation.Status = parsed
	return &reservation, nil
}
