package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/bistronome/restaurant-app/models"
	"github.com/bistronome/restaurant-app/utils"
)

// ReviewService handles customer reviews; new reviews start unapproved
// and only show publicly after moderation.
type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

type CreateReviewRequest struct {
	AuthorName string `json:"authorName"`
	Email      string `json:"email"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

func (s *ReviewService) Create(req CreateReviewRequest) (*models.Review, error) {
	if strings.TrimSpace(req.AuthorName) == "" {
		return nil, utils.InvalidInputf("author name required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, utils.InvalidInputf("rating must be between 1 and 5")
	}
	if strings.TrimSpace(req.Comment) == "" {
		return nil, utils.InvalidInputf("comment required")
	}
	if req.Email != "" && !emailRe.MatchString(req.Email) {
		return nil, utils.InvalidInputf("invalid email address")
	}

	review := models.Review{
		AuthorName: strings.TrimSpace(req.AuthorName),
		Email:      req.Email,
		Rating:     req.Rating,
		Comment:    strings.TrimSpace(req.Comment),
	}
	if err := s.DB.Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *ReviewService) ListApproved() ([]models.Review, error) {
	var reviews []models.Review
	err := s.DB.Where("is_approved = ?", true).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (s *ReviewService) ListAll() ([]models.Review, error) {
	var reviews []models.Review
	err := s.DB.Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (s *ReviewService) Approve(id uint) (*models.Review, error) {
	var review models.Review
	if err := s.DB.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("review not found: %d", id)
		}
		return nil, err
	}
	if err := s.DB.Model(&review).Update("is_approved", true).Error; err != nil {
		return nil, err
	}
	review.IsApproved = true
	return &review, nil
}

func (s *ReviewService) Delete(id uint) error {
	res := s.DB.Delete(&models.Review{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.NotFoundf("review not found: %d", id)
	}
	return nil
}
