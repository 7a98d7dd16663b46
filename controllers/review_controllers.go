package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bistronome/restaurant-app/services"
	"github.com/bistronome/restaurant-app/utils"
)

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

// GetApprovedReviews -> public site only shows moderated reviews
func (rc *ReviewController) GetApprovedReviews(c *gin.Context) {
	reviews, err := rc.Reviews.ListApproved()
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reviews", reviews)
}

func (rc *ReviewController) CreateReview(c *gin.Context) {
	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	review, err := rc.Reviews.Create(req)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Review submitted for moderation", review)
}

// GetAllReviews -> admin moderation queue
func (rc *ReviewController) GetAllReviews(c *gin.Context) {
	reviews, err := rc.Reviews.ListAll()
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reviews", reviews)
}

func (rc *ReviewController) ApproveReview(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("review_id"))

	review, err := rc.Reviews.Approve(uint(id))
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Review approved", review)
}

func (rc *ReviewController) DeleteReview(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("review_id"))

	if err := rc.Reviews.Delete(uint(id)); err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Review deleted", nil)
}
