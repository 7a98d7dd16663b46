package controllers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bistronome/restaurant-app/models"
	"github.com/bistronome/restaurant-app/utils"
)

type GalleryController struct {
	DB        *gorm.DB
	UploadDir string
}

func NewGalleryController(db *gorm.DB, uploadDir string) *GalleryController {
	return &GalleryController{DB: db, UploadDir: uploadDir}
}

// GetGallery -> public listing, ordered by position
func (gc *GalleryController) GetGallery(c *gin.Context) {
	q := gc.DB.Order("position, id")
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	var images []models.GalleryImage
	if err := q.Find(&images).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Gallery images", images)
}

// UploadImage -> admin multipart upload, stored under a random filename
func (gc *GalleryController) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("image file required"))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		utils.RespondError(c, http.StatusBadRequest, errors.New("unsupported image format"))
		return
	}

	filename := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(gc.UploadDir, filename)); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	position, _ := strconv.Atoi(c.PostForm("position"))
	image := models.GalleryImage{
		Title:    c.PostForm("title"),
		Filename: filename,
		Category: c.PostForm("category"),
		Position: position,
	}
	if err := gc.DB.Create(&image).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Gallery image uploaded", image)
}

func (gc *GalleryController) UpdateImage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("image_id"))

	var image models.GalleryImage
	if err := gc.DB.First(&image, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("gallery image not found"))
		return
	}

	var req struct {
		Title    string `json:"title"`
		Category string `json:"category"`
		Position *int   `json:"position"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Title != "" {
		image.Title = req.Title
	}
	if req.Category != "" {
		image.Category = req.Category
	}
	if req.Position != nil {
		image.Position = *req.Position
	}

	if err := gc.DB.Save(&image).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Gallery image updated", image)
}

func (gc *GalleryController) DeleteImage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("image_id"))

	res := gc.DB.Delete(&models.GalleryImage{}, id)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("gallery image not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Gallery image deleted", nil)
}
