package handlers

import (
	"net/http"
	"strings"
	"time"

	"restaurant-api/config"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
)

// ListActiveOffers returns active offers, newest first (public)
func ListActiveOffers(c *gin.Context) {
	var offers []models.Offer
	if err := config.DB.WithContext(c.Request.Context()).
		Where("is_active = ?", true).
		Order("created_at desc").
		Find(&offers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch offers"})
		return
	}
	c.JSON(http.StatusOK, offers)
}

// ListAllOffers returns every offer, inactive included — admin only
func ListAllOffers(c *gin.Context) {
	var offers []models.Offer
	if err := config.DB.WithContext(c.Request.Context()).
		Order("created_at desc").
		Find(&offers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch offers"})
		return
	}
	c.JSON(http.StatusOK, offers)
}

// CreateOffer creates an offer from a multipart form with an optional image.
// The start date defaults to now; the end date is optional.
func CreateOffer(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	description := strings.TrimSpace(c.PostForm("description"))
	if title == "" || description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and description are required"})
		return
	}

	image, err := saveUploadedImage(c, "offer", config.OfferUploadMaxBytes)
	if err != nil {
		c.JSON(uploadErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	offer := models.Offer{
		Title:       title,
		Description: description,
		Image:       image,
		IsActive:    parseFormBool(c.PostForm("isActive")),
		StartDate:   time.Now(),
	}

	if v, ok := c.GetPostForm("startDate"); ok && v != "" {
		t, err := parseOfferDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date"})
			return
		}
		offer.StartDate = t
	}
	if v, ok := c.GetPostForm("endDate"); ok && v != "" {
		t, err := parseOfferDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date"})
			return
		}
		offer.EndDate = &t
	}

	if err := config.DB.WithContext(c.Request.Context()).Create(&offer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating offer"})
		return
	}
	c.JSON(http.StatusCreated, offer)
}

// UpdateOffer replaces only the form fields present in the request
func UpdateOffer(c *gin.Context) {
	var offer models.Offer
	if err := config.DB.WithContext(c.Request.Context()).First(&offer, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found"})
		return
	}

	updates := map[string]interface{}{}
	if v, ok := c.GetPostForm("title"); ok {
		updates["title"] = strings.TrimSpace(v)
	}
	if v, ok := c.GetPostForm("description"); ok {
		updates["description"] = strings.TrimSpace(v)
	}
	if v, ok := c.GetPostForm("isActive"); ok {
		updates["is_active"] = parseFormBool(v)
	}
	if v, ok := c.GetPostForm("startDate"); ok && v != "" {
		t, err := parseOfferDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date"})
			return
		}
		updates["start_date"] = t
	}
	if v, ok := c.GetPostForm("endDate"); ok && v != "" {
		t, err := parseOfferDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date"})
			return
		}
		updates["end_date"] = t
	}

	image, err := saveUploadedImage(c, "offer", config.OfferUploadMaxBytes)
	if err != nil {
		c.JSON(uploadErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	if image != "" {
		updates["image"] = image
	}

	if len(updates) > 0 {
		if err := config.DB.WithContext(c.Request.Context()).Model(&offer).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update offer"})
			return
		}
	}

	if err := config.DB.WithContext(c.Request.Context()).First(&offer, offer.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch offer"})
		return
	}
	c.JSON(http.StatusOK, offer)
}

// ToggleOffer flips the active flag and returns the updated offer
func ToggleOffer(c *gin.Context) {
	var offer models.Offer
	if err := config.DB.WithContext(c.Request.Context()).First(&offer, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found"})
		return
	}

	offer.IsActive = !offer.IsActive
	if err := config.DB.WithContext(c.Request.Context()).Model(&offer).Update("is_active", offer.IsActive).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle offer"})
		return
	}
	c.JSON(http.StatusOK, offer)
}

// DeleteOffer removes an offer; its image file is kept
func DeleteOffer(c *gin.Context) {
	var offer models.Offer
	if err := config.DB.WithContext(c.Request.Context()).First(&offer, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found"})
		return
	}
	if err := config.DB.WithContext(c.Request.Context()).Delete(&offer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete offer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Offer deleted"})
}

// parseOfferDate accepts RFC 3339 timestamps or bare dates
func parseOfferDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}
