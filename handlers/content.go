package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"restaurant-api/config"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// UpdateContentRequest carries raw section payloads so a shallow per-section
// merge can distinguish absent sections from empty ones.
type UpdateContentRequest struct {
	Home        json.RawMessage `json:"home"`
	About       json.RawMessage `json:"about"`
	Gallery     json.RawMessage `json:"gallery"`
	Contact     json.RawMessage `json:"contact"`
	SocialLinks json.RawMessage `json:"socialLinks"`
}

// pageContentSingleton fetches the one PageContent row, creating it with
// defaults on first access. The fixed primary key plus a do-nothing conflict
// clause makes concurrent first reads converge on a single row.
func pageContentSingleton(ctx context.Context) (models.PageContent, error) {
	content := models.DefaultPageContent()
	if err := config.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&content).Error; err != nil {
		return content, err
	}
	err := config.DB.WithContext(ctx).First(&content, models.PageContentID).Error
	return content, err
}

// GetContent returns the page content singleton (public)
func GetContent(c *gin.Context) {
	content, err := pageContentSingleton(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch page content"})
		return
	}
	c.JSON(http.StatusOK, content)
}

// UpdateContent merges the supplied sections into the singleton. Within a
// supplied section only the fields present in the request are overwritten;
// sections not mentioned stay untouched.
func UpdateContent(c *gin.Context) {
	content, err := pageContentSingleton(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch page content"})
		return
	}

	var req UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Unmarshalling into the existing section struct only touches the keys
	// present in the payload, which is exactly the shallow merge we need.
	sections := []struct {
		raw json.RawMessage
		dst interface{}
	}{
		{req.Home, &content.Home},
		{req.About, &content.About},
		{req.Gallery, &content.Gallery},
		{req.Contact, &content.Contact},
		{req.SocialLinks, &content.SocialLinks},
	}
	for _, s := range sections {
		if len(s.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(s.raw, s.dst); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update content: " + err.Error()})
			return
		}
	}

	if err := config.DB.WithContext(c.Request.Context()).Save(&content).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update content"})
		return
	}
	c.JSON(http.StatusOK, content)
}
