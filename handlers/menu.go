package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"restaurant-api/config"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
)

// ListMenuItems returns menu items, newest first, with optional
// category and featured filters
func ListMenuItems(c *gin.Context) {
	query := config.DB.WithContext(c.Request.Context())

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if featured := c.Query("featured"); featured == "true" {
		query = query.Where("featured = ?", true)
	}

	var items []models.MenuItem
	if err := query.Order("created_at desc").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetMenuItem returns a single menu item
func GetMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.WithContext(c.Request.Context()).First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateMenuItem creates a menu item from a multipart form with an
// optional image upload
func CreateMenuItem(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	description := strings.TrimSpace(c.PostForm("description"))
	priceStr := c.PostForm("price")
	category := c.PostForm("category")

	if name == "" || description == "" || priceStr == "" || category == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required fields: name, description, price, and category are required",
		})
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a non-negative number"})
		return
	}

	image, err := saveUploadedImage(c, "menu", config.MenuUploadMaxBytes)
	if err != nil {
		c.JSON(uploadErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		Image:       image,
		IsAvailable: parseFormBool(c.PostForm("isAvailable")),
		Featured:    parseFormBool(c.PostForm("featured")),
	}

	if err := config.DB.WithContext(c.Request.Context()).Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateMenuItem replaces only the form fields present in the request;
// a new image upload replaces the stored path, otherwise it is preserved
func UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.WithContext(c.Request.Context()).First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	updates := map[string]interface{}{}
	if v, ok := c.GetPostForm("name"); ok {
		updates["name"] = strings.TrimSpace(v)
	}
	if v, ok := c.GetPostForm("description"); ok {
		updates["description"] = strings.TrimSpace(v)
	}
	if v, ok := c.GetPostForm("price"); ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a non-negative number"})
			return
		}
		updates["price"] = price
	}
	if v, ok := c.GetPostForm("category"); ok {
		updates["category"] = v
	}
	if v, ok := c.GetPostForm("isAvailable"); ok {
		updates["is_available"] = parseFormBool(v)
	}
	if v, ok := c.GetPostForm("featured"); ok {
		updates["featured"] = parseFormBool(v)
	}

	image, err := saveUploadedImage(c, "menu", config.MenuUploadMaxBytes)
	if err != nil {
		c.JSON(uploadErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	if image != "" {
		updates["image"] = image
	}

	if len(updates) > 0 {
		if err := config.DB.WithContext(c.Request.Context()).Model(&item).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
			return
		}
	}

	if err := config.DB.WithContext(c.Request.Context()).First(&item, item.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem removes a menu item. The stored image file is kept —
// uploads are never reference-counted.
func DeleteMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.WithContext(c.Request.Context()).First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if err := config.DB.WithContext(c.Request.Context()).Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}
