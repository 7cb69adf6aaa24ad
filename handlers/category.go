package handlers

import (
	"net/http"
	"strings"

	"restaurant-api/config"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
)

type CreateCategoryRequest struct {
	DisplayName string `json:"displayName" binding:"required"`
	Description string `json:"description"`
	Order       *int   `json:"order"`
	IsActive    *bool  `json:"isActive"`
}

type UpdateCategoryRequest struct {
	DisplayName *string `json:"displayName"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

const categorySortOrder = "sort_order asc, display_name asc"

// ListCategories returns active categories for the public menu
func ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.WithContext(c.Request.Context()).
		Where("is_active = ?", true).
		Order(categorySortOrder).
		Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// ListAllCategories returns every category, inactive included — admin only
func ListAllCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.WithContext(c.Request.Context()).
		Order(categorySortOrder).
		Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory returns a single category — admin only
func GetCategory(c *gin.Context) {
	var category models.Category
	if err := config.DB.WithContext(c.Request.Context()).First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// CreateCategory creates a category with a normalized unique name
func CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}
	name := models.NormalizeCategoryName(displayName)

	var existing models.Category
	if err := config.DB.WithContext(c.Request.Context()).Where("name = ?", name).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
		return
	}

	category := models.Category{
		Name:        name,
		DisplayName: displayName,
		Description: strings.TrimSpace(req.Description),
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if req.Order != nil {
		category.Order = *req.Order
	}

	if err := config.DB.WithContext(c.Request.Context()).Create(&category).Error; err != nil {
		// The unique index backstops concurrent identical creates
		c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory applies a partial update; renaming re-derives the normalized
// name and re-checks uniqueness against every other category
func UpdateCategory(c *gin.Context) {
	var category models.Category
	if err := config.DB.WithContext(c.Request.Context()).First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.DisplayName != nil {
		displayName := strings.TrimSpace(*req.DisplayName)
		if displayName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category name cannot be empty"})
			return
		}
		name := models.NormalizeCategoryName(displayName)
		var existing models.Category
		if err := config.DB.WithContext(c.Request.Context()).
			Where("name = ? AND id <> ?", name, category.ID).
			First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
			return
		}
		updates["display_name"] = displayName
		updates["name"] = name
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Order != nil {
		updates["sort_order"] = *req.Order
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := config.DB.WithContext(c.Request.Context()).Model(&category).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}
	}

	if err := config.DB.WithContext(c.Request.Context()).First(&category, category.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory removes a category; menu items keep their free-text
// category value untouched
func DeleteCategory(c *gin.Context) {
	var category models.Category
	if err := config.DB.WithContext(c.Request.Context()).First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	if err := config.DB.WithContext(c.Request.Context()).Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
