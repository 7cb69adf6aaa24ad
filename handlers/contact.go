package handlers

import (
	"errors"
	"net/http"
	"strings"

	"restaurant-api/config"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// contactFieldError maps a failed validation rule to the message the
// contact form shows for that field
func contactFieldError(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "Name is required"
	case "Email":
		if fe.Tag() == "email" {
			return "Please provide a valid email"
		}
		return "Email is required"
	case "Phone":
		return "Phone number is required"
	case "Message":
		return "Message is required"
	}
	return fe.Field() + " is invalid"
}

// SubmitContactMessage stores a public contact form submission. All failing
// field rules are reported together in one response.
func SubmitContactMessage(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			messages := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				messages = append(messages, contactFieldError(fe))
			}
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  strings.Join(messages, ", "),
				"errors": messages,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message := models.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Message: strings.TrimSpace(req.Message),
	}
	if err := config.DB.WithContext(c.Request.Context()).Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message. Please try again."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Thank you for contacting us! We will get back to you soon."})
}

// ListContactMessages returns all messages, newest first — admin only
func ListContactMessages(c *gin.Context) {
	var messages []models.ContactMessage
	if err := config.DB.WithContext(c.Request.Context()).
		Order("created_at desc").
		Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// MarkMessageRead flags a message as read and returns it — admin only
func MarkMessageRead(c *gin.Context) {
	var message models.ContactMessage
	if err := config.DB.WithContext(c.Request.Context()).First(&message, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	message.Read = true
	if err := config.DB.WithContext(c.Request.Context()).Model(&message).Update("read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update message"})
		return
	}
	c.JSON(http.StatusOK, message)
}
