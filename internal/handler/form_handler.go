package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"leadform/internal/repository"
	"leadform/internal/service"
)

type FormHandler struct {
	formService *service.FormService
}

func NewFormHandler(formService *service.FormService) *FormHandler {
	return &FormHandler{
		formService: formService,
	}
}

// SubmitForm handles POST /api/form
func (h *FormHandler) SubmitForm(c *gin.Context) {
	var req struct {
		FullName           string `json:"fullName"`
		ContactNumber      string `json:"contactNumber"`
		ServiceType        string `json:"serviceType"`
		ProjectDescription string `json:"projectDescription"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if req.FullName == "" || req.ContactNumber == "" || req.ServiceType == "" || req.ProjectDescription == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "fullName, contactNumber, serviceType and projectDescription are required"})
		return
	}

	_, err := h.formService.Create(c.Request.Context(), req.FullName, req.ContactNumber, req.ServiceType, req.ProjectDescription)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error submitting form. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Form submitted successfully!"})
}

// ListForms handles GET /api/forms
func (h *FormHandler) ListForms(c *gin.Context) {
	submissions, err := h.formService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch submissions"})
		return
	}

	c.JSON(http.StatusOK, submissions)
}

// ResendNotification handles POST /api/forms/:id/resend
func (h *FormHandler) ResendNotification(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Submission not found"})
		return
	}

	if err := h.formService.Resend(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to resend email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email resent successfully!"})
}
