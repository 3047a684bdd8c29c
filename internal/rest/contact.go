package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/Rhoda-NM/OneStopShop-Project/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	ContactHandler struct {
		contactService ContactService
		validate       *validator.Validate
		timeout        time.Duration
	}

	ContactService interface {
		SendContactMessage(ctx context.Context, name, email, subject, message string) error
	}

	ContactInput struct {
		Name    string `json:"name" validate:"required"`
		Email   string `json:"email" validate:"required,email"`
		Subject string `json:"subject" validate:"required"`
		Message string `json:"message" validate:"required"`
	}
)

func NewContactHandler(contactService ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		validate:       validator.New(),
		timeout:        10 * time.Second,
	}
}

func (h *ContactHandler) SendMessage(c echo.Context) error {
	var request ContactInput
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate contact request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.contactService.SendContactMessage(ctx, request.Name, request.Email, request.Subject, request.Message); err != nil {
		logger.Error("Failed to send contact message", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Message sent successfully",
	})
}
