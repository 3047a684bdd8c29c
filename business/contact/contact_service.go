package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rhoda-NM/OneStopShop-Project/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// NotificationRepository contract interface
type NotificationRepository interface {
	SendEmail(toName, toEmail, subject, message string) (err error)
}

type contactService struct {
	notifRepo    NotificationRepository
	validate     *validator.Validate
	supportName  string
	supportEmail string
}

func NewContactService(notifRepo NotificationRepository, validate *validator.Validate, supportName, supportEmail string) *contactService {
	return &contactService{
		notifRepo:    notifRepo,
		validate:     validate,
		supportName:  supportName,
		supportEmail: supportEmail,
	}
}

// SendContactMessage forwards a storefront contact form submission to the
// support inbox.
func (s *contactService) SendContactMessage(ctx context.Context, name, email, subject, message string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if name == "" || subject == "" || message == "" {
		return errors.New("name, subject and message are required")
	}

	if err := s.validate.Var(email, "required,email"); err != nil {
		logger.Error("Invalid contact email", err)
		return errors.New("invalid email format")
	}

	body := fmt.Sprintf("From: %v (%v)</br></br>%v", name, email, message)

	if err := s.notifRepo.SendEmail(s.supportName, s.supportEmail, subject, body); err != nil {
		logger.Error("Failed to forward contact message", err)
		return errors.New("failed to send message")
	}

	return nil
}
