package service

import (
	"context"
	"fmt"

	"github.com/autorental/car-rental-api/internal/models"
	"github.com/autorental/car-rental-api/internal/repository"
	"github.com/autorental/car-rental-api/pkg/rabbitmq"
)

type ContactService interface {
	SubmitMessage(ctx context.Context, message *models.ContactMessage) error
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
	publisher   *rabbitmq.Publisher
}

func NewContactService(contactRepo repository.ContactRepository, publisher *rabbitmq.Publisher) ContactService {
	return &contactService{contactRepo: contactRepo, publisher: publisher}
}

func (s *contactService) SubmitMessage(ctx context.Context, message *models.ContactMessage) error {
	if err := s.contactRepo.Create(ctx, message); err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("contact.received", message)
	}

	return nil
}

func (s *contactService) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return s.contactRepo.FindAll(ctx)
}
