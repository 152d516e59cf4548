package contact

import (
	"context"
	"log"

	"github.com/google/uuid"

	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/repository"
	"zentproje-backend/internal/service/notification"
)

type Service interface {
	Create(ctx context.Context, input domain.CreateContactInput) (*domain.Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	List(ctx context.Context, params domain.PaginationParams) (*domain.PaginatedResponse[domain.Contact], error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	contactRepo repository.ContactRepository
	notifSvc    notification.Service
}

func NewService(contactRepo repository.ContactRepository, notifSvc notification.Service) Service {
	return &service{
		contactRepo: contactRepo,
		notifSvc:    notifSvc,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateContactInput) (*domain.Contact, error) {
	contact := &domain.Contact{
		ID:      uuid.New(),
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	// The message is saved either way; the visitor never sees a
	// notification failure.
	if s.notifSvc != nil {
		if err := s.notifSvc.NotifyNewContact(ctx, contact); err != nil {
			log.Printf("Failed to create contact notification for %s: %v", contact.Email, err)
		}
	}

	return contact, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrContactNotFound
	}
	return contact, nil
}

func (s *service) List(ctx context.Context, params domain.PaginationParams) (*domain.PaginatedResponse[domain.Contact], error) {
	params.Validate()

	contacts, total, err := s.contactRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	resp := domain.NewPaginatedResponse(contacts, params.Page, params.PageSize, total)
	return &resp, nil
}

func (s *service) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.contactRepo.MarkAsRead(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.contactRepo.Delete(ctx, id)
}
