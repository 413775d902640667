package services

import (
	"strings"
	"time"

	"suredoor/listing"
	"suredoor/models"

	"github.com/google/uuid"
)

// Read filter values
const (
	FilterRead   = "read"
	FilterUnread = "unread"
)

type MessageQuery struct {
	Search string `query:"search"`
	Status string `query:"status"`
}

// MessageService handles contact form submissions
type MessageService struct {
	repo MessageRepository
}

func NewMessageService(repo MessageRepository) *MessageService {
	return &MessageService{repo: repo}
}

func (ms *MessageService) List(q MessageQuery) ([]models.ContactMessage, error) {
	messages, err := ms.repo.GetMessages()
	if err != nil {
		return nil, err
	}

	return listing.Filter(messages,
		func(m models.ContactMessage) bool { return listing.AnyContains(q.Search, m.Name, m.Email, m.Subject) },
		func(m models.ContactMessage) bool { return listing.Bool(m.Read, q.Status, FilterRead, FilterUnread) },
	), nil
}

// Create stores a contact form submission as unread
func (ms *MessageService) Create(req models.ContactRequest) (*models.ContactMessage, error) {
	message := &models.ContactMessage{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   strings.TrimSpace(req.Message),
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}

	if err := ms.repo.CreateMessage(message); err != nil {
		return nil, err
	}
	return message, nil
}

func (ms *MessageService) MarkAsRead(id string) error {
	found, err := ms.repo.MarkMessageRead(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrMessageNotFound
	}
	return nil
}

func (ms *MessageService) Delete(id string) error {
	found, err := ms.repo.DeleteMessage(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrMessageNotFound
	}
	return nil
}

func (ms *MessageService) UnreadCount() (int, error) {
	return ms.repo.CountUnreadMessages()
}
