package services

import (
	"context"
	"strings"
	"time"

	"suredoor/models"
	"suredoor/storage"

	"github.com/google/uuid"
)

// EventDateLayout is the date-only format events are submitted in
const EventDateLayout = "2006-01-02"

// EventService handles business logic for events
type EventService struct {
	repo   EventRepository
	images ImageRemover
}

func NewEventService(repo EventRepository, images ImageRemover) *EventService {
	return &EventService{repo: repo, images: images}
}

// List returns all events in date order
func (es *EventService) List() ([]models.Event, error) {
	return es.repo.GetEvents()
}

// Upcoming returns events on or after the day containing now
func (es *EventService) Upcoming(now time.Time, limit int) ([]models.Event, error) {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return es.repo.GetUpcomingEvents(today, limit)
}

func (es *EventService) GetByID(id string) (*models.Event, error) {
	event, err := es.repo.GetEventByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

func (es *EventService) Create(req models.EventRequest) (*models.Event, error) {
	event := &models.Event{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}
	if err := applyEventRequest(event, req); err != nil {
		return nil, err
	}

	if err := es.repo.CreateEvent(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (es *EventService) Update(ctx context.Context, id string, req models.EventRequest) (*models.Event, error) {
	event, err := es.GetByID(id)
	if err != nil {
		return nil, err
	}

	oldImage := event.Image
	if err := applyEventRequest(event, req); err != nil {
		return nil, err
	}

	if err := es.repo.UpdateEvent(event); err != nil {
		return nil, err
	}

	if oldImage != event.Image {
		releaseImage(ctx, es.images, oldImage, storage.BucketEvents)
	}
	return event, nil
}

func (es *EventService) Delete(ctx context.Context, id string) error {
	event, err := es.GetByID(id)
	if err != nil {
		return err
	}

	if err := es.repo.DeleteEvent(id); err != nil {
		return err
	}

	releaseImage(ctx, es.images, event.Image, storage.BucketEvents)
	return nil
}

func applyEventRequest(event *models.Event, req models.EventRequest) error {
	date, err := time.Parse(EventDateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		return ErrInvalidDate
	}

	event.Title = strings.TrimSpace(req.Title)
	event.Description = strings.TrimSpace(req.Description)
	event.Date = date
	event.Location = strings.TrimSpace(req.Location)
	event.Image = strings.TrimSpace(req.Image)
	return nil
}
