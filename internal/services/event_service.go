package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/venuvibe/venuvibe-backend/internal/apperrors"
	"github.com/venuvibe/venuvibe-backend/internal/dto"
	"github.com/venuvibe/venuvibe-backend/internal/models"
	"gorm.io/gorm"
)

// EventService owns event CRUD, the vendor-link and task rows created with
// an event, and the ownership check every event-scoped mutation runs first.
type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

// EnsureOwnedBy verifies the event belongs to the client. The schema has no
// FK constraint backing this, so it is checked on every scoped mutation.
func (s *EventService) EnsureOwnedBy(eventID, clientID uint) error {
	var count int64
	if err := s.db.Model(&models.Event{}).
		Where("id = ? AND client_id = ?", eventID, clientID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("ownership check failed: %w", err)
	}
	if count == 0 {
		return apperrors.Forbidden("Event does not belong to the client")
	}
	return nil
}

// Create inserts the event plus its vendor links and tasks in one DB
// transaction; a failure on any row leaves nothing behind.
func (s *EventService) Create(req *dto.CreateEventRequest) (*models.Event, error) {
	if req.UserID == 0 {
		return nil, apperrors.Validation("user_id", "")
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.Validation("title", "")
	}
	if strings.TrimSpace(req.Type) == "" {
		return nil, apperrors.Validation("type", "")
	}
	if strings.TrimSpace(req.Location) == "" {
		return nil, apperrors.Validation("location", "")
	}
	if req.ExpectedGuests <= 0 {
		return nil, apperrors.Validation("expectedGuests", "must be positive")
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, apperrors.Validation("date", "invalid date")
	}

	event := models.Event{
		ClientID:       req.UserID,
		Title:          req.Title,
		Type:           req.Type,
		Date:           date,
		Location:       req.Location,
		Description:    req.Description,
		ExpectedGuests: req.ExpectedGuests,
		Budget:         req.Budget,
		Status:         models.EventStatusOpen,
		CategoryID:     req.CategoryID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return fmt.Errorf("failed to create event: %w", err)
		}
		for _, vendorID := range req.Vendors {
			link := models.EventVendor{EventID: event.ID, VendorID: vendorID}
			if err := tx.Create(&link).Error; err != nil {
				return fmt.Errorf("failed to link vendor %d: %w", vendorID, err)
			}
		}
		for _, t := range req.Tasks {
			task := models.Task{
				EventID:     event.ID,
				Title:       t.Title,
				Description: t.Description,
				Status:      models.EventStatusOpen,
			}
			if err := tx.Create(&task).Error; err != nil {
				return fmt.Errorf("failed to create task: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventService) Get(eventID uint) (*models.Event, error) {
	var event models.Event
	if err := s.db.Preload("Tasks").Preload("Vendors").First(&event, eventID).Error; err != nil {
		return nil, apperrors.NotFound("Event not found")
	}
	return &event, nil
}

func (s *EventService) ListByClient(clientID uint) ([]models.Event, error) {
	var events []models.Event
	err := s.db.Where("client_id = ?", clientID).
		Order("date ASC").
		Find(&events).Error
	return events, err
}

func (s *EventService) ListAll() ([]models.Event, error) {
	var events []models.Event
	err := s.db.Order("date ASC").Find(&events).Error
	return events, err
}

// Update applies a partial update. When clientID is non-zero the caller is
// a client and must own the event; admins pass zero and skip the check.
func (s *EventService) Update(eventID, clientID uint, req *dto.UpdateEventRequest) (*models.Event, error) {
	if clientID != 0 {
		if err := s.EnsureOwnedBy(eventID, clientID); err != nil {
			return nil, err
		}
	}

	var event models.Event
	if err := s.db.First(&event, eventID).Error; err != nil {
		return nil, apperrors.NotFound("Event not found")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, apperrors.Validation("date", "invalid date")
		}
		updates["date"] = date
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ExpectedGuests != nil {
		updates["expected_guests"] = *req.ExpectedGuests
	}
	if req.Budget != nil {
		updates["budget"] = *req.Budget
	}
	if req.Status != nil {
		if !validEventStatus(*req.Status) {
			return nil, apperrors.Validation("status", "unknown status")
		}
		updates["status"] = *req.Status
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}

	if len(updates) > 0 {
		if err := s.db.Model(&event).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update event: %w", err)
		}
	}
	return &event, nil
}

// Delete removes the event and everything hanging off it: vendor links,
// tasks, requests and their transactions. The cascade lives here because
// the schema carries no FK constraints for it.
func (s *EventService) Delete(eventID, clientID uint) error {
	if clientID != 0 {
		if err := s.EnsureOwnedBy(eventID, clientID); err != nil {
			return err
		}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.First(&event, eventID).Error; err != nil {
			return apperrors.NotFound("Event not found")
		}

		if err := tx.Where("event_id = ?", eventID).Delete(&models.EventVendor{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", eventID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", eventID).Delete(&models.Request{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", eventID).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&event).Error
	})
}

func validEventStatus(status string) bool {
	switch status {
	case models.EventStatusOpen, models.EventStatusPlanned, models.EventStatusOngoing,
		models.EventStatusCompleted, models.EventStatusCancelled:
		return true
	}
	return false
}

// parseDate accepts the frontend's date-only format and full RFC3339.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
