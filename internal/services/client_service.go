package services

import (
	"fmt"

	"github.com/venuvibe/venuvibe-backend/internal/apperrors"
	"github.com/venuvibe/venuvibe-backend/internal/models"
	"gorm.io/gorm"
)

// ClientService is the admin-side management of client accounts.
type ClientService struct {
	db     *gorm.DB
	events *EventService
}

func NewClientService(db *gorm.DB, events *EventService) *ClientService {
	return &ClientService{db: db, events: events}
}

func (s *ClientService) List() ([]models.Client, error) {
	var clients []models.Client
	err := s.db.Order("created_at DESC").Find(&clients).Error
	return clients, err
}

func (s *ClientService) Get(clientID uint) (*models.Client, error) {
	var client models.Client
	if err := s.db.First(&client, clientID).Error; err != nil {
		return nil, apperrors.NotFound("Client not found")
	}
	return &client, nil
}

// Delete removes the client, every event they own (with the event cascade),
// and their provider links.
func (s *ClientService) Delete(clientID uint) error {
	client, err := s.Get(clientID)
	if err != nil {
		return err
	}

	var events []models.Event
	if err := s.db.Where("client_id = ?", clientID).Find(&events).Error; err != nil {
		return fmt.Errorf("failed to list client events: %w", err)
	}
	for _, ev := range events {
		if err := s.events.Delete(ev.ID, 0); err != nil {
			return fmt.Errorf("failed to delete event %d: %w", ev.ID, err)
		}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", clientID).Delete(&models.OAuthAccount{}).Error; err != nil {
			return err
		}
		return tx.Delete(client).Error
	})
}
