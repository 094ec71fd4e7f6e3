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

// RequestService implements the budget-request lifecycle. A request with a
// monetary amount owns exactly one transaction; the two rows are written and
// removed as a unit, and every mutation is preceded by the event ownership
// check.
type RequestService struct {
	db     *gorm.DB
	events *EventService
}

func NewRequestService(db *gorm.DB, events *EventService) *RequestService {
	return &RequestService{db: db, events: events}
}

// Create inserts the transaction first (when an amount is supplied), then
// the request referencing it. Either both rows land or neither does.
func (s *RequestService) Create(req *dto.CreateRequestRequest) (*models.Request, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.Validation("title", "")
	}
	if req.IDEvent == 0 {
		return nil, apperrors.Validation("id_event", "")
	}
	if req.IDClient == 0 {
		return nil, apperrors.Validation("id_client", "")
	}
	if err := s.events.EnsureOwnedBy(req.IDEvent, req.IDClient); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.RequestStatusOpen
	}
	if !validRequestStatus(status) {
		return nil, apperrors.Validation("status", "unknown status")
	}

	var deadline *time.Time
	if req.Deadline != "" {
		d, err := parseDate(req.Deadline)
		if err != nil {
			return nil, apperrors.Validation("deadline", "invalid date")
		}
		deadline = &d
	}

	request := models.Request{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    deadline,
		Status:      status,
		EventID:     req.IDEvent,
		VendorID:    req.IDVendor,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if req.Amount != nil {
			txn := models.Transaction{
				Amount:  *req.Amount,
				EventID: req.IDEvent,
				Date:    time.Now(),
			}
			if err := tx.Create(&txn).Error; err != nil {
				return fmt.Errorf("failed to create transaction: %w", err)
			}
			request.TransactionID = &txn.ID
		}
		if err := tx.Create(&request).Error; err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// Update mutates the request and keeps its transaction consistent: a present
// amount updates the existing transaction in place (scoped by event id) or
// creates one and backfills the reference; an absent amount leaves the
// transaction untouched.
func (s *RequestService) Update(requestID uint, req *dto.UpdateRequestRequest) (*models.Request, error) {
	if req.IDEvent == 0 {
		return nil, apperrors.Validation("id_event", "")
	}
	if req.IDClient == 0 {
		return nil, apperrors.Validation("id_client", "")
	}
	if err := s.events.EnsureOwnedBy(req.IDEvent, req.IDClient); err != nil {
		return nil, err
	}

	var request models.Request
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND event_id = ?", requestID, req.IDEvent).
			First(&request).Error; err != nil {
			return apperrors.NotFound("Request not found")
		}

		updates := map[string]interface{}{}
		if req.Title != nil {
			if strings.TrimSpace(*req.Title) == "" {
				return apperrors.Validation("title", "")
			}
			updates["title"] = *req.Title
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Deadline != nil {
			d, err := parseDate(*req.Deadline)
			if err != nil {
				return apperrors.Validation("deadline", "invalid date")
			}
			updates["deadline"] = d
		}
		if req.Status != nil {
			if !validRequestStatus(*req.Status) {
				return apperrors.Validation("status", "unknown status")
			}
			updates["status"] = *req.Status
		}
		if req.IDVendor != nil {
			updates["vendor_id"] = *req.IDVendor
		}

		if req.Amount != nil {
			if request.TransactionID != nil {
				// Scoping by event id guards against a stale reference
				// pointing into another event's transactions.
				res := tx.Model(&models.Transaction{}).
					Where("id = ? AND event_id = ?", *request.TransactionID, req.IDEvent).
					Updates(map[string]interface{}{
						"amount": *req.Amount,
						"date":   time.Now(),
					})
				if res.Error != nil {
					return fmt.Errorf("failed to update transaction: %w", res.Error)
				}
				if res.RowsAffected == 0 {
					return apperrors.NotFound("Request not found")
				}
			} else {
				txn := models.Transaction{
					Amount:  *req.Amount,
					EventID: req.IDEvent,
					Date:    time.Now(),
				}
				if err := tx.Create(&txn).Error; err != nil {
					return fmt.Errorf("failed to create transaction: %w", err)
				}
				updates["transaction_id"] = txn.ID
			}
		}

		if len(updates) > 0 {
			if err := tx.Model(&request).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update request: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// Delete removes the transaction first (scoped to the same event), then the
// request. The request row is authoritative for existence: zero rows
// affected on its delete is NotFound even if the transaction delete ran.
func (s *RequestService) Delete(requestID uint, req *dto.DeleteRequestRequest) error {
	if req.IDEvent == 0 {
		return apperrors.Validation("id_event", "")
	}
	if req.IDClient == 0 {
		return apperrors.Validation("id_client", "")
	}
	if err := s.events.EnsureOwnedBy(req.IDEvent, req.IDClient); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var request models.Request
		if err := tx.Where("id = ? AND event_id = ?", requestID, req.IDEvent).
			First(&request).Error; err != nil {
			return apperrors.NotFound("Request not found")
		}

		if request.TransactionID != nil {
			if err := tx.Where("id = ? AND event_id = ?", *request.TransactionID, req.IDEvent).
				Delete(&models.Transaction{}).Error; err != nil {
				return fmt.Errorf("failed to delete transaction: %w", err)
			}
		}

		res := tx.Where("id = ? AND event_id = ?", requestID, req.IDEvent).
			Delete(&models.Request{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete request: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.NotFound("Request not found")
		}
		return nil
	})
}

// ListByEvent returns the event's requests joined with their transaction
// amounts. A non-zero clientID enforces ownership first; admins pass zero.
func (s *RequestService) ListByEvent(eventID, clientID uint) ([]dto.RequestView, error) {
	if clientID != 0 {
		if err := s.events.EnsureOwnedBy(eventID, clientID); err != nil {
			return nil, err
		}
	}

	requests, err := s.fetchByEvent(eventID)
	if err != nil {
		return nil, err
	}
	views := make([]dto.RequestView, 0, len(requests))
	for i := range requests {
		views = append(views, toRequestView(&requests[i]))
	}
	return views, nil
}

// ListByEventLegacy serves the same rows under the legacy French field
// names still consumed by older frontend pages.
func (s *RequestService) ListByEventLegacy(eventID, clientID uint) ([]dto.RequeteView, error) {
	if clientID != 0 {
		if err := s.events.EnsureOwnedBy(eventID, clientID); err != nil {
			return nil, err
		}
	}

	requests, err := s.fetchByEvent(eventID)
	if err != nil {
		return nil, err
	}
	views := make([]dto.RequeteView, 0, len(requests))
	for i := range requests {
		views = append(views, toRequeteView(&requests[i]))
	}
	return views, nil
}

func (s *RequestService) ListAll() ([]dto.RequestView, error) {
	var requests []models.Request
	if err := s.db.Preload("Transaction").Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	views := make([]dto.RequestView, 0, len(requests))
	for i := range requests {
		views = append(views, toRequestView(&requests[i]))
	}
	return views, nil
}

func (s *RequestService) fetchByEvent(eventID uint) ([]models.Request, error) {
	var requests []models.Request
	err := s.db.Preload("Transaction").
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&requests).Error
	return requests, err
}

func toRequestView(r *models.Request) dto.RequestView {
	view := dto.RequestView{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Status:        r.Status,
		IDEvent:       r.EventID,
		IDVendor:      r.VendorID,
		IDTransaction: r.TransactionID,
	}
	if r.Deadline != nil {
		view.Deadline = r.Deadline.Format("2006-01-02")
	}
	if r.Transaction != nil {
		view.Amount = &r.Transaction.Amount
	}
	return view
}

func toRequeteView(r *models.Request) dto.RequeteView {
	view := dto.RequeteView{
		IDRequete:     r.ID,
		Titre:         r.Title,
		Description:   r.Description,
		Statut:        r.Status,
		IDEvent:       r.EventID,
		IDVendor:      r.VendorID,
		IDTransaction: r.TransactionID,
	}
	if r.Deadline != nil {
		view.DateLimite = r.Deadline.Format("2006-01-02")
	}
	if r.Transaction != nil {
		view.Montant = &r.Transaction.Amount
	}
	return view
}

func validRequestStatus(status string) bool {
	switch status {
	case models.RequestStatusOpen, models.RequestStatusInProgress,
		models.RequestStatusCompleted, models.RequestStatusCancelled:
		return true
	}
	return false
}
