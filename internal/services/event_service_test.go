package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuvibe/venuvibe-backend/internal/apperrors"
	"github.com/venuvibe/venuvibe-backend/internal/dto"
	"github.com/venuvibe/venuvibe-backend/internal/models"
)

func TestEventCreateWithVendorsAndTasks(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)
	client := seedClient(t, db, "owner@example.com")
	v1 := seedVendor(t, db, "Traiteur Lyonnais")
	v2 := seedVendor(t, db, "DJ Max")

	event, err := svc.Create(&dto.CreateEventRequest{
		UserID:         client.ID,
		Title:          "Mariage Dupont",
		Type:           "Wedding",
		Date:           "2026-09-12",
		Location:       "Annecy",
		ExpectedGuests: 80,
		Budget:         20000,
		Vendors:        []uint{v1.ID, v2.ID},
		Tasks: []dto.TaskInput{
			{Title: "Book venue"},
			{Title: "Send invitations", Description: "before June"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusOpen, event.Status)

	var linkCount, taskCount int64
	db.Model(&models.EventVendor{}).Where("event_id = ?", event.ID).Count(&linkCount)
	db.Model(&models.Task{}).Where("event_id = ?", event.ID).Count(&taskCount)
	assert.Equal(t, int64(2), linkCount)
	assert.Equal(t, int64(2), taskCount)

	loaded, err := svc.Get(event.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Vendors, 2)
	assert.Len(t, loaded.Tasks, 2)
}

func TestEventCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)
	client := seedClient(t, db, "owner@example.com")

	valid := dto.CreateEventRequest{
		UserID:         client.ID,
		Title:          "Gala",
		Type:           "Gala",
		Date:           "2026-09-12",
		Location:       "Paris",
		ExpectedGuests: 50,
	}

	cases := []struct {
		name   string
		mutate func(*dto.CreateEventRequest)
	}{
		{"missing user_id", func(r *dto.CreateEventRequest) { r.UserID = 0 }},
		{"missing title", func(r *dto.CreateEventRequest) { r.Title = " " }},
		{"missing type", func(r *dto.CreateEventRequest) { r.Type = "" }},
		{"missing location", func(r *dto.CreateEventRequest) { r.Location = "" }},
		{"zero guests", func(r *dto.CreateEventRequest) { r.ExpectedGuests = 0 }},
		{"bad date", func(r *dto.CreateEventRequest) { r.Date = "12/09/2026" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			_, err := svc.Create(&req)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestEnsureOwnedBy(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)
	owner := seedClient(t, db, "owner@example.com")
	intruder := seedClient(t, db, "intruder@example.com")
	event := seedEvent(t, db, owner.ID)

	assert.NoError(t, svc.EnsureOwnedBy(event.ID, owner.ID))

	err := svc.EnsureOwnedBy(event.ID, intruder.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.EqualError(t, err, "Event does not belong to the client")

	// A missing event is indistinguishable from a foreign one.
	err = svc.EnsureOwnedBy(9999, owner.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestEventUpdate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)
	owner := seedClient(t, db, "owner@example.com")
	intruder := seedClient(t, db, "intruder@example.com")
	event := seedEvent(t, db, owner.ID)

	_, err := svc.Update(event.ID, intruder.ID, &dto.UpdateEventRequest{Title: ptr("Hijacked")})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = svc.Update(event.ID, owner.ID, &dto.UpdateEventRequest{Status: ptr("Archived")})
	assert.True(t, apperrors.IsValidation(err))

	updated, err := svc.Update(event.ID, owner.ID, &dto.UpdateEventRequest{
		Title:  ptr("Winter Gala"),
		Status: ptr(models.EventStatusPlanned),
		Budget: ptr(18000.0),
	})
	require.NoError(t, err)

	var stored models.Event
	require.NoError(t, db.First(&stored, updated.ID).Error)
	assert.Equal(t, "Winter Gala", stored.Title)
	assert.Equal(t, models.EventStatusPlanned, stored.Status)
	assert.Equal(t, 18000.0, stored.Budget)
	// Untouched fields survive a partial update.
	assert.Equal(t, "Lyon", stored.Location)
}

func TestEventUpdateAsAdminSkipsOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)
	owner := seedClient(t, db, "owner@example.com")
	event := seedEvent(t, db, owner.ID)

	_, err := svc.Update(event.ID, 0, &dto.UpdateEventRequest{Status: ptr(models.EventStatusCancelled)})
	assert.NoError(t, err)
}

func TestEventDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)
	requests := NewRequestService(db, svc)
	owner := seedClient(t, db, "owner@example.com")
	vendor := seedVendor(t, db, "Traiteur")

	event, err := svc.Create(&dto.CreateEventRequest{
		UserID:         owner.ID,
		Title:          "Gala",
		Type:           "Gala",
		Date:           "2026-09-12",
		Location:       "Paris",
		ExpectedGuests: 50,
		Vendors:        []uint{vendor.ID},
		Tasks:          []dto.TaskInput{{Title: "Book venue"}},
	})
	require.NoError(t, err)

	_, err = requests.Create(&dto.CreateRequestRequest{
		IDEvent:  event.ID,
		IDClient: owner.ID,
		Title:    "Catering deposit",
		Amount:   ptr(500.0),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(event.ID, owner.ID))

	for name, model := range map[string]interface{}{
		"event_vendors": &models.EventVendor{},
		"tasks":         &models.Task{},
		"requests":      &models.Request{},
		"transactions":  &models.Transaction{},
	} {
		var count int64
		db.Model(model).Where("event_id = ?", event.ID).Count(&count)
		assert.Zero(t, count, name)
	}

	_, err = svc.Get(event.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// The vendor itself is untouched.
	var vendorCount int64
	db.Model(&models.Vendor{}).Count(&vendorCount)
	assert.Equal(t, int64(1), vendorCount)
}
