package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuvibe/venuvibe-backend/internal/apperrors"
	"github.com/venuvibe/venuvibe-backend/internal/dto"
	"github.com/venuvibe/venuvibe-backend/internal/models"
)

func newRequestFixture(t *testing.T) (*RequestService, *models.Client, *models.Event) {
	t.Helper()
	db := setupTestDB(t)
	events := NewEventService(db)
	svc := NewRequestService(db, events)
	client := seedClient(t, db, "owner@example.com")
	event := seedEvent(t, db, client.ID)
	return svc, client, event
}

func TestRequestCreateWithAmount(t *testing.T) {
	svc, client, event := newRequestFixture(t)

	request, err := svc.Create(&dto.CreateRequestRequest{
		IDEvent:  event.ID,
		IDClient: client.ID,
		Title:    "Catering deposit",
		Amount:   ptr(500.0),
	})
	require.NoError(t, err)
	require.NotNil(t, request.TransactionID)
	assert.Equal(t, models.RequestStatusOpen, request.Status)

	var txn models.Transaction
	require.NoError(t, svc.db.First(&txn, *request.TransactionID).Error)
	assert.Equal(t, 500.0, txn.Amount)
	assert.Equal(t, event.ID, txn.EventID)

	views, err := svc.ListByEvent(event.ID, client.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.NotNil(t, views[0].Amount)
	assert.Equal(t, 500.0, *views[0].Amount)
}

func TestRequestCreateWithoutAmount(t *testing.T) {
	svc, client, event := newRequestFixture(t)

	request, err := svc.Create(&dto.CreateRequestRequest{
		IDEvent:  event.ID,
		IDClient: client.ID,
		Title:    "Find a florist",
	})
	require.NoError(t, err)
	assert.Nil(t, request.TransactionID)

	var count int64
	svc.db.Model(&models.Transaction{}).Count(&count)
	assert.Zero(t, count)
}

func TestRequestCreateRejectsForeignEvent(t *testing.T) {
	svc, _, event := newRequestFixture(t)
	intruder := seedClient(t, svc.db, "intruder@example.com")

	_, err := svc.Create(&dto.CreateRequestRequest{
		IDEvent:  event.ID,
		IDClient: intruder.ID,
		Title:    "Sneaky request",
		Amount:   ptr(100.0),
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	// The rejected create must leave no orphan transaction behind.
	var count int64
	svc.db.Model(&models.Transaction{}).Count(&count)
	assert.Zero(t, count)
}

func TestRequestCreateFailureLeavesNoTransaction(t *testing.T) {
	svc, client, event := newRequestFixture(t)

	// Drop the requests table so the transaction row lands first and the
	// request insert then fails, forcing a rollback of the pair.
	require.NoError(t, svc.db.Migrator().DropTable(&models.Request{}))

	_, err := svc.Create(&dto.CreateRequestRequest{
		IDEvent:  event.ID,
		IDClient: client.ID,
		Title:    "Catering deposit",
		Amount:   ptr(500.0),
	})
	require.Error(t, err)

	var count int64
	svc.db.Model(&models.Transaction{}).Count(&count)
	assert.Zero(t, count)
}

func TestRequestUpdateAmountInPlace(t *testing.T) {
	svc, client, event := newRequestFixture(t)

	request, err := svc.Create(&dto.CreateRequestRequest{
		IDEvent:  event.ID,
		IDClient: client.ID,
		Title:    "Catering deposit",
		Amount:   ptr(500.0),
	})
	require.NoError(t, err)
	originalTxnID := *request.TransactionID

	_, err = svc.Update(request.ID, &dto.UpdateRequestRequest{
		IDEvent:  event.ID,
		IDClient: client.ID,
		Amount:   ptr(750.0),
	})
	require.NoError(t, err)

	// Same transaction row, new amount; no second row appears.
	var txn models.Transaction
	require.NoError(t, svc.db.First(&txn, originalTxnID).Error)
	assert.Equal(t, 750.0, txn.Amount)

	var count int64
	svc.db.Model(&models.Transaction{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRequestUpdateBackfillsTransaction(t *testing.T) {
	svc, client, event := newRequestFixture(t)

	request, err := svc.Create(&dto.CreateRequestRequest{
		IDEvent:  event.ID,
		IDClient: client.ID,
		Title:    "Find a florist",
	})
	require.NoError(t, err)
	require.Nil(t, request.TransactionID)

	_, err = svc.Update(request.ID, &dto.UpdateRequestRequest{
		IDEvent:  event.ID,
		IDClient: client.ID,
		Amount:   ptr(300.0),
	})
	require.NoError(t, err)

	var stored models.Request
	require.NoError(t, svc.db.First(&stored, request.ID).Error)
	require.NotNil(t, stored.TransactionID)

	var txn models.Transaction
	require.NoError(t, svc.db.First(&txn, *stored.TransactionID).Error)
	assert.Equal(t, 300.0, txn.Amount)
}

func TestRequestUpdateWithoutAmountLeavesTransaction(t *testing.T) {
	svc, client, event := newRequestFixture(t)

	request, err := svc.Create(&dto.CreateRequestRequest{
		IDEvent:  event.ID,
		IDClient: client.ID,
		Title:    "Catering deposit",
		Amount:   ptr(500.0),
	})
	require.NoError(t, err)

	_, err = svc.Update(request.ID, &dto.UpdateRequestRequest{
		IDEvent:  event.ID,
		IDClient: client.ID,
		Status:   ptr(models.RequestStatusInProgress),
	})
	require.NoError(t, err)

	var txn models.Transaction
	require.NoError(t, svc.db.First(&txn, *request.TransactionID).Error)
	assert.Equal(t, 500.0, txn.Amount)

	var stored models.Request
	require.NoError(t, svc.db.First(&stored, request.ID).Error)
	assert.Equal(t, models.RequestStatusInProgress, stored.Status)
}

func TestRequestUpdateScopedToEvent(t *testing.T) {
	svc, client, event := newRequestFixture(t)
	otherEvent := seedEvent(t, svc.db, client.ID)

	request, err := svc.Create(&dto.CreateRequestRequest{
		IDEvent:  event.ID,
		IDClient: client.ID,
		Title:    "Catering deposit",
		Amount:   ptr(500.0),
	})
	require.NoError(t, err)

	// Addressing the request through a different (owned) event misses the
	// event-scoped lookup and reads as not found.
	_, err = svc.Update(request.ID, &dto.UpdateRequestRequest{
		IDEvent:  otherEvent.ID,
		IDClient: client.ID,
		Amount:   ptr(999.0),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	var txn models.Transaction
	require.NoError(t, svc.db.First(&txn, *request.TransactionID).Error)
	assert.Equal(t, 500.0, txn.Amount)
}

func TestRequestDeleteRemovesBothRows(t *testing.T) {
	svc, client, event := newRequestFixture(t)

	request, err := svc.Create(&dto.CreateRequestRequest{
		IDEvent:  event.ID,
		IDClient: client.ID,
		Title:    "Catering deposit",
		Amount:   ptr(500.0),
	})
	require.NoError(t, err)

	err = svc.Delete(request.ID, &dto.DeleteRequestRequest{
		IDEvent:  event.ID,
		IDClient: client.ID,
	})
	require.NoError(t, err)

	var requestCount, txnCount int64
	svc.db.Model(&models.Request{}).Count(&requestCount)
	svc.db.Model(&models.Transaction{}).Count(&txnCount)
	assert.Zero(t, requestCount)
	assert.Zero(t, txnCount)

	// Deleting again is NotFound.
	err = svc.Delete(request.ID, &dto.DeleteRequestRequest{
		IDEvent:  event.ID,
		IDClient: client.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRequestDeleteForeignEvent(t *testing.T) {
	svc, client, event := newRequestFixture(t)
	intruder := seedClient(t, svc.db, "intruder@example.com")

	request, err := svc.Create(&dto.CreateRequestRequest{
		IDEvent:  event.ID,
		IDClient: client.ID,
		Title:    "Catering deposit",
		Amount:   ptr(500.0),
	})
	require.NoError(t, err)

	err = svc.Delete(request.ID, &dto.DeleteRequestRequest{
		IDEvent:  event.ID,
		IDClient: intruder.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	var count int64
	svc.db.Model(&models.Request{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRequestStatusValidation(t *testing.T) {
	svc, client, event := newRequestFixture(t)

	_, err := svc.Create(&dto.CreateRequestRequest{
		IDEvent:  event.ID,
		IDClient: client.ID,
		Title:    "Bad status",
		Status:   "Archived",
	})
	assert.True(t, apperrors.IsValidation(err))

	request, err := svc.Create(&dto.CreateRequestRequest{
		IDEvent:  event.ID,
		IDClient: client.ID,
		Title:    "Good status",
		Status:   models.RequestStatusInProgress,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusInProgress, request.Status)
}

func TestRequestLegacyListing(t *testing.T) {
	svc, client, event := newRequestFixture(t)

	_, err := svc.Create(&dto.CreateRequestRequest{
		IDEvent:  event.ID,
		IDClient: client.ID,
		Title:    "Acompte traiteur",
		Deadline: "2026-06-01",
		Amount:   ptr(500.0),
	})
	require.NoError(t, err)

	views, err := svc.ListByEventLegacy(event.ID, client.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Acompte traiteur", views[0].Titre)
	assert.Equal(t, models.RequestStatusOpen, views[0].Statut)
	assert.Equal(t, "2026-06-01", views[0].DateLimite)
	require.NotNil(t, views[0].Montant)
	assert.Equal(t, 500.0, *views[0].Montant)
}
