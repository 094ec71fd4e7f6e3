package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuvibe/venuvibe-backend/internal/dto"
	"github.com/venuvibe/venuvibe-backend/internal/models"
)

func TestDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	events := NewEventService(db)
	requests := NewRequestService(db, events)
	svc := NewAnalyticsService(db)

	client := seedClient(t, db, "owner@example.com")
	seedVendor(t, db, "Traiteur")
	e1 := seedEvent(t, db, client.ID)
	e2 := seedEvent(t, db, client.ID)
	require.NoError(t, db.Model(&models.Event{}).Where("id = ?", e2.ID).
		Update("status", models.EventStatusPlanned).Error)

	_, err := requests.Create(&dto.CreateRequestRequest{
		IDEvent: e1.ID, IDClient: client.ID, Title: "Deposit", Amount: ptr(500.0),
	})
	require.NoError(t, err)
	_, err = requests.Create(&dto.CreateRequestRequest{
		IDEvent: e1.ID, IDClient: client.ID, Title: "Balance", Amount: ptr(1500.0),
	})
	require.NoError(t, err)
	_, err = requests.Create(&dto.CreateRequestRequest{
		IDEvent: e2.ID, IDClient: client.ID, Title: "Flowers", Amount: ptr(300.0),
	})
	require.NoError(t, err)

	stats, err := svc.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.Clients)
	assert.Equal(t, int64(2), stats.Events)
	assert.Equal(t, int64(1), stats.Vendors)
	assert.Equal(t, int64(3), stats.Requests)
	assert.Equal(t, int64(1), stats.EventsByStatus[models.EventStatusOpen])
	assert.Equal(t, int64(1), stats.EventsByStatus[models.EventStatusPlanned])
	assert.Equal(t, 2300.0, stats.TotalVolume)

	require.Len(t, stats.VolumeByEvent, 2)
	// Ordered by volume, largest first.
	assert.Equal(t, e1.ID, stats.VolumeByEvent[0].EventID)
	assert.Equal(t, 2000.0, stats.VolumeByEvent[0].Volume)
	assert.Equal(t, 300.0, stats.VolumeByEvent[1].Volume)
}
