package services

import (
	"github.com/venuvibe/venuvibe-backend/internal/models"
	"gorm.io/gorm"
)

// DashboardStats feeds the admin dashboard.
type DashboardStats struct {
	Clients        int64             `json:"clients"`
	Events         int64             `json:"events"`
	Vendors        int64             `json:"vendors"`
	Requests       int64             `json:"requests"`
	EventsByStatus map[string]int64  `json:"events_by_status"`
	TotalVolume    float64           `json:"total_volume"`
	VolumeByEvent  []EventVolumeStat `json:"volume_by_event"`
}

type EventVolumeStat struct {
	EventID uint    `json:"event_id"`
	Title   string  `json:"title"`
	Volume  float64 `json:"volume"`
}

type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

func (s *AnalyticsService) Dashboard() (*DashboardStats, error) {
	stats := &DashboardStats{EventsByStatus: map[string]int64{}}

	if err := s.db.Model(&models.Client{}).Count(&stats.Clients).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Event{}).Count(&stats.Events).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Vendor{}).Count(&stats.Vendors).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Request{}).Count(&stats.Requests).Error; err != nil {
		return nil, err
	}

	var statusRows []struct {
		Status string
		Count  int64
	}
	if err := s.db.Model(&models.Event{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, err
	}
	for _, row := range statusRows {
		stats.EventsByStatus[row.Status] = row.Count
	}

	var total struct{ Volume float64 }
	if err := s.db.Model(&models.Transaction{}).
		Select("coalesce(sum(amount), 0) as volume").
		Scan(&total).Error; err != nil {
		return nil, err
	}
	stats.TotalVolume = total.Volume

	if err := s.db.Model(&models.Transaction{}).
		Select("transactions.event_id as event_id, events.title as title, sum(transactions.amount) as volume").
		Joins("JOIN events ON events.id = transactions.event_id").
		Group("transactions.event_id, events.title").
		Order("volume DESC").
		Scan(&stats.VolumeByEvent).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
