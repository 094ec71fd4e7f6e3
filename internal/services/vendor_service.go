package services

import (
	"fmt"
	"strings"

	"github.com/venuvibe/venuvibe-backend/internal/apperrors"
	"github.com/venuvibe/venuvibe-backend/internal/dto"
	"github.com/venuvibe/venuvibe-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VendorService struct {
	db *gorm.DB
}

func NewVendorService(db *gorm.DB) *VendorService {
	return &VendorService{db: db}
}

func (s *VendorService) Create(req *dto.VendorRequest) (*models.Vendor, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.Validation("name", "")
	}
	if req.Rating < 0 || req.Rating > 5 {
		return nil, apperrors.Validation("rating", "must be between 0 and 5")
	}

	vendor := models.Vendor{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Rating:      req.Rating,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
	}
	if err := s.db.Create(&vendor).Error; err != nil {
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}
	return &vendor, nil
}

func (s *VendorService) Get(vendorID uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.db.First(&vendor, vendorID).Error; err != nil {
		return nil, apperrors.NotFound("Vendor not found")
	}
	return &vendor, nil
}

func (s *VendorService) List() ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := s.db.Order("name ASC").Find(&vendors).Error
	return vendors, err
}

func (s *VendorService) ListByCategory(category string) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := s.db.Where("category = ?", category).Order("rating DESC").Find(&vendors).Error
	return vendors, err
}

// Update applies a partial update; nil fields stay untouched, so a rating
// can be reset to zero and text fields can be cleared.
func (s *VendorService) Update(vendorID uint, req *dto.UpdateVendorRequest) (*models.Vendor, error) {
	vendor, err := s.Get(vendorID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, apperrors.Validation("name", "")
		}
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Rating != nil {
		if *req.Rating < 0 || *req.Rating > 5 {
			return nil, apperrors.Validation("rating", "must be between 0 and 5")
		}
		updates["rating"] = *req.Rating
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}

	if len(updates) > 0 {
		if err := s.db.Model(vendor).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update vendor: %w", err)
		}
	}
	return vendor, nil
}

// Delete removes the vendor, its price rows and its event links in one
// transaction. Requests keep their id_vendor cleared rather than deleted.
func (s *VendorService) Delete(vendorID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var vendor models.Vendor
		if err := tx.First(&vendor, vendorID).Error; err != nil {
			return apperrors.NotFound("Vendor not found")
		}
		if err := tx.Where("vendor_id = ?", vendorID).Delete(&models.VendorPrice{}).Error; err != nil {
			return err
		}
		if err := tx.Where("vendor_id = ?", vendorID).Delete(&models.EventVendor{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Request{}).
			Where("vendor_id = ?", vendorID).
			Update("vendor_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&vendor).Error
	})
}

// SetPrice upserts the price for a (vendor, category) pair: re-adding the
// same pair overwrites the amount instead of duplicating the row.
func (s *VendorService) SetPrice(vendorID uint, req *dto.SetPriceRequest) (*models.VendorPrice, error) {
	if req.CategoryID == 0 {
		return nil, apperrors.Validation("category_id", "")
	}
	if req.Price < 0 {
		return nil, apperrors.Validation("price", "must not be negative")
	}
	if _, err := s.Get(vendorID); err != nil {
		return nil, err
	}
	var category models.Category
	if err := s.db.First(&category, req.CategoryID).Error; err != nil {
		return nil, apperrors.NotFound("Category not found")
	}

	price := models.VendorPrice{
		VendorID:   vendorID,
		CategoryID: req.CategoryID,
		Price:      req.Price,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "vendor_id"}, {Name: "category_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"price"}),
	}).Create(&price).Error
	if err != nil {
		return nil, fmt.Errorf("failed to set price: %w", err)
	}
	return &price, nil
}

func (s *VendorService) Prices(vendorID uint) ([]models.VendorPrice, error) {
	var prices []models.VendorPrice
	err := s.db.Where("vendor_id = ?", vendorID).Find(&prices).Error
	return prices, err
}
