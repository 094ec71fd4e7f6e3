package services

import (
	"fmt"
	"strings"

	"github.com/venuvibe/venuvibe-backend/internal/apperrors"
	"github.com/venuvibe/venuvibe-backend/internal/models"
	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) Create(name string) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.Validation("name", "")
	}
	var existing models.Category
	if err := s.db.Where("name = ?", name).First(&existing).Error; err == nil {
		return nil, apperrors.Conflict("Category already exists")
	}

	category := models.Category{Name: name}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (s *CategoryService) List() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (s *CategoryService) Update(categoryID uint, name string) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.Validation("name", "")
	}
	var category models.Category
	if err := s.db.First(&category, categoryID).Error; err != nil {
		return nil, apperrors.NotFound("Category not found")
	}
	if err := s.db.Model(&category).Update("name", name).Error; err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &category, nil
}

// Delete removes the category and its vendor price rows; events keep their
// category_id cleared.
func (s *CategoryService) Delete(categoryID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, categoryID).Error; err != nil {
			return apperrors.NotFound("Category not found")
		}
		if err := tx.Where("category_id = ?", categoryID).Delete(&models.VendorPrice{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Event{}).
			Where("category_id = ?", categoryID).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}
