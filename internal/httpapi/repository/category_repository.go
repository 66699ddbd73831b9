package repository

import (
	"ratehub/internal/httpapi/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *models.Category) error
	FindBySlug(slug string) (*models.Category, error)
	List(search string, limit, offset int) ([]models.Category, int64, error)
	DeleteBySlug(slug string) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *models.Category) error {
	return translateError(r.db.Create(category).Error)
}

func (r *categoryRepository) FindBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) List(search string, limit, offset int) ([]models.Category, int64, error) {
	var categories []models.Category
	var total int64

	q := r.db.Model(&models.Category{})
	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("name").Limit(limit).Offset(offset).Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

// DeleteBySlug detaches titles through the schema's SET NULL constraint.
func (r *categoryRepository) DeleteBySlug(slug string) error {
	result := r.db.Where("slug = ?", slug).Delete(&models.Category{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
