package repository

import (
	"ratehub/internal/httpapi/models"

	"gorm.io/gorm"
)

type GenreRepository interface {
	Create(genre *models.Genre) error
	FindBySlug(slug string) (*models.Genre, error)
	FindBySlugs(slugs []string) ([]models.Genre, error)
	List(search string, limit, offset int) ([]models.Genre, int64, error)
	DeleteBySlug(slug string) error
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) Create(genre *models.Genre) error {
	return translateError(r.db.Create(genre).Error)
}

func (r *genreRepository) FindBySlug(slug string) (*models.Genre, error) {
	var genre models.Genre
	if err := r.db.Where("slug = ?", slug).First(&genre).Error; err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) FindBySlugs(slugs []string) ([]models.Genre, error) {
	var genres []models.Genre
	if err := r.db.Where("slug IN ?", slugs).Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *genreRepository) List(search string, limit, offset int) ([]models.Genre, int64, error) {
	var genres []models.Genre
	var total int64

	q := r.db.Model(&models.Genre{})
	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("name").Limit(limit).Offset(offset).Find(&genres).Error; err != nil {
		return nil, 0, err
	}
	return genres, total, nil
}

func (r *genreRepository) DeleteBySlug(slug string) error {
	result := r.db.Where("slug = ?", slug).Delete(&models.Genre{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
