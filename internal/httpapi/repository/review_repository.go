package repository

import (
	"ratehub/internal/httpapi/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	// Create inserts optimistically; a second review by the same author
	// on the same title surfaces as ErrDuplicate from the store's
	// (title_id, author_id) unique index.
	Create(review *models.Review) error
	FindByTitleAndID(titleID, reviewID int64) (*models.Review, error)
	ListByTitle(titleID int64, limit, offset int) ([]models.Review, int64, error)
	Update(review *models.Review) error
	Delete(id int64) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *models.Review) error {
	return translateError(r.db.Create(review).Error)
}

func (r *reviewRepository) FindByTitleAndID(titleID, reviewID int64) (*models.Review, error) {
	var review models.Review
	err := r.db.Preload("Author").
		Where("id = ? AND title_id = ?", reviewID, titleID).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListByTitle(titleID int64, limit, offset int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	if err := r.db.Model(&models.Review{}).Where("title_id = ?", titleID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Preload("Author").
		Where("title_id = ?", titleID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *reviewRepository) Update(review *models.Review) error {
	return translateError(r.db.Save(review).Error)
}

func (r *reviewRepository) Delete(id int64) error {
	result := r.db.Delete(&models.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
