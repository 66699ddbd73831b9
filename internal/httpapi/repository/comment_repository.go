package repository

import (
	"ratehub/internal/httpapi/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	FindByReviewAndID(reviewID, commentID int64) (*models.Comment, error)
	ListByReview(reviewID int64, limit, offset int) ([]models.Comment, int64, error)
	Update(comment *models.Comment) error
	Delete(id int64) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return translateError(r.db.Create(comment).Error)
}

func (r *commentRepository) FindByReviewAndID(reviewID, commentID int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("Author").
		Where("id = ? AND review_id = ?", commentID, reviewID).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByReview(reviewID int64, limit, offset int) ([]models.Comment, int64, error) {
	var comments []models.Comment
	var total int64

	if err := r.db.Model(&models.Comment{}).Where("review_id = ?", reviewID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Preload("Author").
		Where("review_id = ?", reviewID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *commentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

func (r *commentRepository) Delete(id int64) error {
	result := r.db.Delete(&models.Comment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
