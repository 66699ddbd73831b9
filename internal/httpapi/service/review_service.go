package service

import (
	"context"
	"errors"

	"ratehub/internal/authz"
	"ratehub/internal/cache"
	"ratehub/internal/httpapi/dto"
	"ratehub/internal/httpapi/models"
	"ratehub/internal/httpapi/repository"
)

type ReviewService interface {
	Create(ctx context.Context, titleID int64, author *models.User, in dto.CreateReviewDTO) (*dto.ReviewResponse, error)
	Get(titleID, reviewID int64) (*dto.ReviewResponse, error)
	ListByTitle(titleID int64, limit, offset int) ([]dto.ReviewResponse, int64, error)
	Update(ctx context.Context, titleID, reviewID int64, subject *models.User, in dto.UpdateReviewDTO) (*dto.ReviewResponse, error)
	Delete(ctx context.Context, titleID, reviewID int64, subject *models.User) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	titleRepo  repository.TitleRepository
	titleCache *cache.TitleCache
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	titleRepo repository.TitleRepository,
	titleCache *cache.TitleCache,
) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		titleRepo:  titleRepo,
		titleCache: titleCache,
	}
}

func (s *reviewService) Create(ctx context.Context, titleID int64, author *models.User, in dto.CreateReviewDTO) (*dto.ReviewResponse, error) {
	if in.Score < 1 || in.Score > 10 {
		return nil, validationErr("score", "score must be between 1 and 10")
	}
	if _, err := s.titleRepo.FindByID(titleID); err != nil {
		return nil, err
	}

	review := &models.Review{
		TitleID:  titleID,
		AuthorID: author.ID,
		Text:     in.Text,
		Score:    in.Score,
	}
	// The insert goes in without a prior existence check; the store's
	// (title_id, author_id) constraint decides, so two concurrent
	// submissions by the same author can't both land.
	if err := s.reviewRepo.Create(review); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrReviewExists
		}
		return nil, err
	}
	review.Author = *author

	s.titleCache.Invalidate(ctx, titleID)
	resp := dto.ReviewFromModel(*review)
	return &resp, nil
}

func (s *reviewService) Get(titleID, reviewID int64) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByTitleAndID(titleID, reviewID)
	if err != nil {
		return nil, err
	}
	resp := dto.ReviewFromModel(*review)
	return &resp, nil
}

func (s *reviewService) ListByTitle(titleID int64, limit, offset int) ([]dto.ReviewResponse, int64, error) {
	if _, err := s.titleRepo.FindByID(titleID); err != nil {
		return nil, 0, err
	}
	reviews, total, err := s.reviewRepo.ListByTitle(titleID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, dto.ReviewFromModel(review))
	}
	return responses, total, nil
}

func (s *reviewService) Update(ctx context.Context, titleID, reviewID int64, subject *models.User, in dto.UpdateReviewDTO) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByTitleAndID(titleID, reviewID)
	if err != nil {
		return nil, err
	}
	if !authz.Allowed(subject, authz.ActionUpdate, authz.Resource{Kind: authz.KindReview, OwnerID: review.AuthorID}) {
		return nil, ErrForbidden
	}

	if in.Text != nil {
		review.Text = *in.Text
	}
	if in.Score != nil {
		if *in.Score < 1 || *in.Score > 10 {
			return nil, validationErr("score", "score must be between 1 and 10")
		}
		review.Score = *in.Score
	}
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}

	s.titleCache.Invalidate(ctx, titleID)
	resp := dto.ReviewFromModel(*review)
	return &resp, nil
}

func (s *reviewService) Delete(ctx context.Context, titleID, reviewID int64, subject *models.User) error {
	review, err := s.reviewRepo.FindByTitleAndID(titleID, reviewID)
	if err != nil {
		return err
	}
	if !authz.Allowed(subject, authz.ActionDelete, authz.Resource{Kind: authz.KindReview, OwnerID: review.AuthorID}) {
		return ErrForbidden
	}
	if err := s.reviewRepo.Delete(review.ID); err != nil {
		return err
	}
	s.titleCache.Invalidate(ctx, titleID)
	return nil
}
