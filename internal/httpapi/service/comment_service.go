package service

import (
	"ratehub/internal/authz"
	"ratehub/internal/httpapi/dto"
	"ratehub/internal/httpapi/models"
	"ratehub/internal/httpapi/repository"
)

type CommentService interface {
	Create(titleID, reviewID int64, author *models.User, in dto.CreateCommentDTO) (*dto.CommentResponse, error)
	Get(titleID, reviewID, commentID int64) (*dto.CommentResponse, error)
	ListByReview(titleID, reviewID int64, limit, offset int) ([]dto.CommentResponse, int64, error)
	Update(titleID, reviewID, commentID int64, subject *models.User, in dto.UpdateCommentDTO) (*dto.CommentResponse, error)
	Delete(titleID, reviewID, commentID int64, subject *models.User) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	reviewRepo  repository.ReviewRepository
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	reviewRepo repository.ReviewRepository,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
	}
}

// resolveReview finds the review under the title named in the path. A
// review that exists under a different title is treated as missing, never
// silently reparented.
func (s *commentService) resolveReview(titleID, reviewID int64) (*models.Review, error) {
	return s.reviewRepo.FindByTitleAndID(titleID, reviewID)
}

func (s *commentService) Create(titleID, reviewID int64, author *models.User, in dto.CreateCommentDTO) (*dto.CommentResponse, error) {
	review, err := s.resolveReview(titleID, reviewID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ReviewID: review.ID,
		AuthorID: author.ID,
		Text:     in.Text,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	comment.Author = *author

	resp := dto.CommentFromModel(*comment)
	return &resp, nil
}

func (s *commentService) Get(titleID, reviewID, commentID int64) (*dto.CommentResponse, error) {
	if _, err := s.resolveReview(titleID, reviewID); err != nil {
		return nil, err
	}
	comment, err := s.commentRepo.FindByReviewAndID(reviewID, commentID)
	if err != nil {
		return nil, err
	}
	resp := dto.CommentFromModel(*comment)
	return &resp, nil
}

func (s *commentService) ListByReview(titleID, reviewID int64, limit, offset int) ([]dto.CommentResponse, int64, error) {
	if _, err := s.resolveReview(titleID, reviewID); err != nil {
		return nil, 0, err
	}
	comments, total, err := s.commentRepo.ListByReview(reviewID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, dto.CommentFromModel(comment))
	}
	return responses, total, nil
}

func (s *commentService) Update(titleID, reviewID, commentID int64, subject *models.User, in dto.UpdateCommentDTO) (*dto.CommentResponse, error) {
	if _, err := s.resolveReview(titleID, reviewID); err != nil {
		return nil, err
	}
	comment, err := s.commentRepo.FindByReviewAndID(reviewID, commentID)
	if err != nil {
		return nil, err
	}
	if !authz.Allowed(subject, authz.ActionUpdate, authz.Resource{Kind: authz.KindComment, OwnerID: comment.AuthorID}) {
		return nil, ErrForbidden
	}

	comment.Text = in.Text
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	resp := dto.CommentFromModel(*comment)
	return &resp, nil
}

func (s *commentService) Delete(titleID, reviewID, commentID int64, subject *models.User) error {
	if _, err := s.resolveReview(titleID, reviewID); err != nil {
		return err
	}
	comment, err := s.commentRepo.FindByReviewAndID(reviewID, commentID)
	if err != nil {
		return err
	}
	if !authz.Allowed(subject, authz.ActionDelete, authz.Resource{Kind: authz.KindComment, OwnerID: comment.AuthorID}) {
		return ErrForbidden
	}
	return s.commentRepo.Delete(comment.ID)
}
