package service

import (
	"context"
	"testing"

	"ratehub/internal/httpapi/dto"
	"ratehub/internal/httpapi/models"
	"ratehub/internal/httpapi/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func reviewAuthor() *models.User {
	return &models.User{ID: "author-1", Username: "reader", Role: models.RoleUser}
}

func TestReviewCreate_Success(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	titleRepo := new(MockTitleRepository)
	svc := NewReviewService(reviewRepo, titleRepo, nil)

	titleRepo.On("FindByID", int64(5)).Return(&models.Title{ID: 5}, nil)
	reviewRepo.On("Create", mock.AnythingOfType("*models.Review")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Review).ID = 11
	}).Return(nil)

	resp, err := svc.Create(context.Background(), 5, reviewAuthor(), dto.CreateReviewDTO{Text: "great", Score: 8})

	assert.NoError(t, err)
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, "reader", resp.Author)
	assert.Equal(t, 8, resp.Score)
}

func TestReviewCreate_SecondReviewSameTitleConflicts(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	titleRepo := new(MockTitleRepository)
	svc := NewReviewService(reviewRepo, titleRepo, nil)

	titleRepo.On("FindByID", int64(5)).Return(&models.Title{ID: 5}, nil)
	// The store's unique (title_id, author_id) index refuses the insert.
	reviewRepo.On("Create", mock.AnythingOfType("*models.Review")).Return(repository.ErrDuplicate)

	_, err := svc.Create(context.Background(), 5, reviewAuthor(), dto.CreateReviewDTO{Text: "again", Score: 6})

	assert.ErrorIs(t, err, ErrReviewExists)
}

func TestReviewCreate_SameAuthorDifferentTitlesAllowed(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	titleRepo := new(MockTitleRepository)
	svc := NewReviewService(reviewRepo, titleRepo, nil)

	titleRepo.On("FindByID", mock.AnythingOfType("int64")).Return(&models.Title{}, nil)
	reviewRepo.On("Create", mock.AnythingOfType("*models.Review")).Return(nil)

	author := reviewAuthor()
	_, err := svc.Create(context.Background(), 5, author, dto.CreateReviewDTO{Text: "a", Score: 7})
	assert.NoError(t, err)
	_, err = svc.Create(context.Background(), 6, author, dto.CreateReviewDTO{Text: "b", Score: 3})
	assert.NoError(t, err)
}

func TestReviewCreate_UnknownTitle(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	titleRepo := new(MockTitleRepository)
	svc := NewReviewService(reviewRepo, titleRepo, nil)

	titleRepo.On("FindByID", int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), 404, reviewAuthor(), dto.CreateReviewDTO{Text: "x", Score: 5})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	reviewRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestReviewCreate_ScoreBounds(t *testing.T) {
	svc := NewReviewService(new(MockReviewRepository), new(MockTitleRepository), nil)

	for _, score := range []int{0, 11, -3} {
		_, err := svc.Create(context.Background(), 5, reviewAuthor(), dto.CreateReviewDTO{Text: "x", Score: score})
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "score", vErr.Field)
	}
}

func TestReviewUpdate_OwnerAllowed(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	svc := NewReviewService(reviewRepo, new(MockTitleRepository), nil)

	author := reviewAuthor()
	stored := &models.Review{ID: 11, TitleID: 5, AuthorID: author.ID, Text: "old", Score: 4, Author: *author}
	reviewRepo.On("FindByTitleAndID", int64(5), int64(11)).Return(stored, nil)
	reviewRepo.On("Update", mock.AnythingOfType("*models.Review")).Return(nil)

	text := "revised"
	score := 9
	resp, err := svc.Update(context.Background(), 5, 11, author, dto.UpdateReviewDTO{Text: &text, Score: &score})

	assert.NoError(t, err)
	assert.Equal(t, "revised", resp.Text)
	assert.Equal(t, 9, resp.Score)
}

func TestReviewUpdate_StrangerForbidden(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	svc := NewReviewService(reviewRepo, new(MockTitleRepository), nil)

	stored := &models.Review{ID: 11, TitleID: 5, AuthorID: "author-1"}
	reviewRepo.On("FindByTitleAndID", int64(5), int64(11)).Return(stored, nil)

	stranger := &models.User{ID: "other", Role: models.RoleUser}
	text := "vandalism"
	_, err := svc.Update(context.Background(), 5, 11, stranger, dto.UpdateReviewDTO{Text: &text})

	assert.ErrorIs(t, err, ErrForbidden)
	reviewRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestReviewDelete_ModeratorAllowed(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	svc := NewReviewService(reviewRepo, new(MockTitleRepository), nil)

	stored := &models.Review{ID: 11, TitleID: 5, AuthorID: "author-1"}
	reviewRepo.On("FindByTitleAndID", int64(5), int64(11)).Return(stored, nil)
	reviewRepo.On("Delete", int64(11)).Return(nil)

	moderator := &models.User{ID: "mod-1", Role: models.RoleModerator}
	assert.NoError(t, svc.Delete(context.Background(), 5, 11, moderator))
	reviewRepo.AssertExpectations(t)
}

func TestReviewDelete_StrangerForbidden(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	svc := NewReviewService(reviewRepo, new(MockTitleRepository), nil)

	stored := &models.Review{ID: 11, TitleID: 5, AuthorID: "author-1"}
	reviewRepo.On("FindByTitleAndID", int64(5), int64(11)).Return(stored, nil)

	stranger := &models.User{ID: "other", Role: models.RoleUser}
	err := svc.Delete(context.Background(), 5, 11, stranger)

	assert.ErrorIs(t, err, ErrForbidden)
	reviewRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestReviewGet_WrongTitleIsNotFound(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	svc := NewReviewService(reviewRepo, new(MockTitleRepository), nil)

	// The review exists, but under a different title.
	reviewRepo.On("FindByTitleAndID", int64(99), int64(11)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(99, 11)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
