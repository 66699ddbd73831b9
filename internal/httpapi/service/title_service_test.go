package service

import (
	"context"
	"testing"
	"time"

	"ratehub/internal/httpapi/dto"
	"ratehub/internal/httpapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// fixedClock pins the calendar so the year boundary is stable.
func fixedClock() time.Time {
	return time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
}

func newTestTitleService(titleRepo *MockTitleRepository, categoryRepo *MockCategoryRepository, genreRepo *MockGenreRepository) TitleService {
	return NewTitleService(titleRepo, categoryRepo, genreRepo, nil, fixedClock)
}

func TestTitleCreate_Success(t *testing.T) {
	titleRepo := new(MockTitleRepository)
	categoryRepo := new(MockCategoryRepository)
	genreRepo := new(MockGenreRepository)
	svc := newTestTitleService(titleRepo, categoryRepo, genreRepo)

	category := &models.Category{ID: 3, Name: "Films", Slug: "films"}
	genres := []models.Genre{{ID: 1, Name: "Drama", Slug: "drama"}}
	stored := &models.Title{ID: 7, Name: "Solaris", Year: 1972, Category: category, Genres: genres}

	categoryRepo.On("FindBySlug", "films").Return(category, nil)
	genreRepo.On("FindBySlugs", []string{"drama"}).Return(genres, nil)
	titleRepo.On("Create", mock.AnythingOfType("*models.Title")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Title).ID = 7
	}).Return(nil)
	titleRepo.On("FindByID", int64(7)).Return(stored, nil)
	titleRepo.On("AverageRating", int64(7)).Return(nil, nil)

	cat := "films"
	resp, err := svc.Create(context.Background(), dto.CreateTitleDTO{
		Name:     "Solaris",
		Year:     1972,
		Category: &cat,
		Genre:    []string{"drama"},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Nil(t, resp.Rating)
	assert.Equal(t, "films", resp.Category.Slug)
	titleRepo.AssertExpectations(t)
}

func TestTitleCreate_RejectsFutureYear(t *testing.T) {
	svc := newTestTitleService(new(MockTitleRepository), new(MockCategoryRepository), new(MockGenreRepository))

	_, err := svc.Create(context.Background(), dto.CreateTitleDTO{Name: "Tomorrow", Year: 2027})

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "year", vErr.Field)
}

func TestTitleCreate_CurrentYearAllowed(t *testing.T) {
	titleRepo := new(MockTitleRepository)
	svc := newTestTitleService(titleRepo, new(MockCategoryRepository), new(MockGenreRepository))

	stored := &models.Title{ID: 1, Name: "Now", Year: 2026}
	titleRepo.On("Create", mock.AnythingOfType("*models.Title")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Title).ID = 1
	}).Return(nil)
	titleRepo.On("FindByID", int64(1)).Return(stored, nil)
	titleRepo.On("AverageRating", int64(1)).Return(nil, nil)

	resp, err := svc.Create(context.Background(), dto.CreateTitleDTO{Name: "Now", Year: 2026})

	assert.NoError(t, err)
	assert.Equal(t, 2026, resp.Year)
}

func TestTitleCreate_UnknownCategorySlug(t *testing.T) {
	titleRepo := new(MockTitleRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := newTestTitleService(titleRepo, categoryRepo, new(MockGenreRepository))

	categoryRepo.On("FindBySlug", "nope").Return(nil, assert.AnError)

	cat := "nope"
	_, err := svc.Create(context.Background(), dto.CreateTitleDTO{Name: "X", Year: 2000, Category: &cat})

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "category", vErr.Field)
	titleRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestTitleCreate_UnknownGenreSlug(t *testing.T) {
	titleRepo := new(MockTitleRepository)
	genreRepo := new(MockGenreRepository)
	svc := newTestTitleService(titleRepo, new(MockCategoryRepository), genreRepo)

	// Only one of the two requested slugs resolves.
	genreRepo.On("FindBySlugs", []string{"drama", "nope"}).Return([]models.Genre{{ID: 1, Slug: "drama"}}, nil)

	_, err := svc.Create(context.Background(), dto.CreateTitleDTO{Name: "X", Year: 2000, Genre: []string{"drama", "nope"}})

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "genre", vErr.Field)
}

func TestTitleGet_RatingIsMeanOfScores(t *testing.T) {
	titleRepo := new(MockTitleRepository)
	svc := newTestTitleService(titleRepo, new(MockCategoryRepository), new(MockGenreRepository))

	stored := &models.Title{ID: 9, Name: "Stalker", Year: 1979}
	rating := 5.0 // scores 3 and 7
	titleRepo.On("FindByID", int64(9)).Return(stored, nil)
	titleRepo.On("AverageRating", int64(9)).Return(&rating, nil)

	resp, err := svc.Get(context.Background(), 9)

	assert.NoError(t, err)
	assert.NotNil(t, resp.Rating)
	assert.InDelta(t, 5.0, *resp.Rating, 0.0001)
}

func TestTitleGet_NoReviewsMeansNullRating(t *testing.T) {
	titleRepo := new(MockTitleRepository)
	svc := newTestTitleService(titleRepo, new(MockCategoryRepository), new(MockGenreRepository))

	stored := &models.Title{ID: 9, Name: "Stalker", Year: 1979}
	titleRepo.On("FindByID", int64(9)).Return(stored, nil)
	titleRepo.On("AverageRating", int64(9)).Return(nil, nil)

	resp, err := svc.Get(context.Background(), 9)

	assert.NoError(t, err)
	assert.Nil(t, resp.Rating)
}

func TestTitleUpdate_FutureYearRejected(t *testing.T) {
	titleRepo := new(MockTitleRepository)
	svc := newTestTitleService(titleRepo, new(MockCategoryRepository), new(MockGenreRepository))

	stored := &models.Title{ID: 4, Name: "Old", Year: 1990}
	titleRepo.On("FindByID", int64(4)).Return(stored, nil)

	year := 2030
	_, err := svc.Update(context.Background(), 4, dto.UpdateTitleDTO{Year: &year})

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	titleRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestTitleUpdate_ReplacesGenres(t *testing.T) {
	titleRepo := new(MockTitleRepository)
	genreRepo := new(MockGenreRepository)
	svc := newTestTitleService(titleRepo, new(MockCategoryRepository), genreRepo)

	stored := &models.Title{ID: 4, Name: "Old", Year: 1990}
	newGenres := []models.Genre{{ID: 2, Slug: "sci-fi"}}

	titleRepo.On("FindByID", int64(4)).Return(stored, nil)
	titleRepo.On("Update", mock.AnythingOfType("*models.Title")).Return(nil)
	genreRepo.On("FindBySlugs", []string{"sci-fi"}).Return(newGenres, nil)
	titleRepo.On("ReplaceGenres", mock.AnythingOfType("*models.Title"), newGenres).Return(nil)
	titleRepo.On("AverageRating", int64(4)).Return(nil, nil)

	slugs := []string{"sci-fi"}
	_, err := svc.Update(context.Background(), 4, dto.UpdateTitleDTO{Genre: &slugs})

	assert.NoError(t, err)
	titleRepo.AssertExpectations(t)
}

func TestTitleDelete_Success(t *testing.T) {
	titleRepo := new(MockTitleRepository)
	svc := newTestTitleService(titleRepo, new(MockCategoryRepository), new(MockGenreRepository))

	titleRepo.On("Delete", int64(4)).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 4))
	titleRepo.AssertExpectations(t)
}
