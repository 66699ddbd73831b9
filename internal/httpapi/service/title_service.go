package service

import (
	"context"
	"time"

	"ratehub/internal/cache"
	"ratehub/internal/httpapi/dto"
	"ratehub/internal/httpapi/models"
	"ratehub/internal/httpapi/repository"
)

type TitleService interface {
	Create(ctx context.Context, in dto.CreateTitleDTO) (*dto.TitleResponse, error)
	Get(ctx context.Context, id int64) (*dto.TitleResponse, error)
	List(ctx context.Context, filter repository.TitleFilter) ([]dto.TitleResponse, int64, error)
	Update(ctx context.Context, id int64, in dto.UpdateTitleDTO) (*dto.TitleResponse, error)
	Delete(ctx context.Context, id int64) error
}

type titleService struct {
	titleRepo    repository.TitleRepository
	categoryRepo repository.CategoryRepository
	genreRepo    repository.GenreRepository
	titleCache   *cache.TitleCache
	// now is injected so the release-year boundary is testable against a
	// fixed calendar.
	now func() time.Time
}

func NewTitleService(
	titleRepo repository.TitleRepository,
	categoryRepo repository.CategoryRepository,
	genreRepo repository.GenreRepository,
	titleCache *cache.TitleCache,
	now func() time.Time,
) TitleService {
	if now == nil {
		now = time.Now
	}
	return &titleService{
		titleRepo:    titleRepo,
		categoryRepo: categoryRepo,
		genreRepo:    genreRepo,
		titleCache:   titleCache,
		now:          now,
	}
}

func (s *titleService) Create(ctx context.Context, in dto.CreateTitleDTO) (*dto.TitleResponse, error) {
	if err := s.checkYear(in.Year); err != nil {
		return nil, err
	}

	title := &models.Title{
		Name:        in.Name,
		Year:        in.Year,
		Description: in.Description,
	}
	if in.Category != nil {
		category, err := s.resolveCategory(*in.Category)
		if err != nil {
			return nil, err
		}
		title.CategoryID = &category.ID
	}
	genres, err := s.resolveGenres(in.Genre)
	if err != nil {
		return nil, err
	}
	title.Genres = genres

	if err := s.titleRepo.Create(title); err != nil {
		return nil, err
	}
	return s.render(ctx, title.ID)
}

func (s *titleService) Get(ctx context.Context, id int64) (*dto.TitleResponse, error) {
	var cached dto.TitleResponse
	if s.titleCache.Get(ctx, id, &cached) {
		return &cached, nil
	}
	resp, err := s.render(ctx, id)
	if err != nil {
		return nil, err
	}
	s.titleCache.Set(ctx, id, resp)
	return resp, nil
}

func (s *titleService) List(ctx context.Context, filter repository.TitleFilter) ([]dto.TitleResponse, int64, error) {
	titles, total, err := s.titleRepo.List(filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]dto.TitleResponse, 0, len(titles))
	for _, title := range titles {
		rating, err := s.titleRepo.AverageRating(title.ID)
		if err != nil {
			return nil, 0, err
		}
		responses = append(responses, dto.TitleFromModel(title, rating))
	}
	return responses, total, nil
}

func (s *titleService) Update(ctx context.Context, id int64, in dto.UpdateTitleDTO) (*dto.TitleResponse, error) {
	title, err := s.titleRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		title.Name = *in.Name
	}
	if in.Year != nil {
		if err := s.checkYear(*in.Year); err != nil {
			return nil, err
		}
		title.Year = *in.Year
	}
	if in.Description != nil {
		title.Description = in.Description
	}
	if in.Category != nil {
		category, err := s.resolveCategory(*in.Category)
		if err != nil {
			return nil, err
		}
		title.CategoryID = &category.ID
	}

	if err := s.titleRepo.Update(title); err != nil {
		return nil, err
	}
	if in.Genre != nil {
		genres, err := s.resolveGenres(*in.Genre)
		if err != nil {
			return nil, err
		}
		if err := s.titleRepo.ReplaceGenres(title, genres); err != nil {
			return nil, err
		}
	}

	s.titleCache.Invalidate(ctx, id)
	return s.render(ctx, id)
}

func (s *titleService) Delete(ctx context.Context, id int64) error {
	if err := s.titleRepo.Delete(id); err != nil {
		return err
	}
	s.titleCache.Invalidate(ctx, id)
	return nil
}

// checkYear rejects releases dated after the current calendar year.
func (s *titleService) checkYear(year int) error {
	if year > s.now().Year() {
		return validationErr("year", "release year cannot be in the future")
	}
	return nil
}

func (s *titleService) resolveCategory(slugValue string) (*models.Category, error) {
	category, err := s.categoryRepo.FindBySlug(slugValue)
	if err != nil {
		return nil, validationErr("category", "unknown category slug")
	}
	return category, nil
}

func (s *titleService) resolveGenres(slugs []string) ([]models.Genre, error) {
	if len(slugs) == 0 {
		return nil, nil
	}
	genres, err := s.genreRepo.FindBySlugs(slugs)
	if err != nil {
		return nil, err
	}
	if len(genres) != len(slugs) {
		return nil, validationErr("genre", "unknown genre slug")
	}
	return genres, nil
}

func (s *titleService) render(ctx context.Context, id int64) (*dto.TitleResponse, error) {
	title, err := s.titleRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	rating, err := s.titleRepo.AverageRating(id)
	if err != nil {
		return nil, err
	}
	resp := dto.TitleFromModel(*title, rating)
	return &resp, nil
}
