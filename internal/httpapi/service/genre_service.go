package service

import (
	"errors"

	"ratehub/internal/httpapi/models"
	"ratehub/internal/httpapi/repository"

	"github.com/gosimple/slug"
)

type GenreService interface {
	Create(name, slugValue string) (*models.Genre, error)
	List(search string, limit, offset int) ([]models.Genre, int64, error)
	Delete(slugValue string) error
}

type genreService struct {
	genreRepo repository.GenreRepository
}

func NewGenreService(genreRepo repository.GenreRepository) GenreService {
	return &genreService{genreRepo: genreRepo}
}

func (s *genreService) Create(name, slugValue string) (*models.Genre, error) {
	if slugValue == "" {
		slugValue = slug.Make(name)
	}
	if !slug.IsSlug(slugValue) {
		return nil, validationErr("slug", "not a valid slug")
	}
	genre := &models.Genre{Name: name, Slug: slugValue}
	if err := s.genreRepo.Create(genre); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlugInUse
		}
		return nil, err
	}
	return genre, nil
}

func (s *genreService) List(search string, limit, offset int) ([]models.Genre, int64, error) {
	return s.genreRepo.List(search, limit, offset)
}

func (s *genreService) Delete(slugValue string) error {
	return s.genreRepo.DeleteBySlug(slugValue)
}
