package service

import (
	"errors"

	"ratehub/internal/httpapi/models"
	"ratehub/internal/httpapi/repository"

	"github.com/gosimple/slug"
)

type CategoryService interface {
	Create(name, slugValue string) (*models.Category, error)
	List(search string, limit, offset int) ([]models.Category, int64, error)
	Delete(slugValue string) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) Create(name, slugValue string) (*models.Category, error) {
	if slugValue == "" {
		slugValue = slug.Make(name)
	}
	if !slug.IsSlug(slugValue) {
		return nil, validationErr("slug", "not a valid slug")
	}
	category := &models.Category{Name: name, Slug: slugValue}
	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlugInUse
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) List(search string, limit, offset int) ([]models.Category, int64, error) {
	return s.categoryRepo.List(search, limit, offset)
}

func (s *categoryService) Delete(slugValue string) error {
	return s.categoryRepo.DeleteBySlug(slugValue)
}
