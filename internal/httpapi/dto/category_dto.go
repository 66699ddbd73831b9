package dto

import "ratehub/internal/httpapi/models"

type CreateCategoryDTO struct {
	Name string `json:"name" binding:"required,max=256"`
	Slug string `json:"slug" binding:"omitempty,max=50"`
}

type CategoryResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func CategoryFromModel(m models.Category) CategoryResponse {
	return CategoryResponse{Name: m.Name, Slug: m.Slug}
}
