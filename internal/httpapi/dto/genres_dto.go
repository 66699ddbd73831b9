package dto

import "ratehub/internal/httpapi/models"

type CreateGenreDTO struct {
	Name string `json:"name" binding:"required,max=256"`
	Slug string `json:"slug" binding:"omitempty,max=50"`
}

type GenreResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func GenreFromModel(m models.Genre) GenreResponse {
	return GenreResponse{Name: m.Name, Slug: m.Slug}
}
