package dto

import "ratehub/internal/httpapi/models"

type CreateTitleDTO struct {
	Name        string   `json:"name" binding:"required,max=256"`
	Year        int      `json:"year" binding:"required"`
	Description *string  `json:"description" binding:"omitempty,max=256"`
	Category    *string  `json:"category"`
	Genre       []string `json:"genre"`
}

// UpdateTitleDTO is a partial update; nil fields are left untouched.
type UpdateTitleDTO struct {
	Name        *string   `json:"name" binding:"omitempty,max=256"`
	Year        *int      `json:"year"`
	Description *string   `json:"description" binding:"omitempty,max=256"`
	Category    *string   `json:"category"`
	Genre       *[]string `json:"genre"`
}

type TitleResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Year        int               `json:"year"`
	Rating      *float64          `json:"rating"`
	Description *string           `json:"description,omitempty"`
	Category    *CategoryResponse `json:"category"`
	Genre       []GenreResponse   `json:"genre"`
}

// TitleFromModel renders a title with its derived rating. A title with no
// reviews carries a null rating, never zero.
func TitleFromModel(m models.Title, rating *float64) TitleResponse {
	resp := TitleResponse{
		ID:          m.ID,
		Name:        m.Name,
		Year:        m.Year,
		Rating:      rating,
		Description: m.Description,
		Genre:       make([]GenreResponse, 0, len(m.Genres)),
	}
	if m.Category != nil {
		c := CategoryFromModel(*m.Category)
		resp.Category = &c
	}
	for _, g := range m.Genres {
		resp.Genre = append(resp.Genre, GenreFromModel(g))
	}
	return resp
}
