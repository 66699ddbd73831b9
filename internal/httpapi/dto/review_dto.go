package dto

import (
	"time"

	"ratehub/internal/httpapi/models"
)

type CreateReviewDTO struct {
	Text  string `json:"text" binding:"required"`
	Score int    `json:"score" binding:"required,min=1,max=10"`
}

type UpdateReviewDTO struct {
	Text  *string `json:"text"`
	Score *int    `json:"score" binding:"omitempty,min=1,max=10"`
}

type ReviewResponse struct {
	ID      int64     `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`
}

func ReviewFromModel(m models.Review) ReviewResponse {
	return ReviewResponse{
		ID:      m.ID,
		Text:    m.Text,
		Author:  m.Author.Username,
		Score:   m.Score,
		PubDate: m.CreatedAt,
	}
}
