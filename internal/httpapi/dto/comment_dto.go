package dto

import (
	"time"

	"ratehub/internal/httpapi/models"
)

type CreateCommentDTO struct {
	Text string `json:"text" binding:"required"`
}

type UpdateCommentDTO struct {
	Text string `json:"text" binding:"required"`
}

type CommentResponse struct {
	ID      int64     `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	PubDate time.Time `json:"pub_date"`
}

func CommentFromModel(m models.Comment) CommentResponse {
	return CommentResponse{
		ID:      m.ID,
		Text:    m.Text,
		Author:  m.Author.Username,
		PubDate: m.CreatedAt,
	}
}
