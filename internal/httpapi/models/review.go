package models

import "time"

type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	TitleID   int64     `json:"title_id" gorm:"not null;uniqueIndex:idx_reviews_title_author"`
	AuthorID  string    `json:"author_id" gorm:"type:uuid;not null;uniqueIndex:idx_reviews_title_author"`
	Text      string    `json:"text" gorm:"not null;type:text"`
	Score     int       `json:"score" gorm:"not null;check:score >= 1 AND score <= 10"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`

	// Associations
	Title  Title `json:"-" gorm:"foreignKey:TitleID;constraint:OnDelete:CASCADE;"`
	Author User  `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}
