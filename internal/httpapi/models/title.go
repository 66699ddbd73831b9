package models

import "time"

type Title struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"not null;size:256"`
	Year        int       `json:"year" gorm:"not null;index"`
	Description *string   `json:"description,omitempty" gorm:"size:256"`
	CategoryID  *int64    `json:"-" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`

	// Deleting a category detaches its titles, it never cascades.
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL;"`
	Genres   []Genre   `json:"genres,omitempty" gorm:"many2many:title_genres;constraint:OnDelete:CASCADE;"`
}

func (Title) TableName() string {
	return "titles"
}
