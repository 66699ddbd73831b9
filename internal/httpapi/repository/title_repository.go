package repository

import (
	"database/sql"

	"ratehub/internal/httpapi/models"

	"gorm.io/gorm"
)

// TitleFilter narrows a title listing. Zero values mean "no filter".
type TitleFilter struct {
	CategorySlug string
	GenreSlug    string
	Name         string
	Year         int
	Limit        int
	Offset       int
}

type TitleRepository interface {
	Create(title *models.Title) error
	FindByID(id int64) (*models.Title, error)
	List(filter TitleFilter) ([]models.Title, int64, error)
	Update(title *models.Title) error
	ReplaceGenres(title *models.Title, genres []models.Genre) error
	Delete(id int64) error
	// AverageRating returns nil when the title has no reviews; the
	// rating is derived on read and never stored.
	AverageRating(titleID int64) (*float64, error)
}

type titleRepository struct {
	db *gorm.DB
}

func NewTitleRepository(db *gorm.DB) TitleRepository {
	return &titleRepository{db: db}
}

func (r *titleRepository) Create(title *models.Title) error {
	return translateError(r.db.Create(title).Error)
}

func (r *titleRepository) FindByID(id int64) (*models.Title, error) {
	var title models.Title
	err := r.db.Preload("Category").Preload("Genres").First(&title, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &title, nil
}

func (r *titleRepository) List(filter TitleFilter) ([]models.Title, int64, error) {
	var titles []models.Title
	var total int64

	// Count and find each get a fresh builder: the count's
	// Distinct("titles.id") select would otherwise leak into the find
	// and return rows with only the id column scanned.
	filtered := func() *gorm.DB {
		q := r.db.Model(&models.Title{})
		if filter.CategorySlug != "" {
			q = q.Joins("LEFT JOIN categories ON categories.id = titles.category_id").
				Where("categories.slug = ?", filter.CategorySlug)
		}
		if filter.GenreSlug != "" {
			q = q.Joins("JOIN title_genres ON title_genres.title_id = titles.id").
				Joins("JOIN genres ON genres.id = title_genres.genre_id").
				Where("genres.slug = ?", filter.GenreSlug)
		}
		if filter.Name != "" {
			q = q.Where("titles.name ILIKE ?", "%"+filter.Name+"%")
		}
		if filter.Year != 0 {
			q = q.Where("titles.year = ?", filter.Year)
		}
		return q
	}

	if err := filtered().Distinct("titles.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := filtered().Distinct("titles.*").Preload("Category").Preload("Genres").
		Order("titles.id DESC").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&titles).Error
	if err != nil {
		return nil, 0, err
	}
	return titles, total, nil
}

func (r *titleRepository) Update(title *models.Title) error {
	return translateError(r.db.Omit("Genres").Save(title).Error)
}

func (r *titleRepository) ReplaceGenres(title *models.Title, genres []models.Genre) error {
	return r.db.Model(title).Association("Genres").Replace(genres)
}

func (r *titleRepository) Delete(id int64) error {
	result := r.db.Delete(&models.Title{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *titleRepository) AverageRating(titleID int64) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.Model(&models.Review{}).
		Select("AVG(score)").
		Where("title_id = ?", titleID).
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}
