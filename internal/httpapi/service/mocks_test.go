package service

import (
	"sync"
	"time"

	"ratehub/internal/httpapi/models"
	"ratehub/internal/httpapi/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List(search string, limit, offset int) ([]models.User, int64, error) {
	args := m.Called(search, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByUsername(username string) error {
	args := m.Called(username)
	return args.Error(0)
}

func (m *MockUserRepository) SetLastLogin(id string, at time.Time) error {
	args := m.Called(id, at)
	return args.Error(0)
}

// MockTitleRepository mocks the TitleRepository interface
type MockTitleRepository struct {
	mock.Mock
}

func (m *MockTitleRepository) Create(title *models.Title) error {
	args := m.Called(title)
	return args.Error(0)
}

func (m *MockTitleRepository) FindByID(id int64) (*models.Title, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Title), args.Error(1)
}

func (m *MockTitleRepository) List(filter repository.TitleFilter) ([]models.Title, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Title), args.Get(1).(int64), args.Error(2)
}

func (m *MockTitleRepository) Update(title *models.Title) error {
	args := m.Called(title)
	return args.Error(0)
}

func (m *MockTitleRepository) ReplaceGenres(title *models.Title, genres []models.Genre) error {
	args := m.Called(title, genres)
	return args.Error(0)
}

func (m *MockTitleRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTitleRepository) AverageRating(titleID int64) (*float64, error) {
	args := m.Called(titleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}

// MockCategoryRepository mocks the CategoryRepository interface
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindBySlug(slug string) (*models.Category, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(search string, limit, offset int) ([]models.Category, int64, error) {
	args := m.Called(search, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Category), args.Get(1).(int64), args.Error(2)
}

func (m *MockCategoryRepository) DeleteBySlug(slug string) error {
	args := m.Called(slug)
	return args.Error(0)
}

// MockGenreRepository mocks the GenreRepository interface
type MockGenreRepository struct {
	mock.Mock
}

func (m *MockGenreRepository) Create(genre *models.Genre) error {
	args := m.Called(genre)
	return args.Error(0)
}

func (m *MockGenreRepository) FindBySlug(slug string) (*models.Genre, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Genre), args.Error(1)
}

func (m *MockGenreRepository) FindBySlugs(slugs []string) ([]models.Genre, error) {
	args := m.Called(slugs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Genre), args.Error(1)
}

func (m *MockGenreRepository) List(search string, limit, offset int) ([]models.Genre, int64, error) {
	args := m.Called(search, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Genre), args.Get(1).(int64), args.Error(2)
}

func (m *MockGenreRepository) DeleteBySlug(slug string) error {
	args := m.Called(slug)
	return args.Error(0)
}

// MockReviewRepository mocks the ReviewRepository interface
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) FindByTitleAndID(titleID, reviewID int64) (*models.Review, error) {
	args := m.Called(titleID, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByTitle(titleID int64, limit, offset int) ([]models.Review, int64, error) {
	args := m.Called(titleID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Review), args.Get(1).(int64), args.Error(2)
}

func (m *MockReviewRepository) Update(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCommentRepository mocks the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByReviewAndID(reviewID, commentID int64) (*models.Comment, error) {
	args := m.Called(reviewID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByReview(reviewID int64, limit, offset int) ([]models.Comment, int64, error) {
	args := m.Called(reviewID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepository) Update(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// capturingNotifier records sends; FailWith makes every send fail.
type capturingNotifier struct {
	mu   sync.Mutex
	sent []capturedMessage
	err  error
}

type capturedMessage struct {
	Recipient string
	Subject   string
	Body      string
}

func (n *capturingNotifier) Send(recipient, subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, capturedMessage{Recipient: recipient, Subject: subject, Body: body})
	return nil
}

func (n *capturingNotifier) Sent() []capturedMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]capturedMessage(nil), n.sent...)
}
