package mock

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/yigitates17/Article-App/internal/database"
	"gorm.io/gorm"
)

var _ database.DB = (*MockDB)(nil)

// MockDB is a mock implementation of database.DB for testing.
type MockDB struct {
	mu sync.RWMutex

	// User storage
	users      map[uint]*database.User
	nextUserID uint

	// Article storage
	articles      map[uint]*database.Article
	nextArticleID uint

	// Error simulation
	CreateUserError        error
	GetUserByIDError       error
	GetUserByUsernameError error
	GetAllUsersError       error
	CreateArticleError     error
	GetArticleByIDError    error
	GetArticlesError       error
	SearchArticlesError    error
	UpdateArticleError     error
	DeleteArticleError     error
}

// NewMockDB creates a new MockDB instance.
func NewMockDB() *MockDB {
	m := &MockDB{}
	m.Reset()
	return m
}

// Reset clears all data and errors from the mock database.
func (m *MockDB) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = make(map[uint]*database.User)
	m.nextUserID = 1
	m.articles = make(map[uint]*database.Article)
	m.nextArticleID = 1

	m.CreateUserError = nil
	m.GetUserByIDError = nil
	m.GetUserByUsernameError = nil
	m.GetAllUsersError = nil
	m.CreateArticleError = nil
	m.GetArticleByIDError = nil
	m.GetArticlesError = nil
	m.SearchArticlesError = nil
	m.UpdateArticleError = nil
	m.DeleteArticleError = nil
}

// User operations

func (m *MockDB) CreateUser(ctx context.Context, user *database.User) error {
	if m.CreateUserError != nil {
		return m.CreateUserError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == user.Username {
			return database.ErrUsernameTaken
		}
	}

	user.ID = m.nextUserID
	m.nextUserID++
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *MockDB) GetUserByID(ctx context.Context, id uint) (*database.User, error) {
	if m.GetUserByIDError != nil {
		return nil, m.GetUserByIDError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	u := *user
	return &u, nil
}

func (m *MockDB) GetUserByUsername(ctx context.Context, username string) (*database.User, error) {
	if m.GetUserByUsernameError != nil {
		return nil, m.GetUserByUsernameError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			u := *user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockDB) GetAllUsers(ctx context.Context) ([]database.User, error) {
	if m.GetAllUsersError != nil {
		return nil, m.GetAllUsersError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]database.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, *user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// Article operations

func (m *MockDB) CreateArticle(ctx context.Context, article *database.Article) error {
	if m.CreateArticleError != nil {
		return m.CreateArticleError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	article.ID = m.nextArticleID
	article.CreatedAt = now
	article.UpdatedAt = now
	m.nextArticleID++
	stored := *article
	m.articles[article.ID] = &stored
	return nil
}

func (m *MockDB) GetArticleByID(ctx context.Context, id uint) (*database.Article, error) {
	if m.GetArticleByIDError != nil {
		return nil, m.GetArticleByIDError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	article, ok := m.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	a := *article
	return &a, nil
}

func (m *MockDB) GetArticles(ctx context.Context) ([]database.Article, error) {
	if m.GetArticlesError != nil {
		return nil, m.GetArticlesError
	}
	return m.filterArticles(func(*database.Article) bool { return true }), nil
}

func (m *MockDB) GetArticlesByAuthor(ctx context.Context, author string) ([]database.Article, error) {
	if m.GetArticlesError != nil {
		return nil, m.GetArticlesError
	}
	return m.filterArticles(func(a *database.Article) bool { return a.Author == author }), nil
}

// SearchArticlesByTitle matches case-insensitively, like sqlite's LIKE for ASCII.
func (m *MockDB) SearchArticlesByTitle(ctx context.Context, keyword string) ([]database.Article, error) {
	if m.SearchArticlesError != nil {
		return nil, m.SearchArticlesError
	}
	keyword = strings.ToLower(keyword)
	return m.filterArticles(func(a *database.Article) bool {
		return strings.Contains(strings.ToLower(a.Title), keyword)
	}), nil
}

func (m *MockDB) UpdateArticle(ctx context.Context, id uint, title, content string) error {
	if m.UpdateArticleError != nil {
		return m.UpdateArticleError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	article, ok := m.articles[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	article.Title = title
	article.Content = content
	article.UpdatedAt = time.Now()
	return nil
}

func (m *MockDB) DeleteArticle(ctx context.Context, id uint) error {
	if m.DeleteArticleError != nil {
		return m.DeleteArticleError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.articles[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.articles, id)
	return nil
}

func (m *MockDB) GetStats(ctx context.Context) (*database.Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	authors := make(map[string]struct{})
	for _, a := range m.articles {
		authors[a.Author] = struct{}{}
	}
	return &database.Stats{
		Users:    int64(len(m.users)),
		Articles: int64(len(m.articles)),
		Authors:  int64(len(authors)),
	}, nil
}

func (m *MockDB) Close() error {
	return nil
}

// Helper methods for testing

// ArticleCount returns the number of stored articles.
func (m *MockDB) ArticleCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.articles)
}

// UserCount returns the number of stored users.
func (m *MockDB) UserCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users)
}

func (m *MockDB) filterArticles(keep func(*database.Article) bool) []database.Article {
	m.mu.RLock()
	defer m.mu.RUnlock()

	articles := make([]database.Article, 0, len(m.articles))
	for _, a := range m.articles {
		if keep(a) {
			articles = append(articles, *a)
		}
	}
	// newest first, matching the real client
	sort.Slice(articles, func(i, j int) bool { return articles[i].ID > articles[j].ID })
	return articles
}
