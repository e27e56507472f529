package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ DB = (*Client)(nil) // Ensure Client implements DB

// ErrUsernameTaken is returned when a user is created with a username that already exists.
var ErrUsernameTaken = errors.New("username is already taken")

// DB is the storage interface used by the handlers.
type DB interface {
	// Users
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id uint) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	GetAllUsers(ctx context.Context) ([]User, error)

	// Articles
	CreateArticle(ctx context.Context, article *Article) error
	GetArticleByID(ctx context.Context, id uint) (*Article, error)
	GetArticles(ctx context.Context) ([]Article, error)
	GetArticlesByAuthor(ctx context.Context, author string) ([]Article, error)
	SearchArticlesByTitle(ctx context.Context, keyword string) ([]Article, error)
	UpdateArticle(ctx context.Context, id uint, title, content string) error
	DeleteArticle(ctx context.Context, id uint) error

	// Stats
	GetStats(ctx context.Context) (*Stats, error)

	Close() error
}

// Stats holds row counts of the store.
type Stats struct {
	Users    int64
	Articles int64
	Authors  int64
}

// Client wraps the gorm.DB instance.
type Client struct {
	db *gorm.DB
}

// New opens the SQLite database at dbpath and performs migrations.
// The parent directory is created if it does not exist.
func New(dbpath string) (*Client, error) {
	if dir := filepath.Dir(dbpath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dbpath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&User{},
		&Article{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Client{db: db}, nil
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetStats returns the number of users, articles and distinct authors.
func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	db := c.db.WithContext(ctx)
	if err := db.Model(&User{}).Count(&stats.Users).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := db.Model(&Article{}).Count(&stats.Articles).Error; err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}
	if err := db.Model(&Article{}).Distinct("author").Count(&stats.Authors).Error; err != nil {
		return nil, fmt.Errorf("failed to count authors: %w", err)
	}
	return &stats, nil
}

// isUniqueViolation reports whether err is a unique constraint failure from sqlite.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
