package database

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// Article is a titled piece of content owned by one user.
// Author references User.Username, it is not a foreign key.
type Article struct {
	ID        uint   `gorm:"primaryKey;column:article_id"`
	Title     string `gorm:"column:title;not null"`
	Author    string `gorm:"column:author;index;not null"`
	Content   string `gorm:"column:content;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName keeps the table name of the original schema.
func (Article) TableName() string {
	return "articles"
}

// IsOwnedBy reports whether username is the author of the article.
func (a *Article) IsOwnedBy(username string) bool {
	return a != nil && username != "" && a.Author == username
}

func (c *Client) CreateArticle(ctx context.Context, article *Article) error {
	if err := c.db.WithContext(ctx).Create(article).Error; err != nil {
		log.Error("failed to create article", "error", err)
		return err
	}
	return nil
}

func (c *Client) GetArticleByID(ctx context.Context, id uint) (*Article, error) {
	var article Article
	if err := c.db.WithContext(ctx).First(&article, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("failed to get article by ID", "error", err)
		}
		return nil, err
	}
	return &article, nil
}

func (c *Client) GetArticles(ctx context.Context) ([]Article, error) {
	var articles []Article
	if err := c.db.WithContext(ctx).Order("created_at DESC, article_id DESC").Find(&articles).Error; err != nil {
		log.Error("failed to get articles", "error", err)
		return nil, err
	}
	return articles, nil
}

func (c *Client) GetArticlesByAuthor(ctx context.Context, author string) ([]Article, error) {
	var articles []Article
	if err := c.db.WithContext(ctx).
		Where("author = ?", author).
		Order("created_at DESC, article_id DESC").
		Find(&articles).Error; err != nil {
		log.Error("failed to get articles by author", "error", err)
		return nil, err
	}
	return articles, nil
}

// SearchArticlesByTitle returns all articles whose title contains keyword.
// The keyword is bound as a parameter; LIKE wildcards in it match literally.
func (c *Client) SearchArticlesByTitle(ctx context.Context, keyword string) ([]Article, error) {
	var articles []Article
	pattern := "%" + escapeLike(keyword) + "%"
	if err := c.db.WithContext(ctx).
		Where(`title LIKE ? ESCAPE '\'`, pattern).
		Order("created_at DESC, article_id DESC").
		Find(&articles).Error; err != nil {
		log.Error("failed to search articles", "error", err)
		return nil, err
	}
	return articles, nil
}

// UpdateArticle sets title and content of an article.
// It returns gorm.ErrRecordNotFound if no article has the given id.
func (c *Client) UpdateArticle(ctx context.Context, id uint, title, content string) error {
	result := c.db.WithContext(ctx).
		Model(&Article{}).
		Where("article_id = ?", id).
		Updates(map[string]any{
			"title":      title,
			"content":    content,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		log.Error("failed to update article", "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteArticle removes an article.
// It returns gorm.ErrRecordNotFound if no article has the given id.
func (c *Client) DeleteArticle(ctx context.Context, id uint) error {
	result := c.db.WithContext(ctx).Delete(&Article{}, id)
	if result.Error != nil {
		log.Error("failed to delete article", "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
