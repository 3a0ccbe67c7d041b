package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rohits-web03/postdev/internal/models"
	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// maxCodeAttempts bounds how many candidate codes Create tries for one post.
const maxCodeAttempts = 8

// ErrCodeExhausted means every candidate code for a new post was taken.
var ErrCodeExhausted = errors.New("no free code for post")

// Create inserts post and then stores the code derived from the id the insert
// assigned. Both writes share one transaction so no reader ever sees a post
// without a code. Codes are unique across all posts: a candidate already
// held by another post is skipped and codeFor is asked for the next attempt.
func (r *PostRepository) Create(ctx context.Context, post *models.Post, codeFor func(id int64, attempt int) (string, error)) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// code stays NULL until derived, so the unique index ignores it
		if err := tx.Omit("Code").Create(post).Error; err != nil {
			return fmt.Errorf("insert post: %w", err)
		}

		for attempt := 0; attempt < maxCodeAttempts; attempt++ {
			code, err := codeFor(post.ID, attempt)
			if err != nil {
				return fmt.Errorf("derive code for post %d: %w", post.ID, err)
			}

			var taken int64
			if err := tx.Model(&models.Post{}).Where("code = ?", code).Count(&taken).Error; err != nil {
				return fmt.Errorf("check code for post %d: %w", post.ID, err)
			}
			if taken > 0 {
				continue
			}

			if err := tx.Model(post).Update("code", code).Error; err != nil {
				return fmt.Errorf("store code for post %d: %w", post.ID, err)
			}
			post.Code = code
			return nil
		}
		return fmt.Errorf("%w %d", ErrCodeExhausted, post.ID)
	})
}

// Get loads a post together with its owner.
func (r *PostRepository) Get(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Preload("User").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// IncrementViews bumps the counter in a single-row update so concurrent
// viewers never lose increments.
func (r *PostRepository) IncrementViews(ctx context.Context, id int64) error {
	return r.updateColumn(ctx, id, "views", gorm.Expr("views + ?", 1))
}

func (r *PostRepository) UpdateExpiry(ctx context.Context, id int64, expiresAt time.Time) error {
	return r.updateColumn(ctx, id, "expires_at", expiresAt)
}

func (r *PostRepository) MarkPrivate(ctx context.Context, id int64) error {
	return r.updateColumn(ctx, id, "is_private", true)
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Post{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete post %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByOwner returns every post of userID, newest first.
func (r *PostRepository) ListByOwner(ctx context.Context, userID int64) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list posts of user %d: %w", userID, err)
	}
	return posts, nil
}

// ListFeed returns the newest public posts that do not belong to userID.
func (r *PostRepository) ListFeed(ctx context.Context, userID int64, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Where("user_id <> ? AND is_private = ?", userID, false).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list feed for user %d: %w", userID, err)
	}
	return posts, nil
}

// FindActiveByCode returns the unexpired post carrying code. Codes are unique,
// so at most one post matches.
func (r *PostRepository) FindActiveByCode(ctx context.Context, code string, now time.Time) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Where("code = ? AND expires_at > ?", code, now).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Search matches keyword against title, description and owner username of
// unexpired posts visible to userID (public ones and their own).
func (r *PostRepository) Search(ctx context.Context, userID int64, keyword string, now time.Time, limit int) ([]models.Post, error) {
	pattern := "%" + escapeLike(strings.ToLower(keyword)) + "%"

	var posts []models.Post
	err := r.db.WithContext(ctx).
		Select("posts.*").
		Joins("JOIN users ON users.id = posts.user_id").
		Where("posts.expires_at > ?", now).
		Where("(posts.is_private = ? OR posts.user_id = ?)", false, userID).
		Where(
			`(LOWER(posts.title) LIKE ? ESCAPE '\' OR LOWER(posts.description) LIKE ? ESCAPE '\' OR LOWER(users.username) LIKE ? ESCAPE '\')`,
			pattern, pattern, pattern,
		).
		Order("posts.created_at DESC").
		Order("posts.id DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) updateColumn(ctx context.Context, id int64, column string, value any) error {
	res := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn(column, value)
	if res.Error != nil {
		return fmt.Errorf("update %s of post %d: %w", column, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
