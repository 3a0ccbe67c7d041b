package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/rohits-web03/postdev/internal/models"
	"gorm.io/gorm"
)

const (
	// FeedSize caps the other users' posts shown on the home menu.
	FeedSize = 3
	// SearchLimit caps the keyword search result menu.
	SearchLimit = 10
)

type PostStore interface {
	Create(ctx context.Context, post *models.Post, codeFor func(id int64, attempt int) (string, error)) error
	Get(ctx context.Context, id int64) (*models.Post, error)
	IncrementViews(ctx context.Context, id int64) error
	UpdateExpiry(ctx context.Context, id int64, expiresAt time.Time) error
	MarkPrivate(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	ListByOwner(ctx context.Context, userID int64) ([]models.Post, error)
	ListFeed(ctx context.Context, userID int64, limit int) ([]models.Post, error)
	FindActiveByCode(ctx context.Context, code string, now time.Time) (*models.Post, error)
	Search(ctx context.Context, userID int64, keyword string, now time.Time, limit int) ([]models.Post, error)
}

// Archiver keeps a copy of a post that is about to disappear.
type Archiver interface {
	Archive(ctx context.Context, post *models.Post) error
}

type NewPost struct {
	Title       string
	Description string
	IsPrivate   bool
}

// SearchResult holds either the post whose code matched the keyword
// exactly, or the list of posts matching it as text.
type SearchResult struct {
	ByCode  *models.Post
	Matches []models.Post
}

// PostService owns the post lifecycle: creation, expiry renewal, one-way
// privacy tightening, deletion, and who may see or change what.
type PostService struct {
	posts    PostStore
	archiver Archiver
	encode   CodeEncoder
	ttl      time.Duration
	now      func() time.Time

	defaultEncoder bool
}

type PostServiceOption func(*PostService)

// WithArchiver archives posts before they are deleted.
func WithArchiver(a Archiver) PostServiceOption {
	return func(s *PostService) { s.archiver = a }
}

func WithClock(now func() time.Time) PostServiceOption {
	return func(s *PostService) { s.now = now }
}

// WithCodeEncoder replaces EncodeCode as the source of post codes.
func WithCodeEncoder(encode CodeEncoder) PostServiceOption {
	return func(s *PostService) {
		s.encode = encode
		s.defaultEncoder = false
	}
}

func NewPostService(posts PostStore, ttl time.Duration, opts ...PostServiceOption) *PostService {
	s := &PostService{
		posts:          posts,
		encode:         EncodeCode,
		defaultEncoder: true,
		ttl:            ttl,
		now:            func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now is the service clock, exposed so views render expiry against the same time.
func (s *PostService) Now() time.Time {
	return s.now()
}

func (s *PostService) Create(ctx context.Context, owner *models.User, in NewPost) (*models.Post, error) {
	now := s.now()
	post := &models.Post{
		UserID:      owner.ID,
		Title:       in.Title,
		Description: in.Description,
		IsPrivate:   in.IsPrivate,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.ttl),
		Views:       0,
	}

	err := s.posts.Create(ctx, post, func(id int64, attempt int) (string, error) {
		return s.encode(owner.ID, id, attempt)
	})
	if err != nil {
		return nil, err
	}
	post.User = *owner
	return post, nil
}

// View records one view of the post and returns it. Private posts are only
// shown to their owner or to callers presenting the post's code.
func (s *PostService) View(ctx context.Context, viewer *models.User, id int64, code string) (*models.Post, error) {
	post, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.IsPrivate && !post.IsOwnedBy(viewer.ID) && (code == "" || code != post.Code) {
		return nil, ErrNotFound
	}

	if err := s.posts.IncrementViews(ctx, id); err != nil {
		return nil, mapStoreError(err)
	}
	post.Views++
	return post, nil
}

// Renew restarts the post's validity window from now.
func (s *PostService) Renew(ctx context.Context, caller *models.User, id int64) (*models.Post, error) {
	post, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	expiresAt := s.now().Add(s.ttl)
	if err := s.posts.UpdateExpiry(ctx, id, expiresAt); err != nil {
		return nil, mapStoreError(err)
	}
	post.ExpiresAt = expiresAt
	return post, nil
}

// MakePrivate hides the post from feeds and searches. There is no way back.
func (s *PostService) MakePrivate(ctx context.Context, caller *models.User, id int64) (*models.Post, error) {
	post, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if post.IsPrivate {
		return post, nil
	}
	if err := s.posts.MarkPrivate(ctx, id); err != nil {
		return nil, mapStoreError(err)
	}
	post.IsPrivate = true
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, caller *models.User, id int64) error {
	post, err := s.owned(ctx, caller, id)
	if err != nil {
		return err
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return mapStoreError(err)
	}
	if s.archiver != nil {
		if err := s.archiver.Archive(ctx, post); err != nil {
			log.Printf("archive of deleted post %d failed: %v", id, err)
		}
	}
	return nil
}

// ListMine returns every post of user, newest first, expired ones included.
func (s *PostService) ListMine(ctx context.Context, user *models.User) ([]models.Post, error) {
	return s.posts.ListByOwner(ctx, user.ID)
}

// HomeFeed returns the newest public posts of other users.
func (s *PostService) HomeFeed(ctx context.Context, user *models.User) ([]models.Post, error) {
	return s.posts.ListFeed(ctx, user.ID, FeedSize)
}

// Search looks the keyword up as a code first, then as text in titles,
// descriptions and owner usernames. Expired posts never match.
func (s *PostService) Search(ctx context.Context, user *models.User, keyword string) (*SearchResult, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, fmt.Errorf("%w: keyword is required", ErrBadRequest)
	}
	now := s.now()

	post, err := s.posts.FindActiveByCode(ctx, strings.ToLower(keyword), now)
	switch {
	case err == nil:
		if s.codeBelongsTo(post) {
			return &SearchResult{ByCode: post}, nil
		}
		log.Printf("post %d carries code %q that does not decode to it", post.ID, post.Code)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	matches, err := s.posts.Search(ctx, user.ID, keyword, now, SearchLimit)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Matches: matches}, nil
}

// codeBelongsTo reports whether post's code decodes to post under its
// owner's salt. Codes from a custom encoder are trusted as stored.
func (s *PostService) codeBelongsTo(post *models.Post) bool {
	if !s.defaultEncoder {
		return true
	}
	id, err := DecodeCode(post.UserID, post.Code)
	return err == nil && id == post.ID
}

func (s *PostService) get(ctx context.Context, id int64) (*models.Post, error) {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return post, nil
}

// owned loads the post and checks that caller may change it.
func (s *PostService) owned(ctx context.Context, caller *models.User, id int64) (*models.Post, error) {
	post, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !post.IsOwnedBy(caller.ID) {
		return nil, ErrForbidden
	}
	return post, nil
}

func mapStoreError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
