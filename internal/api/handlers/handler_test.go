package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rohits-web03/postdev/internal/api/services"
	"github.com/rohits-web03/postdev/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Sofa..", truncate("Sofa", 15))
	assert.Equal(t, "Fifteen chars!!..", truncate("Fifteen chars!!!!!", 15))
	assert.Equal(t, "Ñandú..", truncate("Ñandú grande", 5))
}

func TestDetailText(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	post := &models.Post{
		Description: "Blue, barely used",
		User:        models.User{Username: "alice"},
		ExpiresAt:   now.Add(14 * 24 * time.Hour),
		Code:        "x7k2pq",
		Views:       4,
	}

	text := detailText(post, now)
	assert.Equal(t, "Blue, barely used\nAuthor: alice\nExpires in: 2 weeks\nCode: x7k2pq\nViews: 4", text)

	text = detailText(post, post.ExpiresAt.Add(3*24*time.Hour))
	assert.Contains(t, text, "\nExpired: 3 days ago\n")
	assert.NotContains(t, text, "Expires in")
}

func TestWriteErrorStatuses(t *testing.T) {
	cases := map[error]int{
		services.ErrNotFound:                             http.StatusNotFound,
		services.ErrForbidden:                            http.StatusForbidden,
		fmt.Errorf("%w: keyword", services.ErrBadRequest): http.StatusBadRequest,
		errors.New("disk on fire"):                       http.StatusInternalServerError,
	}
	for err, status := range cases {
		rec := httptest.NewRecorder()
		writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), err)
		assert.Equal(t, status, rec.Code, err.Error())
	}
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/posts/12", PostDetailPath(12))
	assert.Equal(t, "/posts/12?code=ab12cd", SharedPostPath(12, "ab12cd"))
}
