package repositories_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rohits-web03/postdev/internal/config"
	"github.com/rohits-web03/postdev/internal/models"
	"github.com/rohits-web03/postdev/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveUploadsSnapshot(t *testing.T) {
	type upload struct {
		method string
		path   string
		body   []byte
	}
	uploads := make(chan upload, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		select {
		case uploads <- upload{method: r.Method, path: r.URL.Path, body: body}:
		default:
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	archiver := repositories.NewR2Archiver(config.R2Config{
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		BucketName:      "postdev-archive",
		Region:          "auto",
		Endpoint:        server.URL,
	})

	post := &models.Post{
		ID:        42,
		UserID:    7,
		User:      models.User{ID: 7, Username: "alice"},
		Title:     "Sofa",
		Code:      "abc123",
		CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, archiver.Archive(ctx, post))

	got := <-uploads
	assert.Equal(t, http.MethodPut, got.method)
	assert.Equal(t, "/postdev-archive/posts/7/42.json", got.path)
	assert.Contains(t, string(got.body), `"username":"alice"`)
}

func TestArchiveKey(t *testing.T) {
	assert.Equal(t, "posts/3/19.json", repositories.ArchiveKey(&models.Post{ID: 19, UserID: 3}))
}
