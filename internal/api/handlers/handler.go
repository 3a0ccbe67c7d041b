package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rohits-web03/postdev/internal/api/middleware"
	"github.com/rohits-web03/postdev/internal/api/services"
	"github.com/rohits-web03/postdev/internal/models"
	"github.com/rohits-web03/postdev/internal/utils"
)

// Canonical paths of the views.
const (
	PathHome    = "/"
	PathAddPost = "/posts/new"
	PathMyPosts = "/posts/mine"
	PathSearch  = "/search"
)

// PostDetailPath is the detail view of post id.
func PostDetailPath(id int64) string {
	return fmt.Sprintf("/posts/%d", id)
}

// SharedPostPath is the detail view of a private post opened through its code.
func SharedPostPath(id int64, code string) string {
	return PostDetailPath(id) + "?code=" + url.QueryEscape(code)
}

// Handler serves the menu views. Every route expects AuthMiddleware to have
// resolved the caller.
type Handler struct {
	identity *services.IdentityResolver
	posts    *services.PostService
}

func NewHandler(identity *services.IdentityResolver, posts *services.PostService) *Handler {
	return &Handler{identity: identity, posts: posts}
}

func currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusForbidden, "Forbidden")
	}
	return user, ok
}

// postID parses the {id} path segment. Anything that is not a positive
// integer cannot name a post.
func postID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.ErrorResponse(w, http.StatusNotFound, "Post not found")
		return 0, false
	}
	return id, true
}

func redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusFound)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.ErrorResponse(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, services.ErrForbidden):
		utils.ErrorResponse(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, services.ErrBadRequest):
		utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("request_id=%s %s %s failed: %v", middleware.RequestIDFromContext(r.Context()), r.Method, r.URL.Path, err)
		utils.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
	}
}

// parseForm reads a form-encoded body; a malformed body is a client error.
func parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid form")
		return false
	}
	return true
}

// truncate shortens s to n runes and marks it as cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes) + ".."
}
