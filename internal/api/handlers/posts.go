package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rohits-web03/postdev/internal/api/services"
	"github.com/rohits-web03/postdev/internal/menu"
	"github.com/rohits-web03/postdev/internal/models"
	"github.com/rohits-web03/postdev/internal/utils"
)

const myPostsTitleRunes = 15

// GET /posts/new
// AddPostForm godoc
// @Summary New post form
// @Tags Posts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} menu.Response
// @Router /posts/new [get]
func (h *Handler) AddPostForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(w, r); !ok {
		return
	}

	utils.MenuResponse(w, menu.NewForm(http.MethodPost, PathAddPost,
		menu.TextField("title",
			fmt.Sprintf("Give your new post a title (maximum %d characters)", models.TitleMaxLength),
			"add", "Reply with post title or BACK"),
		menu.TextField("description", "Send post content (max 50 words)", "add", "Reply with post content or BACK"),
		menu.ChoiceField("is_private",
			menu.NewChoice("Private (share code)", "True"),
			menu.NewChoice("Public (everyone)", "False"),
		),
	))
}

// POST /posts/new
// CreatePost godoc
// @Summary Create a post
// @Description Creates a post valid for 14 days and redirects to its detail view.
// @Tags Posts
// @Accept x-www-form-urlencoded
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param is_private formData bool true "Private (True) or public (False)"
// @Success 302
// @Failure 400 {object} utils.Payload
// @Router /posts/new [post]
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok || !parseForm(w, r) {
		return
	}

	title := strings.TrimSpace(r.PostForm.Get("title"))
	description := strings.TrimSpace(r.PostForm.Get("description"))
	if title == "" || description == "" {
		utils.ErrorResponse(w, http.StatusBadRequest, "Title and description are required")
		return
	}
	isPrivate, err := strconv.ParseBool(r.PostForm.Get("is_private"))
	if err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "is_private must be True or False")
		return
	}

	post, err := h.posts.Create(r.Context(), user, services.NewPost{
		Title:       title,
		Description: description,
		IsPrivate:   isPrivate,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	redirect(w, r, PostDetailPath(post.ID))
}

// GET /posts/mine
// MyPosts godoc
// @Summary The caller's posts, newest first
// @Tags Posts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} menu.Response
// @Router /posts/mine [get]
func (h *Handler) MyPosts(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	posts, err := h.posts.ListMine(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	m := menu.NewMenu("")
	for _, post := range posts {
		m.Add(menu.Get(truncate(post.Title, myPostsTitleRunes), PostDetailPath(post.ID)))
	}
	if len(posts) == 0 {
		m.Add(menu.Text("You currently have no posts."))
	}
	utils.MenuResponse(w, m)
}

// GET /posts/{id}
// PostDetail godoc
// @Summary Post detail
// @Description Counts a view and shows the post. Owners get renew, delete and make-private actions.
// @Tags Posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post id"
// @Param code query string false "Share code, required for other users' private posts"
// @Success 200 {object} menu.Response
// @Failure 404 {object} utils.Payload
// @Router /posts/{id} [get]
func (h *Handler) PostDetail(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := postID(w, r)
	if !ok {
		return
	}

	post, err := h.posts.View(r.Context(), user, id, strings.TrimSpace(r.URL.Query().Get("code")))
	if err != nil {
		writeError(w, r, err)
		return
	}

	m := menu.NewMenu(post.Title, menu.Text(detailText(post, h.posts.Now())))
	path := PostDetailPath(post.ID)
	if post.IsOwnedBy(user.ID) {
		m.Add(
			menu.Option("Renew", http.MethodPatch, path),
			menu.Option("Delete", http.MethodDelete, path),
		)
		if !post.IsPrivate {
			m.Add(menu.Option("Make private", http.MethodPut, path))
		}
	} else {
		// Messaging and comments do not exist yet; both lead home.
		m.Add(
			menu.Get("Send message", PathHome),
			menu.Get("Comments", PathHome),
		)
	}
	utils.MenuResponse(w, m)
}

func detailText(post *models.Post, now time.Time) string {
	expiry := "Expires in: " + humanize.RelTime(now, post.ExpiresAt, "", "")
	if post.IsExpired(now) {
		expiry = "Expired: " + humanize.RelTime(post.ExpiresAt, now, "ago", "")
	}
	return strings.Join([]string{
		post.Description,
		"Author: " + post.User.Username,
		expiry,
		"Code: " + post.Code,
		fmt.Sprintf("Views: %d", post.Views),
	}, "\n")
}

// PUT /posts/{id}
// MakePrivate godoc
// @Summary Make a post private
// @Tags Posts
// @Security BearerAuth
// @Param id path int true "Post id"
// @Success 302
// @Failure 403 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /posts/{id} [put]
func (h *Handler) MakePrivate(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(user *models.User, id int64) (string, error) {
		_, err := h.posts.MakePrivate(r.Context(), user, id)
		return PostDetailPath(id), err
	})
}

// PATCH /posts/{id}
// RenewPost godoc
// @Summary Renew a post for another 14 days
// @Tags Posts
// @Security BearerAuth
// @Param id path int true "Post id"
// @Success 302
// @Failure 403 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /posts/{id} [patch]
func (h *Handler) RenewPost(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(user *models.User, id int64) (string, error) {
		_, err := h.posts.Renew(r.Context(), user, id)
		return PostDetailPath(id), err
	})
}

// DELETE /posts/{id}
// DeletePost godoc
// @Summary Delete a post
// @Tags Posts
// @Security BearerAuth
// @Param id path int true "Post id"
// @Success 302
// @Failure 403 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /posts/{id} [delete]
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(user *models.User, id int64) (string, error) {
		return PathMyPosts, h.posts.Delete(r.Context(), user, id)
	})
}

// mutate runs an owner action on the post named in the path and redirects
// to the view it returns.
func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, action func(user *models.User, id int64) (string, error)) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := postID(w, r)
	if !ok {
		return
	}

	next, err := action(user, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	redirect(w, r, next)
}
