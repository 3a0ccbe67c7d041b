package handlers

import (
	"net/http"

	"github.com/rohits-web03/postdev/internal/menu"
	"github.com/rohits-web03/postdev/internal/utils"
)

const feedTitleRunes = 17

// GET /
// Home godoc
// @Summary Home menu
// @Description Asks for a username until one is set, then shows the main menu and the newest public posts of other users.
// @Tags Home
// @Produce json
// @Security BearerAuth
// @Success 200 {object} menu.Response
// @Failure 403 {object} utils.Payload
// @Router / [get]
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	if user.Username == "" {
		utils.MenuResponse(w, menu.NewForm(http.MethodPost, PathHome,
			menu.TextField("username", "Please choose a username", "MENU", "Send username"),
		))
		return
	}

	feed, err := h.posts.HomeFeed(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	m := menu.NewMenu("",
		menu.Get("Add post", PathAddPost),
		menu.Get("Search", PathSearch),
		menu.Get("My posts", PathMyPosts),
	)
	for _, post := range feed {
		m.Add(menu.Get(truncate(post.Title, feedTitleRunes), PostDetailPath(post.ID)))
	}
	utils.MenuResponse(w, m)
}

// POST /
// SetUsername godoc
// @Summary Set the caller's username
// @Tags Home
// @Accept x-www-form-urlencoded
// @Security BearerAuth
// @Param username formData string true "Username"
// @Success 302
// @Failure 400 {object} utils.Payload
// @Router / [post]
func (h *Handler) SetUsername(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok || !parseForm(w, r) {
		return
	}

	if err := h.identity.SetUsername(r.Context(), user, r.PostForm.Get("username")); err != nil {
		writeError(w, r, err)
		return
	}
	redirect(w, r, PathHome)
}
