package handlers

import (
	"net/http"

	"github.com/rohits-web03/postdev/internal/menu"
	"github.com/rohits-web03/postdev/internal/utils"
)

// GET /search
// SearchForm godoc
// @Summary Search form
// @Tags Search
// @Produce json
// @Security BearerAuth
// @Success 200 {object} menu.Response
// @Router /search [get]
func (h *Handler) SearchForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(w, r); !ok {
		return
	}

	utils.MenuResponse(w, menu.NewForm(http.MethodPost, PathSearch,
		menu.TextField("keyword", "Send a post code, a username or a keyword", "search", "Reply with keyword or BACK"),
	))
}

// POST /search
// Search godoc
// @Summary Search posts
// @Description A post code opens that post. Any other keyword lists matching unexpired posts.
// @Tags Search
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param keyword formData string true "Code, username or keyword"
// @Success 200 {object} menu.Response
// @Success 302
// @Failure 400 {object} utils.Payload
// @Router /search [post]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok || !parseForm(w, r) {
		return
	}

	result, err := h.posts.Search(r.Context(), user, r.PostForm.Get("keyword"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if result.ByCode != nil {
		redirect(w, r, SharedPostPath(result.ByCode.ID, result.ByCode.Code))
		return
	}

	m := menu.NewMenu("Search")
	for _, post := range result.Matches {
		m.Add(menu.Get(truncate(post.Title, myPostsTitleRunes), PostDetailPath(post.ID)))
	}
	if len(result.Matches) == 0 {
		m.Add(menu.Text("No posts found."))
	}
	utils.MenuResponse(w, m)
}
