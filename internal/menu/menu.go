// Package menu models the documents a menu-driven client renders: a Menu
// of selectable items or a Form of fields to fill in. Every response body
// is exactly one of them wrapped in a Response.
package menu

import "net/http"

type ItemType string

const (
	ItemOption  ItemType = "option"
	ItemContent ItemType = "content"
)

// Content is implemented by Menu and Form.
type Content interface {
	ContentType() string
}

type Response struct {
	ContentType string  `json:"content_type"`
	Content     Content `json:"content"`
}

func NewResponse(content Content) Response {
	return Response{ContentType: content.ContentType(), Content: content}
}

type MenuItem struct {
	Type        ItemType `json:"type"`
	Description string   `json:"description"`
	Method      string   `json:"method,omitempty"`
	Path        string   `json:"path,omitempty"`
}

// Option is a selectable item that sends method to path.
func Option(description, method, path string) MenuItem {
	return MenuItem{Type: ItemOption, Description: description, Method: method, Path: path}
}

// Text is a non-selectable item.
func Text(description string) MenuItem {
	return MenuItem{Type: ItemContent, Description: description}
}

type Menu struct {
	Type   string     `json:"type"`
	Body   []MenuItem `json:"body"`
	Header string     `json:"header,omitempty"`
	Footer string     `json:"footer,omitempty"`
}

func NewMenu(header string, items ...MenuItem) *Menu {
	if items == nil {
		items = []MenuItem{}
	}
	return &Menu{Type: "menu", Body: items, Header: header}
}

func (m *Menu) Add(items ...MenuItem) {
	m.Body = append(m.Body, items...)
}

func (*Menu) ContentType() string { return "menu" }

// Get is an Option that navigates to path.
func Get(description, path string) MenuItem {
	return Option(description, http.MethodGet, path)
}
