package menu

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuDocument(t *testing.T) {
	m := NewMenu("Sofa", Text("Nice sofa"))
	m.Add(Option("Renew", http.MethodPatch, "/posts/1"))

	raw, err := json.Marshal(NewResponse(m))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"content_type": "menu",
		"content": {
			"type": "menu",
			"header": "Sofa",
			"body": [
				{"type": "content", "description": "Nice sofa"},
				{"type": "option", "description": "Renew", "method": "PATCH", "path": "/posts/1"}
			]
		}
	}`, string(raw))
}

func TestEmptyMenuHasBody(t *testing.T) {
	raw, err := json.Marshal(NewMenu(""))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"menu","body":[]}`, string(raw))
}

func TestFormDocument(t *testing.T) {
	f := NewForm(http.MethodPost, "/posts/new",
		TextField("title", "Title?", "add", "Reply"),
		ChoiceField("is_private", NewChoice("Private", "True"), NewChoice("Public", "False")),
	)

	raw, err := json.Marshal(NewResponse(f))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"content_type": "form",
		"content": {
			"type": "form",
			"method": "POST",
			"path": "/posts/new",
			"meta": {"confirmation_needed": false, "completion_status_in_header": false, "completion_status_show": false},
			"body": [
				{"type": "string", "name": "title", "description": "Title?", "header": "add", "footer": "Reply"},
				{"type": "form-menu", "name": "is_private", "body": [
					{"type": "option", "value": "True", "description": "Private"},
					{"type": "option", "value": "False", "description": "Public"}
				]}
			]
		}
	}`, string(raw))
}
