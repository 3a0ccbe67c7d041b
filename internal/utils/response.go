package utils

import (
	"encoding/json"
	"net/http"

	"github.com/rohits-web03/postdev/internal/menu"
)

type Payload struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// JSONResponse sends a JSON response with given status, success flag, and payload
func JSONResponse(w http.ResponseWriter, status int, payload Payload) {
	writeJSON(w, status, payload)
}

// MenuResponse sends a single menu or form document.
func MenuResponse(w http.ResponseWriter, content menu.Content) {
	writeJSON(w, http.StatusOK, menu.NewResponse(content))
}

// ErrorResponse sends a failed Payload carrying message.
func ErrorResponse(w http.ResponseWriter, status int, message string) {
	JSONResponse(w, status, Payload{
		Success: false,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
