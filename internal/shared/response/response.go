// Package response defines the JSON envelope every quill endpoint returns.
package response

import (
	"encoding/json"
	"net/http"
)

// DefaultMessage is used when an endpoint registers no message of its own.
const DefaultMessage = "Request successful"

// Envelope wraps successful payloads.
type Envelope struct {
	StatusCode int    `json:"statusCode" example:"200"`
	Message    string `json:"message" example:"Request successful"`
	Data       any    `json:"data"`
}

// ErrorEnvelope is returned for every failure. Data is always null.
type ErrorEnvelope struct {
	StatusCode int    `json:"statusCode" example:"404"`
	Message    string `json:"message" example:"Post not found"`
	Data       any    `json:"data" swaggertype:"object"`
}

func Success(w http.ResponseWriter, status int, message string, data any) {
	if message == "" {
		message = DefaultMessage
	}
	writeJSON(w, status, Envelope{StatusCode: status, Message: message, Data: data})
}

func Error(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorEnvelope{StatusCode: status, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
