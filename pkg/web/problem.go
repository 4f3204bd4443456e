package web

import (
	"encoding/json"
	"net/http"
)

// ProblemContentType is the RFC 7807 media type.
const ProblemContentType = "application/problem+json"

// Problem is an RFC 7807 error body.
type Problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// NewProblem builds a Problem titled after the status code.
func NewProblem(status int, detail string) *Problem {
	return &Problem{
		Type:   "about:blank",
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}
}

// WriteProblem writes a problem response with the given status.
func WriteProblem(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", ProblemContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(NewProblem(status, detail))
}
