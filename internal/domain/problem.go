package domain

import (
	"fmt"
	"net/http"
)

// Problem is an RFC 7807 style error detail attached to failures that
// originate from business rules rather than infrastructure.
type Problem struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

func (p *Problem) Error() string {
	if p.Detail == "" {
		return p.Title
	}
	return fmt.Sprintf("%s: %s", p.Title, p.Detail)
}

// NewProblem creates a problem with the given HTTP status, title and detail.
func NewProblem(status int, title, detail string) *Problem {
	return &Problem{Status: status, Title: title, Detail: detail}
}

// ConflictProblem flags a business key collision.
func ConflictProblem(detail string) *Problem {
	return NewProblem(http.StatusConflict, "Conflict", detail)
}

// NotFoundProblem flags a missing resource.
func NotFoundProblem(detail string) *Problem {
	return NewProblem(http.StatusNotFound, "Not Found", detail)
}

// BadRequestProblem flags an invalid request.
func BadRequestProblem(detail string) *Problem {
	return NewProblem(http.StatusBadRequest, "Bad Request", detail)
}
