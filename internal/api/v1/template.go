package v1

import (
	"fmt"
	"strings"
)

// DefaultTemplateStatus is applied when a template is created without a status.
const DefaultTemplateStatus = "DRAFT"

// Template is the list projection of a template item. CreatedAt is kept as the
// store's textual timestamp so cached and uncached reads are identical.
type Template struct {
	ID        int64  `json:"id" msgpack:"id"`
	Title     string `json:"title" msgpack:"title"`
	Status    string `json:"status" msgpack:"status"`
	CreatedAt string `json:"created_at" msgpack:"created_at"`
}

type CreateTemplateRequest struct {
	Title  string  `json:"title" binding:"required"`
	Body   *string `json:"body"`
	Status string  `json:"status"`
}

// Normalize trims the title and fills in the default status.
func (r *CreateTemplateRequest) Normalize() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	r.Status = strings.ToUpper(strings.TrimSpace(r.Status))
	if r.Status == "" {
		r.Status = DefaultTemplateStatus
	}
	return nil
}
