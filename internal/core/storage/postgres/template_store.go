package postgres

import (
	"context"
	"fmt"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/core/storage"
)

// TemplateStore reads and writes templateitem rows. created_at is rendered
// by the database as an ISO-8601 string without zone.
type TemplateStore struct {
	db storage.DBTX
}

func NewTemplateStore(db storage.DBTX) *TemplateStore {
	return &TemplateStore{db: db}
}

func (s *TemplateStore) List(ctx context.Context) ([]v1.Template, error) {
	rows, err := s.db.QueryContext(ctx, queryListTemplates)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return queryAll(rows, scanTemplate)
}

func (s *TemplateStore) Get(ctx context.Context, id int64) (*v1.Template, error) {
	t, err := queryOne(s.db.QueryRowContext(ctx, queryGetTemplate, id), scanTemplate)
	if err != nil {
		return nil, fmt.Errorf("get template %d: %w", id, err)
	}
	return t, nil
}

func (s *TemplateStore) Create(ctx context.Context, req v1.CreateTemplateRequest) (*v1.Template, error) {
	t, err := scanTemplate(s.db.QueryRowContext(ctx, queryCreateTemplate, req.Title, req.Body, req.Status))
	if err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}
	return t, nil
}

func scanTemplate(row scanner) (*v1.Template, error) {
	var t v1.Template
	if err := row.Scan(&t.ID, &t.Title, &t.Status, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
