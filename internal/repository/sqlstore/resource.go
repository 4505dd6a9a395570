package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/1230harry/commercial-db-api/internal/entity"
	"github.com/1230harry/commercial-db-api/internal/repository"
)

type resourceRepository struct {
	*Store
	res entity.Resource
}

// NewResourceRepository creates a ResourceRepository for the table described by res.
func NewResourceRepository(store *Store, res entity.Resource) repository.ResourceRepository {
	return &resourceRepository{Store: store, res: res}
}

func (r *resourceRepository) FindAll(ctx context.Context) ([]entity.Row, error) {
	q, args := NewQuery("SELECT * FROM " + r.res.Table).OrderBy("id").Build()
	rows, err := r.query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.res.Plural, err)
	}
	return rows, nil
}

func (r *resourceRepository) FindByID(ctx context.Context, id int64) (entity.Row, error) {
	q, args := NewQuery("SELECT * FROM "+r.res.Table).Where("id = ?", id).Build()
	rows, err := r.query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s %d: %w", r.res.Plural, id, err)
	}
	if len(rows) == 0 {
		return nil, repository.ErrNotFound
	}
	return rows[0], nil
}

func (r *resourceRepository) Create(ctx context.Context, values map[string]any) (int64, error) {
	id, err := r.insert(ctx, insertSQL(r.res.Table, r.res.CreateColumns), columnArgs(r.res.CreateColumns, values)...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", r.res.Table, err)
	}
	return id, nil
}

func (r *resourceRepository) Update(ctx context.Context, id int64, values map[string]any) error {
	args := append(columnArgs(r.res.UpdateColumns, values), id)
	if err := r.execKeyed(ctx, updateSQL(r.res.Table, r.res.UpdateColumns), args...); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to update %s %d: %w", r.res.Table, id, err)
	}
	return nil
}

func (r *resourceRepository) Delete(ctx context.Context, id int64) error {
	if err := r.execKeyed(ctx, deleteSQL(r.res.Table), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete from %s %d: %w", r.res.Table, id, err)
	}
	return nil
}
