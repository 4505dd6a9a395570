package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/1230harry/commercial-db-api/internal/entity"
	"github.com/1230harry/commercial-db-api/internal/messaging"
	"github.com/1230harry/commercial-db-api/internal/repository"
)

// ResourceService runs the CRUD operations of one resource and announces
// every successful write on the change feed.
type ResourceService struct {
	res       entity.Resource
	repo      repository.ResourceRepository
	publisher messaging.Publisher
}

func NewResourceService(
	res entity.Resource,
	repo repository.ResourceRepository,
	publisher messaging.Publisher,
) *ResourceService {
	return &ResourceService{
		res:       res,
		repo:      repo,
		publisher: publisher,
	}
}

// Resource returns the descriptor this service operates on.
func (s *ResourceService) Resource() entity.Resource {
	return s.res
}

func (s *ResourceService) List(ctx context.Context) ([]entity.Row, error) {
	return s.repo.FindAll(ctx)
}

func (s *ResourceService) Get(ctx context.Context, id int64) (entity.Row, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ResourceService) Create(ctx context.Context, values map[string]any) (int64, error) {
	id, err := s.repo.Create(ctx, values)
	if err != nil {
		return 0, err
	}
	s.publish(ctx, entity.ActionCreated, id)
	return id, nil
}

func (s *ResourceService) Update(ctx context.Context, id int64, values map[string]any) error {
	if err := s.repo.Update(ctx, id, values); err != nil {
		return err
	}
	s.publish(ctx, entity.ActionUpdated, id)
	return nil
}

func (s *ResourceService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, entity.ActionDeleted, id)
	return nil
}

// publish never fails the write it follows; the row change is already committed.
func (s *ResourceService) publish(ctx context.Context, action string, id int64) {
	event := entity.ResourceChanged{
		EventID:    uuid.NewString(),
		Resource:   s.res.Path,
		Action:     action,
		ID:         id,
		OccurredAt: time.Now().UTC(),
	}

	key := fmt.Sprintf("%s:%d", s.res.Path, id)
	if err := s.publisher.PublishEvent(ctx, key, event); err != nil {
		slog.Error("Failed to publish change event", "resource", s.res.Path, "action", action, "id", id, "err", err)
	}
}
