package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkoval/plotline/internal/domain"
	"github.com/mkoval/plotline/internal/repository"
)

type todoService struct {
	todos    repository.TodoRepo
	observer UseCaseObserver
}

func NewTodoService(todos repository.TodoRepo, observers ...UseCaseObserver) TodoService {
	return &todoService{
		todos:    todos,
		observer: useCaseObserverOrNoop(observers),
	}
}

// ListByNode returns the node's checklist. Reads are best-effort: an
// internal failure degrades to an empty list.
func (s *todoService) ListByNode(ctx context.Context, nodeID string) ([]domain.Todo, error) {
	todos, err := s.todos.ListByNode(ctx, nodeID)
	if err != nil || todos == nil {
		return []domain.Todo{}, nil
	}
	return todos, nil
}

func (s *todoService) Create(ctx context.Context, t *domain.Todo) (*domain.Todo, error) {
	start := time.Now()
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	err := s.todos.Create(ctx, t)
	observe(ctx, s.observer, "todos.create", start, err, map[string]any{"todo_id": t.ID, "node_id": t.NodeID})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *todoService) Update(ctx context.Context, t *domain.Todo) (*domain.Todo, error) {
	start := time.Now()
	err := s.todos.Update(ctx, t)
	observe(ctx, s.observer, "todos.update", start, err, map[string]any{"todo_id": t.ID})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *todoService) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.todos.Delete(ctx, id)
	observe(ctx, s.observer, "todos.delete", start, err, map[string]any{"todo_id": id})
	return err
}
