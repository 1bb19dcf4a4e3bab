package service

import (
	"context"
	"time"

	"github.com/mkoval/plotline/internal/domain"
)

// NodeService implements node operations, including the application-level
// contracts the storage engine does not provide: todo population on reads,
// todo-set reconciliation on update, and children-first delete ordering.
type NodeService interface {
	List(ctx context.Context) ([]*domain.Node, error)
	GetByID(ctx context.Context, id string) (*domain.Node, error)
	Create(ctx context.Context, n *domain.Node) (*domain.Node, error)
	Update(ctx context.Context, n *domain.Node) (*domain.Node, error)
	Delete(ctx context.Context, id string) error
}

type TodoService interface {
	ListByNode(ctx context.Context, nodeID string) ([]domain.Todo, error)
	Create(ctx context.Context, t *domain.Todo) (*domain.Todo, error)
	Update(ctx context.Context, t *domain.Todo) (*domain.Todo, error)
	Delete(ctx context.Context, id string) error
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.TimelineSettings, error)
	Save(ctx context.Context, start, end time.Time) (*domain.TimelineSettings, error)
}
