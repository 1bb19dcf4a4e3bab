package repository

import (
	"context"

	"github.com/mkoval/plotline/internal/domain"
)

type NodeRepo interface {
	Create(ctx context.Context, n *domain.Node) error
	GetByID(ctx context.Context, id string) (*domain.Node, error)
	List(ctx context.Context) ([]*domain.Node, error)
	Update(ctx context.Context, n *domain.Node) error
	Delete(ctx context.Context, id string) error
}

type TodoRepo interface {
	Create(ctx context.Context, t *domain.Todo) error
	ListByNode(ctx context.Context, nodeID string) ([]domain.Todo, error)
	Update(ctx context.Context, t *domain.Todo) error
	Delete(ctx context.Context, id string) error
	DeleteByNode(ctx context.Context, nodeID string) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.TimelineSettings, error)
	Upsert(ctx context.Context, s *domain.TimelineSettings) error
}
