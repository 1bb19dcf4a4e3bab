package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkoval/plotline/internal/domain"
	"github.com/mkoval/plotline/internal/repository"
)

type nodeService struct {
	nodes    repository.NodeRepo
	todos    repository.TodoRepo
	observer UseCaseObserver
}

func NewNodeService(nodes repository.NodeRepo, todos repository.TodoRepo, observers ...UseCaseObserver) NodeService {
	return &nodeService{
		nodes:    nodes,
		todos:    todos,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *nodeService) List(ctx context.Context) ([]*domain.Node, error) {
	start := time.Now()
	nodes, err := s.nodes.List(ctx)
	observe(ctx, s.observer, "nodes.list", start, err, map[string]any{"count": len(nodes)})
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		n.Todos = s.loadTodos(ctx, n.ID)
	}
	return nodes, nil
}

func (s *nodeService) GetByID(ctx context.Context, id string) (*domain.Node, error) {
	n, err := s.nodes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	n.Todos = s.loadTodos(ctx, n.ID)
	return n, nil
}

func (s *nodeService) Create(ctx context.Context, n *domain.Node) (*domain.Node, error) {
	start := time.Now()
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	err := s.nodes.Create(ctx, n)
	if err == nil {
		for i := range n.Todos {
			if err = s.todos.Create(ctx, &n.Todos[i]); err != nil {
				break
			}
		}
	}
	observe(ctx, s.observer, "nodes.create", start, err, map[string]any{"node_id": n.ID})
	if err != nil {
		return nil, err
	}
	if n.Todos == nil {
		n.Todos = []domain.Todo{}
	}
	return n, nil
}

// Update overwrites the node row, then reconciles the stored todo set
// against the submitted one: todos absent from the submission are deleted,
// the rest are updated or inserted by id. Returns the input object, not a
// re-read; callers must not assume round-trip fidelity beyond what they
// passed in.
func (s *nodeService) Update(ctx context.Context, n *domain.Node) (*domain.Node, error) {
	start := time.Now()
	err := s.updateWithReconcile(ctx, n)
	observe(ctx, s.observer, "nodes.update", start, err, map[string]any{"node_id": n.ID})
	if err != nil {
		return nil, err
	}
	if n.Todos == nil {
		n.Todos = []domain.Todo{}
	}
	return n, nil
}

func (s *nodeService) updateWithReconcile(ctx context.Context, n *domain.Node) error {
	if err := s.nodes.Update(ctx, n); err != nil {
		return err
	}

	existing, err := s.todos.ListByNode(ctx, n.ID)
	if err != nil {
		return err
	}
	existingByID := make(map[string]bool, len(existing))
	for _, t := range existing {
		existingByID[t.ID] = true
	}
	incomingByID := make(map[string]bool, len(n.Todos))
	for _, t := range n.Todos {
		incomingByID[t.ID] = true
	}

	for _, t := range existing {
		if !incomingByID[t.ID] {
			if err := s.todos.Delete(ctx, t.ID); err != nil {
				return err
			}
		}
	}
	for i := range n.Todos {
		t := &n.Todos[i]
		if existingByID[t.ID] {
			if err := s.todos.Update(ctx, t); err != nil {
				return err
			}
		} else {
			if err := s.todos.Create(ctx, t); err != nil {
				return err
			}
		}
	}
	return nil
}

// Delete removes the node's todos first, then the node. The engine does not
// cascade; ordering preserves the application-level foreign key. Each
// statement is atomic on its own, so a crash between the two leaves the
// node without todos rather than orphaned todos.
func (s *nodeService) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.todos.DeleteByNode(ctx, id)
	if err == nil {
		err = s.nodes.Delete(ctx, id)
	}
	observe(ctx, s.observer, "nodes.delete", start, err, map[string]any{"node_id": id})
	return err
}

// loadTodos populates a node's checklist. Todos are best-effort on reads:
// a failure degrades to an empty list instead of failing the node fetch.
func (s *nodeService) loadTodos(ctx context.Context, nodeID string) []domain.Todo {
	todos, err := s.todos.ListByNode(ctx, nodeID)
	if err != nil || todos == nil {
		return []domain.Todo{}
	}
	return todos
}
