package testutil

import (
	"github.com/google/uuid"
	"github.com/mkoval/plotline/internal/domain"
)

// Node options
type NodeOption func(*domain.Node)

func WithNodeType(t domain.NodeType) NodeOption {
	return func(n *domain.Node) {
		n.Type = t
	}
}

func WithNodeDate(date string) NodeOption {
	return func(n *domain.Node) {
		n.Date = date
	}
}

func WithTitleOffset(x, y float64) NodeOption {
	return func(n *domain.Node) {
		n.TitleOffset = domain.Offset{X: x, Y: y}
	}
}

func WithTodos(todos ...domain.Todo) NodeOption {
	return func(n *domain.Node) {
		n.Todos = todos
	}
}

func NewTestNode(title string, opts ...NodeOption) *domain.Node {
	n := &domain.Node{
		ID:    uuid.New().String(),
		Title: title,
		Date:  "2024-06-01",
		Type:  domain.NodeNormal,
		Todos: []domain.Todo{},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Todo options
type TodoOption func(*domain.Todo)

func WithCompleted(done bool) TodoOption {
	return func(t *domain.Todo) {
		t.Completed = done
	}
}

func NewTestTodo(nodeID, text string, opts ...TodoOption) *domain.Todo {
	t := &domain.Todo{
		ID:     uuid.New().String(),
		NodeID: nodeID,
		Text:   text,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
