package service

import (
	"context"
	"testing"

	"github.com/mkoval/plotline/internal/domain"
	"github.com/mkoval/plotline/internal/repository"
	"github.com/mkoval/plotline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTodoService(t *testing.T) (TodoService, repository.NodeRepo) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewTodoService(repository.NewSQLiteTodoRepo(db)), repository.NewSQLiteNodeRepo(db)
}

func TestTodoService_CreateAndRoundTrip(t *testing.T) {
	svc, nodeRepo := setupTodoService(t)
	ctx := context.Background()

	node := testutil.NewTestNode("Host")
	require.NoError(t, nodeRepo.Create(ctx, node))

	created, err := svc.Create(ctx, &domain.Todo{
		ID: "t1", NodeID: node.ID, Text: "Plan", Completed: false,
	})
	require.NoError(t, err)
	assert.Equal(t, "t1", created.ID)

	todos, err := svc.ListByNode(ctx, node.ID)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, *created, todos[0])
	assert.False(t, todos[0].Completed)
}

func TestTodoService_Create_AssignsMissingID(t *testing.T) {
	svc, nodeRepo := setupTodoService(t)
	ctx := context.Background()

	node := testutil.NewTestNode("Host")
	require.NoError(t, nodeRepo.Create(ctx, node))

	created, err := svc.Create(ctx, &domain.Todo{NodeID: node.ID, Text: "auto"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestTodoService_Update_Toggle(t *testing.T) {
	svc, nodeRepo := setupTodoService(t)
	ctx := context.Background()

	node := testutil.NewTestNode("Host")
	require.NoError(t, nodeRepo.Create(ctx, node))

	todo := &domain.Todo{ID: "t1", NodeID: node.ID, Text: "Plan"}
	_, err := svc.Create(ctx, todo)
	require.NoError(t, err)

	todo.Completed = true
	_, err = svc.Update(ctx, todo)
	require.NoError(t, err)

	todos, err := svc.ListByNode(ctx, node.ID)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.True(t, todos[0].Completed)
}

func TestTodoService_ListByNode_UnknownNodeIsEmptyNotError(t *testing.T) {
	svc, _ := setupTodoService(t)
	todos, err := svc.ListByNode(context.Background(), "no-such-node")
	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
}

func TestTodoService_Delete(t *testing.T) {
	svc, nodeRepo := setupTodoService(t)
	ctx := context.Background()

	node := testutil.NewTestNode("Host")
	require.NoError(t, nodeRepo.Create(ctx, node))

	_, err := svc.Create(ctx, &domain.Todo{ID: "t1", NodeID: node.ID, Text: "x"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, "t1"))

	todos, err := svc.ListByNode(ctx, node.ID)
	require.NoError(t, err)
	assert.Empty(t, todos)
}
