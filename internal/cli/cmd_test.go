package cli

import (
	"bytes"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/mkoval/plotline/internal/api"
	"github.com/mkoval/plotline/internal/client"
	"github.com/mkoval/plotline/internal/config"
	"github.com/mkoval/plotline/internal/domain"
	"github.com/mkoval/plotline/internal/repository"
	"github.com/mkoval/plotline/internal/service"
	"github.com/mkoval/plotline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App against an in-memory DB served over httptest,
// so CLI commands exercise the real HTTP round trip.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	nodeRepo := repository.NewSQLiteNodeRepo(db)
	todoRepo := repository.NewSQLiteTodoRepo(db)
	settingsRepo := repository.NewSQLiteSettingsRepo(db)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := api.NewServer(api.ServerConfig{},
		service.NewNodeService(nodeRepo, todoRepo),
		service.NewTodoService(todoRepo),
		service.NewSettingsService(settingsRepo),
		logger,
	)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	positions, err := client.OpenPositionStore(t.TempDir())
	require.NoError(t, err)

	return &App{
		Config:        &config.Config{ServerURL: ts.URL},
		Store:         client.NewStore(ts.URL, positions, logger),
		Positions:     positions,
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestNodeAddAndList(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "node", "add", "Launch beta", "--date", "2026-09-15", "--type", "milestone")
	require.NoError(t, err)
	assert.Contains(t, out, "Node created.")

	out, err = executeCmd(t, app, "node", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Launch beta")
	assert.Contains(t, out, "milestone")
	assert.Contains(t, out, "2026-09-15")
}

func TestNodeAddDefaultsToNormalType(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "node", "add", "Untyped", "--date", "2026-04-01")
	require.NoError(t, err)

	nodes := app.Store.Nodes()
	require.Len(t, nodes, 1)
	assert.Equal(t, domain.NodeNormal, nodes[0].Type)
}

func TestNodeAddRejectsBadType(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "node", "add", "Oops", "--date", "2026-09-15", "--type", "mega")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid node type")
}

func TestNodeDelete(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "node", "add", "Temp", "--date", "2026-01-01")
	require.NoError(t, err)
	nodes := app.Store.Nodes()
	require.Len(t, nodes, 1)

	out, err := executeCmd(t, app, "node", "delete", nodes[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Node deleted.")
	assert.Empty(t, app.Store.Nodes())
}

func TestTodoLifecycle(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "node", "add", "Phase 1", "--date", "2026-02-01")
	require.NoError(t, err)
	nodeID := app.Store.Nodes()[0].ID

	out, err := executeCmd(t, app, "todo", "add", nodeID, "write outline")
	require.NoError(t, err)
	assert.Contains(t, out, "Todo added.")

	todos := app.Store.Nodes()[0].Todos
	require.Len(t, todos, 1)
	assert.False(t, todos[0].Completed)

	out, err = executeCmd(t, app, "todo", "toggle", todos[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Todo marked complete.")
	assert.True(t, app.Store.Nodes()[0].Todos[0].Completed)

	out, err = executeCmd(t, app, "todo", "delete", todos[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Todo deleted.")
	assert.Empty(t, app.Store.Nodes()[0].Todos)
}

func TestTodoToggleUnknownID(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "todo", "toggle", "no-such-todo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRangeSetAndShow(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "range", "set", "2026-03-01", "2026-06-30")
	require.NoError(t, err)
	assert.Contains(t, out, "Date range saved.")

	out, err = executeCmd(t, app, "range", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "2026-03-01 .. 2026-06-30")
}

func TestRangeSetRejectsBadDate(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "range", "set", "March 1", "2026-06-30")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid start date")
}

func TestMoveSavesAndHonorsThreshold(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "move", "n1", "--x", "10", "--y", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "saved at (10, 20)")

	// A nudge within 5 units of the last save keeps the old position.
	out, err = executeCmd(t, app, "move", "n1", "--x", "12", "--y", "23")
	require.NoError(t, err)
	assert.Contains(t, out, "keeping (10, 20)")
}
