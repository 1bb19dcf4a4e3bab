package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mkoval/plotline/internal/domain"
)

// fetchCooldown is the window during which repeat fetches are answered
// from the cached node list instead of the network.
const fetchCooldown = 30 * time.Second

// Store is the client-side application state: the node list, the display
// date range, and the UI flags, together with the network actions that
// mutate them. All server traffic goes through here. Fetched nodes are
// merged with the local position overlay before they reach callers; the
// overlay always wins over the server's titleOffset.
//
// The cooldown cache is advisory only: nothing coordinates concurrent
// processes, and the server keeps last-write-wins semantics.
type Store struct {
	mu        sync.Mutex
	baseURL   string
	http      *http.Client
	positions *PositionStore
	logger    *slog.Logger
	now       func() time.Time

	nodes     []domain.Node
	view      domain.TimelineView
	scale     float64
	startDate time.Time
	endDate   time.Time
	selected  *domain.Node
	loading   bool
	lastError string

	nodesCache []domain.Node
	lastFetch  time.Time
}

// NewStore creates a Store pointed at the given server. The date range
// defaults to three months either side of today until LoadSettings
// replaces it.
func NewStore(baseURL string, positions *PositionStore, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	now := time.Now()
	return &Store{
		baseURL:   baseURL,
		http:      &http.Client{Timeout: 30 * time.Second},
		positions: positions,
		logger:    logger,
		now:       time.Now,
		view:      domain.ViewWeek,
		scale:     1,
		startDate: now.AddDate(0, -3, 0),
		endDate:   now.AddDate(0, 3, 0),
	}
}

// FetchNodes loads the node list. Calls within the cooldown of the last
// successful fetch are served from the cache, refreshed only by re-merging
// the position overlay; calls outside it always hit the network, replace
// the cache, and reset the cooldown clock.
func (s *Store) FetchNodes(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.nodesCache != nil && now.Sub(s.lastFetch) < fetchCooldown {
		s.nodes = s.mergePositions(s.nodesCache)
		s.loading = false
		return nil
	}

	s.loading = true
	s.lastError = ""

	var fetched []domain.Node
	if err := s.get(ctx, "/nodes", &fetched); err != nil {
		s.lastError = err.Error()
		s.loading = false
		return err
	}

	for i := range fetched {
		if fetched[i].ID == "" {
			fetched[i].ID = uuid.New().String()
		}
		if fetched[i].Todos == nil {
			fetched[i].Todos = []domain.Todo{}
		}
	}

	s.nodesCache = fetched
	s.lastFetch = now
	s.nodes = s.mergePositions(fetched)
	s.loading = false
	return nil
}

// LoadSettings fetches the saved date range. Failures are logged and
// swallowed; the store silently keeps its current range.
func (s *Store) LoadSettings(ctx context.Context) {
	var settings *domain.TimelineSettings
	if err := s.get(ctx, "/timeline-settings", &settings); err != nil {
		s.logger.Warn("loading timeline settings", "error", err)
		return
	}
	if settings == nil {
		return
	}
	s.mu.Lock()
	s.startDate = settings.StartDate
	s.endDate = settings.EndDate
	s.mu.Unlock()
}

// AddNode posts a new node and appends the server's response to the list.
// A missing id is assigned client-side before the request.
func (s *Store) AddNode(ctx context.Context, node domain.Node) error {
	s.setLoading()
	if node.ID == "" {
		node.ID = uuid.New().String()
	}
	if node.Todos == nil {
		node.Todos = []domain.Todo{}
	}

	var saved domain.Node
	if err := s.send(ctx, http.MethodPost, "/nodes", node, &saved); err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.nodes = append(s.nodes, saved)
	s.loading = false
	s.mu.Unlock()
	return nil
}

// UpdateNode puts the node and replaces the matching list entry with the
// server's response.
func (s *Store) UpdateNode(ctx context.Context, node domain.Node) error {
	s.setLoading()

	var saved domain.Node
	if err := s.send(ctx, http.MethodPut, "/nodes", node, &saved); err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	for i := range s.nodes {
		if s.nodes[i].ID == node.ID {
			s.nodes[i] = saved
		}
	}
	s.loading = false
	s.mu.Unlock()
	return nil
}

// DeleteNode removes the entry locally once the server answers 2xx,
// regardless of the response body.
func (s *Store) DeleteNode(ctx context.Context, id string) error {
	s.setLoading()

	if err := s.send(ctx, http.MethodDelete, "/nodes/"+id, nil, nil); err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	kept := s.nodes[:0]
	for _, n := range s.nodes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.nodes = kept
	s.loading = false
	s.mu.Unlock()
	return nil
}

// AddTodo posts a todo and appends the response to the owning node's list.
// A missing id is assigned client-side, like AddNode.
func (s *Store) AddTodo(ctx context.Context, nodeID string, todo domain.Todo) error {
	s.setLoading()
	if todo.ID == "" {
		todo.ID = uuid.New().String()
	}
	if todo.NodeID == "" {
		todo.NodeID = nodeID
	}

	var saved domain.Todo
	if err := s.send(ctx, http.MethodPost, "/todos", todo, &saved); err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	for i := range s.nodes {
		if s.nodes[i].ID == nodeID {
			s.nodes[i].Todos = append(s.nodes[i].Todos, saved)
		}
	}
	s.loading = false
	s.mu.Unlock()
	return nil
}

// UpdateTodo puts a todo and replaces it in the node matched by the
// todo's nodeId.
func (s *Store) UpdateTodo(ctx context.Context, todo domain.Todo) error {
	s.setLoading()

	var saved domain.Todo
	if err := s.send(ctx, http.MethodPut, "/todos", todo, &saved); err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	for i := range s.nodes {
		if s.nodes[i].ID != todo.NodeID {
			continue
		}
		for j := range s.nodes[i].Todos {
			if s.nodes[i].Todos[j].ID == todo.ID {
				s.nodes[i].Todos[j] = saved
			}
		}
	}
	s.loading = false
	s.mu.Unlock()
	return nil
}

// DeleteTodo removes the todo from every node's list.
func (s *Store) DeleteTodo(ctx context.Context, todoID string) error {
	s.setLoading()

	if err := s.send(ctx, http.MethodDelete, "/todos?id="+todoID, nil, nil); err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	for i := range s.nodes {
		kept := s.nodes[i].Todos[:0]
		for _, t := range s.nodes[i].Todos {
			if t.ID != todoID {
				kept = append(kept, t)
			}
		}
		s.nodes[i].Todos = kept
	}
	s.loading = false
	s.mu.Unlock()
	return nil
}

// SetDateRange updates the range optimistically, then saves it. Save
// failures are logged only; the local state is not rolled back and stays
// inconsistent with the server until the next load.
func (s *Store) SetDateRange(ctx context.Context, start, end time.Time) {
	s.mu.Lock()
	s.startDate = start
	s.endDate = end
	s.mu.Unlock()

	body := map[string]string{
		"startDate": start.UTC().Format(time.RFC3339),
		"endDate":   end.UTC().Format(time.RFC3339),
	}
	if err := s.send(ctx, http.MethodPost, "/timeline-settings", body, nil); err != nil {
		s.logger.Warn("saving timeline settings", "error", err)
	}
}

// SaveNodePosition records a drag-release position in the local override
// table only. The server's copy of titleOffset is updated lazily, the next
// time the node is edited through UpdateNode.
func (s *Store) SaveNodePosition(nodeID string, off domain.Offset) error {
	return s.positions.Save(nodeID, off)
}

func (s *Store) SetView(view domain.TimelineView) {
	s.mu.Lock()
	s.view = view
	s.mu.Unlock()
}

func (s *Store) SetScale(scale float64) {
	s.mu.Lock()
	s.scale = scale
	s.mu.Unlock()
}

func (s *Store) SetSelectedNode(node *domain.Node) {
	s.mu.Lock()
	s.selected = node
	s.mu.Unlock()
}

// Nodes returns a copy of the current node list.
func (s *Store) Nodes() []domain.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

func (s *Store) View() domain.TimelineView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *Store) Scale() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scale
}

func (s *Store) SelectedNode() *domain.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

func (s *Store) DateRange() (time.Time, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startDate, s.endDate
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last network error message, or "" when the last action
// succeeded. This is the single place user-visible error text comes from.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

func (s *Store) mergePositions(nodes []domain.Node) []domain.Node {
	merged := make([]domain.Node, len(nodes))
	copy(merged, nodes)
	if s.positions == nil {
		return merged
	}
	for i := range merged {
		if off, ok := s.positions.Get(merged[i].ID); ok {
			merged[i].TitleOffset = off
		}
	}
	return merged
}

func (s *Store) setLoading() {
	s.mu.Lock()
	s.loading = true
	s.lastError = ""
	s.mu.Unlock()
}

func (s *Store) fail(err error) {
	s.mu.Lock()
	s.lastError = err.Error()
	s.loading = false
	s.mu.Unlock()
}

func (s *Store) get(ctx context.Context, path string, out any) error {
	return s.send(ctx, http.MethodGet, path, nil, out)
}

func (s *Store) send(ctx context.Context, method, path string, body, out any) error {
	var rd *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		rd = bytes.NewReader(data)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return errors.New(apiErr.Error)
		}
		return fmt.Errorf("server answered %d for %s %s", resp.StatusCode, method, path)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response body: %w", err)
		}
	}
	return nil
}
