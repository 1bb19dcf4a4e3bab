package api

import (
	"encoding/json"
	"net/http"

	"github.com/mkoval/plotline/internal/domain"
)

// validateTodo checks the decoded body at the type level and returns the
// message naming the first failing field, or "" when valid. completed must
// be a genuine JSON boolean; truthy strings are rejected.
func validateTodo(body map[string]any) string {
	if str, ok := body["id"].(string); !ok || str == "" {
		return "Todo ID is required"
	}
	if str, ok := body["nodeId"].(string); !ok || str == "" {
		return "Node ID is required"
	}
	if str, ok := body["text"].(string); !ok || str == "" {
		return "Valid text is required"
	}
	if _, ok := body["completed"].(bool); !ok {
		return "Completed status must be a boolean"
	}
	return ""
}

func todoFromBody(body map[string]any) *domain.Todo {
	return &domain.Todo{
		ID:        body["id"].(string),
		NodeID:    body["nodeId"].(string),
		Text:      body["text"].(string),
		Completed: body["completed"].(bool),
	}
}

func (s *Server) handleListTodos(w http.ResponseWriter, r *http.Request) {
	nodeID := r.URL.Query().Get("nodeId")
	if nodeID == "" {
		writeError(w, http.StatusBadRequest, "Node ID is required")
		return
	}
	todos, err := s.todos.ListByNode(r.Context(), nodeID)
	if err != nil {
		s.logger.Error("fetching todos", "error", err, "node_id", nodeID)
		writeError(w, http.StatusInternalServerError, "Failed to fetch todos")
		return
	}
	writeJSON(w, http.StatusOK, todos)
}

func (s *Server) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.logger.Error("decoding todo body", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create todo")
		return
	}
	if msg := validateTodo(body); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	created, err := s.todos.Create(r.Context(), todoFromBody(body))
	if err != nil {
		s.logger.Error("creating todo", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create todo")
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (s *Server) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.logger.Error("decoding todo body", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update todo")
		return
	}
	if msg := validateTodo(body); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	updated, err := s.todos.Update(r.Context(), todoFromBody(body))
	if err != nil {
		s.logger.Error("updating todo", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update todo")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Todo ID is required")
		return
	}
	if err := s.todos.Delete(r.Context(), id); err != nil {
		s.logger.Error("deleting todo", "error", err, "todo_id", id)
		writeError(w, http.StatusInternalServerError, "Failed to delete todo")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
