package api

import (
	"encoding/json"
	"net/http"

	"github.com/mkoval/plotline/internal/domain"
)

func (s *Server) handleListNodes(w http.ResponseWriter, r *http.Request) {
	nodes, err := s.nodes.List(r.Context())
	if err != nil {
		s.logger.Error("fetching nodes", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch nodes")
		return
	}
	if nodes == nil {
		nodes = []*domain.Node{}
	}
	writeJSON(w, http.StatusOK, nodes)
}

// The node body contract is lenient: anything that fails to decode or to
// store answers 500 with the generic message, never 400.
func (s *Server) handleCreateNode(w http.ResponseWriter, r *http.Request) {
	var node domain.Node
	if err := json.NewDecoder(r.Body).Decode(&node); err != nil {
		s.logger.Error("decoding node body", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create node")
		return
	}
	created, err := s.nodes.Create(r.Context(), &node)
	if err != nil {
		s.logger.Error("creating node", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create node")
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (s *Server) handleUpdateNode(w http.ResponseWriter, r *http.Request) {
	var node domain.Node
	if err := json.NewDecoder(r.Body).Decode(&node); err != nil {
		s.logger.Error("decoding node body", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update node")
		return
	}
	updated, err := s.nodes.Update(r.Context(), &node)
	if err != nil {
		s.logger.Error("updating node", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update node")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Answers {"success":true} whether or not the id existed.
func (s *Server) handleDeleteNode(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Node ID is required")
		return
	}
	if err := s.nodes.Delete(r.Context(), id); err != nil {
		s.logger.Error("deleting node", "error", err, "node_id", id)
		writeError(w, http.StatusInternalServerError, "Failed to delete node")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
