package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mkoval/plotline/internal/repository"
)

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.settings.Get(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// No saved range is a valid state: answer the literal null.
			writeJSON(w, http.StatusOK, nil)
			return
		}
		s.logger.Error("fetching timeline settings", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch timeline settings")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var body struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.logger.Error("decoding settings body", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save timeline settings")
		return
	}
	if body.StartDate == "" || body.EndDate == "" {
		writeError(w, http.StatusBadRequest, "Start date and end date are required")
		return
	}

	start, startErr := parseDate(body.StartDate)
	end, endErr := parseDate(body.EndDate)
	if startErr != nil || endErr != nil {
		s.logger.Error("parsing settings dates", "start_error", startErr, "end_error", endErr)
		writeError(w, http.StatusInternalServerError, "Failed to save timeline settings")
		return
	}

	saved, err := s.settings.Save(r.Context(), start, end)
	if err != nil {
		s.logger.Error("saving timeline settings", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save timeline settings")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
