package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/guestkeeper/internal/common"
	"github.com/dmitrijs2005/guestkeeper/internal/server/models"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type setArrivedRequest struct {
	Arrived *bool `json:"arrived"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *HTTPServer) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, common.ErrorValidation) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid"})
		return
	}
	s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err.Error())
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed", Message: err.Error()})
}

func (s *HTTPServer) handleArrivals(w http.ResponseWriter, r *http.Request) {
	all, err := s.arrivals.All(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if all == nil {
		all = map[string]bool{}
	}
	writeJSON(w, http.StatusOK, all)
}

// handleSetArrived accepts only a JSON object whose "arrived" is a boolean.
func (s *HTTPServer) handleSetArrived(w http.ResponseWriter, r *http.Request) {
	var req setArrivedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Arrived == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid"})
		return
	}

	rec := models.ArrivalRecord{ID: r.PathValue("id"), Arrived: *req.Arrived}
	if err := s.arrivals.SetArrived(r.Context(), rec); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.arrivals.Health(r.Context()))
}
