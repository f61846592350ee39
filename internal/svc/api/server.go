// Package api exposes read-model endpoints over the FLV engine: a JSON
// summary of a submitted file's header, metadata, and tag sequence.
package api

import (
	"encoding/json"
	"net/http"
)

// Service provides the /api/inspect endpoint.
type Service struct {
	maxUploadSize int64
}

// NewService creates an API service that rejects request bodies larger
// than maxUploadSize.
func NewService(maxUploadSize int64) *Service {
	return &Service{maxUploadSize: maxUploadSize}
}

// RegisterRoutes registers API routes on the provided mux.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/inspect", s.handleInspect)
}

// writeJSON writes a JSON response.
func (s *Service) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func (s *Service) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, ErrorResponse{Error: message})
}
