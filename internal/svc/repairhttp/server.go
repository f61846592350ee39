// Package repairhttp serves the FLV engine's two byte-producing
// operations over HTTP: POST /api/repair returns a byte-exact repaired
// copy of the uploaded file, and POST /api/rewrite returns a copy with its
// onMetaData tag replaced. Both respond with the file as a video/x-flv
// download.
package repairhttp

import "net/http"

// Service provides the repair and rewrite download endpoints.
type Service struct {
	maxUploadSize int64
}

// NewService creates a repairhttp service that rejects request bodies
// larger than maxUploadSize.
func NewService(maxUploadSize int64) *Service {
	return &Service{maxUploadSize: maxUploadSize}
}

// RegisterRoutes registers the repair and rewrite routes on the given mux.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/repair", s.handleRepair)
	mux.HandleFunc("/api/rewrite", s.handleRewrite)
}

// writeFLV sends data as a video/x-flv attachment download.
func writeFLV(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "video/x-flv")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+filename+"\"")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// writeError writes a plain-text error response.
func writeError(w http.ResponseWriter, status int, message string) {
	http.Error(w, message, status)
}
