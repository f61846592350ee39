// Package wsanalyze streams FLV analysis progress over a WebSocket: the
// client sends raw FLV bytes as the first binary frame, the server streams
// one JSON progress event per decoded tag, then a final summary event and
// closes.
package wsanalyze

import (
	"net/http"

	"github.com/gorilla/websocket"
)

// Service provides the /ws/analyze endpoint.
type Service struct {
	maxUploadSize int64
	upgrader      websocket.Upgrader
}

// NewService creates a wsanalyze service that rejects uploaded files
// larger than maxUploadSize.
func NewService(maxUploadSize int64) *Service {
	return &Service{
		maxUploadSize: maxUploadSize,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// RegisterRoutes registers the analyze WebSocket route on the given mux.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/ws/analyze", s.handleAnalyze)
}
