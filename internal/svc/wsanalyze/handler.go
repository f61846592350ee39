package wsanalyze

import (
	"net/http"

	"flvkit/internal/core/amf0"
	"flvkit/internal/core/flvfile"

	"github.com/gorilla/websocket"
)

// progressEvent is one per-tag message streamed while a submitted file is
// walked.
type progressEvent struct {
	Index     int    `json:"index"`
	Total     int    `json:"total"`
	Offset    int    `json:"offset"`
	Type      string `json:"type"`
	Timestamp uint32 `json:"timestamp"`
	Analysis  string `json:"analysis,omitempty"`
}

// summaryEvent is the final message closing out an analysis run.
type summaryEvent struct {
	Done     bool                   `json:"done"`
	TagCount int                    `json:"tagCount"`
	Metadata map[string]interface{} `json:"metadata"`
}

// errorEvent reports a terminal parse failure.
type errorEvent struct {
	Error string `json:"error"`
}

// handleAnalyze upgrades the connection, reads one binary frame of raw FLV
// bytes, parses it, and streams progress events followed by a summary.
func (s *Service) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	conn.SetReadLimit(s.maxUploadSize)

	messageType, data, err := conn.ReadMessage()
	if err != nil || messageType != websocket.BinaryMessage {
		conn.WriteJSON(errorEvent{Error: "expected a binary frame of FLV bytes"})
		return
	}

	file, err := flvfile.Parse(data, r.RemoteAddr)
	if err != nil {
		conn.WriteJSON(errorEvent{Error: err.Error()})
		return
	}

	for i, tag := range file.Tags {
		event := progressEvent{
			Index:     i,
			Total:     len(file.Tags),
			Offset:    tag.Offset,
			Type:      tag.Type.String(),
			Timestamp: tag.Timestamp,
			Analysis:  tag.Analysis,
		}
		if err := conn.WriteJSON(event); err != nil {
			return
		}
	}

	metadata := map[string]interface{}{}
	if file.Metadata != nil {
		metadata = amf0.ToGoValue(file.Metadata).(map[string]interface{})
	}
	conn.WriteJSON(summaryEvent{Done: true, TagCount: len(file.Tags), Metadata: metadata})
}
