package api

import (
	"errors"
	"io"
	"net/http"

	"flvkit/internal/core/amf0"
	"flvkit/internal/core/flvfile"
)

// HeaderSummary is the JSON rendering of a parsed FLV header.
type HeaderSummary struct {
	Version    uint8  `json:"version"`
	HasAudio   bool   `json:"hasAudio"`
	HasVideo   bool   `json:"hasVideo"`
	HeaderSize uint32 `json:"headerSize"`
}

// TagSummary is the JSON rendering of one parsed FLV tag.
type TagSummary struct {
	Offset    int         `json:"offset"`
	Type      string      `json:"type"`
	DataSize  uint32      `json:"dataSize"`
	Timestamp uint32      `json:"timestamp"`
	StreamID  uint32      `json:"streamId"`
	Details   interface{} `json:"details"`
	Analysis  string      `json:"analysis,omitempty"`
}

// InspectResponse is the /api/inspect response body.
type InspectResponse struct {
	Source   string                 `json:"source"`
	Header   HeaderSummary          `json:"header"`
	Metadata map[string]interface{} `json:"metadata"`
	Tags     []TagSummary           `json:"tags"`
}

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleInspect handles POST /api/inspect. The request body is raw FLV
// bytes; the response is a JSON summary of the parsed file.
func (s *Service) handleInspect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadSize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}

	file, err := flvfile.Parse(body, r.RemoteAddr)
	if err != nil {
		if errors.Is(err, flvfile.ErrInvalidSignature) || errors.Is(err, flvfile.ErrDataTooShort) {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, inspectResponse(file))
}

// inspectResponse converts a parsed FLVFile into its JSON rendering.
func inspectResponse(file *flvfile.File) InspectResponse {
	resp := InspectResponse{
		Source: file.Source,
		Header: HeaderSummary{
			Version:    file.Header.Version,
			HasAudio:   file.Header.HasAudio,
			HasVideo:   file.Header.HasVideo,
			HeaderSize: file.Header.HeaderSize,
		},
		Metadata: map[string]interface{}{},
		Tags:     make([]TagSummary, 0, len(file.Tags)),
	}

	if file.Metadata != nil {
		resp.Metadata = amf0.ToGoValue(file.Metadata).(map[string]interface{})
	}

	for _, tag := range file.Tags {
		resp.Tags = append(resp.Tags, TagSummary{
			Offset:    tag.Offset,
			Type:      tag.Type.String(),
			DataSize:  tag.DataSize,
			Timestamp: tag.Timestamp,
			StreamID:  tag.StreamID,
			Details:   tag.Details,
			Analysis:  tag.Analysis,
		})
	}

	return resp
}
