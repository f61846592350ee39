package repairhttp

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"flvkit/internal/core/amf0"
	"flvkit/internal/core/flvfile"
)

// handleRepair handles POST /api/repair. The request body is raw FLV
// bytes; the response is the byte-exact repaired file.
func (s *Service) handleRepair(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := readUpload(w, r, s.maxUploadSize)
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}

	repaired, err := flvfile.Repair(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeFLV(w, "repaired.flv", repaired)
}

// handleRewrite handles POST /api/rewrite. The request body is raw FLV
// bytes; the replacement metadata is supplied as a JSON object (number,
// boolean, or string values only) in the X-Metadata header. The response
// is the rewritten file.
func (s *Service) handleRewrite(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	metadata, err := parseMetadataHeader(r.Header.Get("X-Metadata"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid X-Metadata header: "+err.Error())
		return
	}

	body, err := readUpload(w, r, s.maxUploadSize)
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}

	rewritten, err := flvfile.RewriteMetadata(body, metadata)
	if err != nil {
		if errors.Is(err, flvfile.ErrMetadataNotFound) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeFLV(w, "rewritten.flv", rewritten)
}

// readUpload bounds and reads the request body.
func readUpload(w http.ResponseWriter, r *http.Request, maxUploadSize int64) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	return io.ReadAll(r.Body)
}

// parseMetadataHeader decodes a JSON object of number/boolean/string
// values into the dynamic AMF0 value map the rewrite operation expects.
func parseMetadataHeader(header string) (map[string]amf0.Value, error) {
	result := map[string]amf0.Value{}
	if header == "" {
		return result, nil
	}

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(header), &raw); err != nil {
		return nil, err
	}

	for k, v := range raw {
		switch val := v.(type) {
		case float64, bool, string:
			result[k] = val
		default:
			// Unsupported kinds are silently omitted by the AMF0 encoder
			// itself; dropping them here keeps that behavior visible at
			// the boundary instead of producing a surprising partial tag.
			continue
		}
	}
	return result, nil
}
