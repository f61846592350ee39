package flvfile

import (
	"sort"

	"flvkit/internal/core/amf0"
	"flvkit/internal/core/binaryio"
	"flvkit/internal/core/codecdetail"
)

// RewriteMetadata copies the input verbatim except for the first onMetaData
// script tag, whose payload is replaced with metadata re-encoded as AMF0.
// Every other tag, including the header and any header bytes beyond the
// canonical 9, is copied byte-for-byte. Fails with ErrMetadataNotFound if
// the walk exhausts the tag stream without observing an onMetaData tag.
func RewriteMetadata(data []byte, metadata map[string]amf0.Value) ([]byte, error) {
	r := binaryio.NewReader(data)
	header, err := parseHeader(r)
	if err != nil {
		return nil, err
	}

	w := binaryio.NewWriter(len(data))
	w.WriteBytes(data[:HeaderSize])

	if header.HeaderSize > HeaderSize {
		extra, err := r.ReadBytes(int(header.HeaderSize) - HeaderSize)
		if err != nil {
			return nil, ErrDataTooShort
		}
		w.WriteBytes(extra)
	}

	pts0, err := r.ReadBytes(4)
	if err != nil {
		return nil, ErrDataTooShort
	}
	w.WriteBytes(pts0)

	found := false
	for {
		if r.Remaining() < TagHeaderSize {
			break
		}
		headerBytes, err := r.Peek(TagHeaderSize)
		if err != nil {
			break
		}
		raw := decodeTagHeader(headerBytes)

		blockSize := TagHeaderSize + int(raw.dataSize) + 4
		if r.Remaining() < blockSize {
			break
		}

		if !found && raw.tagType == TagScript {
			payloadStart := r.Offset() + TagHeaderSize
			payload := data[payloadStart : payloadStart+int(raw.dataSize)]
			sd := codecdetail.DecodeScript(payload)
			if sd.Name == "onMetaData" {
				found = true
				writeMetadataTag(w, metadata)
				if err := r.Advance(blockSize); err != nil {
					break
				}
				continue
			}
		}

		block, err := r.ReadBytes(blockSize)
		if err != nil {
			break
		}
		w.WriteBytes(block)
	}

	if !found {
		return nil, ErrMetadataNotFound
	}
	return w.Bytes(), nil
}

// writeMetadataTag synthesizes a replacement script tag carrying metadata
// as onMetaData. The 11-byte header is written in the canonical 3+1+3
// layout (data size, timestamp-low, timestamp-high, stream id) rather than
// the ambiguous 4-byte-timestamp layout some encoders use, so the tag
// round-trips correctly even for a nonzero timestamp; here the timestamp is
// always 0.
func writeMetadataTag(w *binaryio.Writer, metadata map[string]amf0.Value) {
	payload := binaryio.NewWriter(64)
	amf0.EncodeOnMetaData(payload, metadata, sortedKeys(metadata))
	payloadBytes := payload.Bytes()

	encodeTagHeader(w, TagScript, uint32(len(payloadBytes)), 0, 0)
	w.WriteBytes(payloadBytes)
	w.WriteUint32(uint32(TagHeaderSize + len(payloadBytes)))
}

// sortedKeys gives a deterministic key order for the caller-supplied
// metadata map, since Go map iteration order is randomized.
func sortedKeys(m map[string]amf0.Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
