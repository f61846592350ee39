package flvfile

import (
	"flvkit/internal/core/amf0"
	"flvkit/internal/core/binaryio"
)

// buildTag encodes one complete tag block: 11-byte header, payload, and
// trailing 4-byte PreviousTagSize back-pointer.
func buildTag(tagType TagType, timestamp, streamID uint32, payload []byte) []byte {
	w := binaryio.NewWriter(TagHeaderSize + len(payload) + 4)
	encodeTagHeader(w, tagType, uint32(len(payload)), timestamp, streamID)
	w.WriteBytes(payload)
	w.WriteUint32(uint32(TagHeaderSize + len(payload)))
	return w.Bytes()
}

// buildOnMetaDataPayload AMF0-encodes a script tag payload naming
// onMetaData with the given metadata map.
func buildOnMetaDataPayload(meta map[string]amf0.Value, keys []string) []byte {
	w := binaryio.NewWriter(64)
	amf0.EncodeOnMetaData(w, meta, keys)
	return w.Bytes()
}

// buildFLV assembles a full FLV buffer: 9-byte header, 4-byte
// PreviousTagSize0, then each tag block concatenated in order.
func buildFLV(hasAudio, hasVideo bool, tags ...[]byte) []byte {
	buf := append([]byte{}, NewHeaderBytes(hasAudio, hasVideo)...)
	buf = append(buf, 0, 0, 0, 0) // PreviousTagSize0
	for _, t := range tags {
		buf = append(buf, t...)
	}
	return buf
}
