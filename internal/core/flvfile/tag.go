package flvfile

import "flvkit/internal/core/binaryio"

// TagHeaderSize is the fixed length of an FLV tag header (type, size,
// timestamp, stream id), not counting the payload or back-pointer.
const TagHeaderSize = 11

// TagType identifies the kind of payload a tag carries.
type TagType int

// Recognized FLV tag types.
const (
	TagAudio   TagType = 8
	TagVideo   TagType = 9
	TagScript  TagType = 18
	TagUnknown TagType = -1
)

// String renders the tag type the way the host API reports it.
func (t TagType) String() string {
	switch t {
	case TagAudio:
		return "audio"
	case TagVideo:
		return "video"
	case TagScript:
		return "script"
	default:
		return "unknown"
	}
}

// rawTagHeader is the decoded 11-byte tag header, before payload details
// are derived.
type rawTagHeader struct {
	tagType   TagType
	dataSize  uint32
	timestamp uint32
	streamID  uint32
}

// Tag is one parsed FLV tag: its position in the source buffer, its framing
// fields, and its decoded payload details. Analysis is populated only for
// video tags, and only when a timestamp discontinuity was flagged.
type Tag struct {
	Offset    int
	Type      TagType
	DataSize  uint32
	Timestamp uint32
	StreamID  uint32
	Details   interface{} // codecdetail.AudioDetails / VideoDetails / ScriptDetails, or nil for TagUnknown
	Analysis  string
}

// decodeTagHeader reads the fixed 11-byte tag header without consuming
// payload or back-pointer bytes. Timestamp assembly follows the FLV wire
// layout: bytes 4..6 are the low 24 bits, byte 7 is the high 8 bits.
func decodeTagHeader(header []byte) rawTagHeader {
	typeByte := header[0] & 0x1F
	dataSize := uint32(header[1])<<16 | uint32(header[2])<<8 | uint32(header[3])
	low := uint32(header[4])<<16 | uint32(header[5])<<8 | uint32(header[6])
	high := uint32(header[7])
	streamID := uint32(header[8])<<16 | uint32(header[9])<<8 | uint32(header[10])

	tagType := TagUnknown
	switch TagType(typeByte) {
	case TagAudio, TagVideo, TagScript:
		tagType = TagType(typeByte)
	}

	return rawTagHeader{
		tagType:   tagType,
		dataSize:  dataSize,
		timestamp: low | high<<24,
		streamID:  streamID,
	}
}

// encodeTagHeader writes the 11-byte tag header for a synthesized tag
// (used when rewriting the script tag). The timestamp is written in the
// canonical 3-low/1-high layout so it round-trips through decodeTagHeader.
func encodeTagHeader(w *binaryio.Writer, tagType TagType, dataSize, timestamp, streamID uint32) {
	w.WriteUint8(uint8(tagType))
	w.WriteUint24(dataSize)
	w.WriteUint24(timestamp & 0x00FFFFFF)
	w.WriteUint8(uint8(timestamp >> 24))
	w.WriteUint24(streamID)
}
