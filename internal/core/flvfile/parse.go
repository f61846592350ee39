// Package flvfile implements the FLV tag engine: header parsing, the
// two-pass tag walk, timestamp-gap analysis, verbatim repair, and
// metadata-replacing rewrite.
package flvfile

import (
	"flvkit/internal/core/amf0"
	"flvkit/internal/core/binaryio"
	"flvkit/internal/core/codecdetail"
)

// File is the top-level aggregate returned by Parse. It is immutable after
// parse except for per-tag Analysis annotations, which AnalyzeTimestamps
// sets exactly once.
type File struct {
	Source   string
	Header   Header
	Metadata *amf0.Object
	Tags     []*Tag
}

// Parse decodes the 9-byte FLV header, locates onMetaData (pass 1), then
// walks the full tag stream decoding every tag (pass 2), running timestamp
// analysis over the resulting video tags before returning.
func Parse(data []byte, source string) (*File, error) {
	r := binaryio.NewReader(data)
	header, err := parseHeader(r)
	if err != nil {
		return nil, err
	}

	meta := locateMetadata(data, header.HeaderSize)
	tags := parseTags(data, header.HeaderSize, meta)
	AnalyzeTimestamps(tags, meta)

	return &File{
		Source:   source,
		Header:   header,
		Metadata: meta,
		Tags:     tags,
	}, nil
}

// locateMetadata runs pass 1: it scans tags starting at headerSize+4 (past
// PreviousTagSize0) until it finds a script tag named onMetaData whose
// value is a map, then stops. Truncation or an exhausted tag stream both
// yield a nil metadata map.
func locateMetadata(data []byte, headerSize uint32) *amf0.Object {
	r := binaryio.NewReader(data)
	r.Seek(int(headerSize) + 4)

	for {
		if r.Remaining() < TagHeaderSize {
			return nil
		}
		headerBytes, err := r.Peek(TagHeaderSize)
		if err != nil {
			return nil
		}
		raw := decodeTagHeader(headerBytes)
		if err := r.Advance(TagHeaderSize); err != nil {
			return nil
		}

		need := int(raw.dataSize) + 4
		if r.Remaining() < need {
			return nil
		}

		if raw.tagType == TagScript {
			payload, _ := r.ReadBytes(int(raw.dataSize))
			sd := codecdetail.DecodeScript(payload)
			_ = r.Advance(4)
			if sd.Name == "onMetaData" {
				if obj, ok := sd.Value.(*amf0.Object); ok {
					return obj
				}
			}
			continue
		}

		if err := r.Advance(need); err != nil {
			return nil
		}
	}
}

// parseTags runs pass 2: a full walk of the tag stream, constructing every
// fully-present tag with its decoded details. meta supplies the audio
// fallback chain (audiosamplerate/stereo).
func parseTags(data []byte, headerSize uint32, meta *amf0.Object) []*Tag {
	var tags []*Tag

	r := binaryio.NewReader(data)
	r.Seek(int(headerSize) + 4)

	for {
		offset := r.Offset()
		if r.Remaining() < TagHeaderSize+4 {
			break
		}
		headerBytes, err := r.ReadBytes(TagHeaderSize)
		if err != nil {
			break
		}
		raw := decodeTagHeader(headerBytes)

		need := int(raw.dataSize) + 4
		if r.Remaining() < need {
			break
		}
		payload, err := r.ReadBytes(int(raw.dataSize))
		if err != nil {
			break
		}
		if err := r.Advance(4); err != nil {
			break
		}

		tag := &Tag{
			Offset:    offset,
			Type:      raw.tagType,
			DataSize:  raw.dataSize,
			Timestamp: raw.timestamp,
			StreamID:  raw.streamID,
		}

		switch raw.tagType {
		case TagAudio:
			tag.Details = codecdetail.DecodeAudio(payload, meta)
		case TagVideo:
			tag.Details = codecdetail.DecodeVideo(payload)
		case TagScript:
			tag.Details = codecdetail.DecodeScript(payload)
		}

		tags = append(tags, tag)
	}

	return tags
}
