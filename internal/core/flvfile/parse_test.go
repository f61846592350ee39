package flvfile

import (
	"errors"
	"testing"

	"flvkit/internal/core/amf0"
)

func TestParseMinimalValidFile(t *testing.T) {
	data := []byte{0x46, 0x4C, 0x56, 0x01, 0x05, 0x00, 0x00, 0x00, 0x09, 0x00, 0x00, 0x00, 0x00}
	f, err := Parse(data, "minimal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Header.Version != 1 || !f.Header.HasAudio || !f.Header.HasVideo || f.Header.HeaderSize != 9 {
		t.Fatalf("header = %+v", f.Header)
	}
	if f.Metadata != nil {
		t.Fatalf("metadata = %+v, want nil", f.Metadata)
	}
	if len(f.Tags) != 0 {
		t.Fatalf("tags = %d, want 0", len(f.Tags))
	}
}

func TestParseBadSignature(t *testing.T) {
	data := []byte{0x46, 0x4C, 0x58, 0x01}
	_, err := Parse(data, "bad-sig")
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("err = %v, want ErrInvalidSignature", err)
	}
}

func TestParseSingleOnMetaDataTag(t *testing.T) {
	payload := buildOnMetaDataPayload(map[string]amf0.Value{"framerate": 30.0}, []string{"framerate"})
	data := buildFLV(false, true, buildTag(TagScript, 0, 0, payload))

	f, err := Parse(data, "meta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Tags) != 1 {
		t.Fatalf("tags = %d, want 1", len(f.Tags))
	}
	if f.Metadata == nil {
		t.Fatal("metadata not captured")
	}
	v, ok := f.Metadata.Get("framerate")
	if !ok || v.(float64) != 30.0 {
		t.Fatalf("framerate = %v", v)
	}
}

func TestParseTagOffsetMonotonicity(t *testing.T) {
	data := buildFLV(true, true,
		buildTag(TagAudio, 0, 0, []byte{0xAF, 0x01, 0x02}),
		buildTag(TagVideo, 33, 0, []byte{0x17, 0x01, 0x00, 0x00, 0x00}),
		buildTag(TagAudio, 66, 0, []byte{0xAF, 0x03}),
	)

	f, err := Parse(data, "offsets")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Tags) != 3 {
		t.Fatalf("tags = %d, want 3", len(f.Tags))
	}
	for i := 0; i < len(f.Tags)-1; i++ {
		want := f.Tags[i].Offset + TagHeaderSize + int(f.Tags[i].DataSize) + 4
		if f.Tags[i+1].Offset != want {
			t.Fatalf("tag %d offset = %d, want %d", i+1, f.Tags[i+1].Offset, want)
		}
		if f.Tags[i+1].Offset <= f.Tags[i].Offset {
			t.Fatalf("offsets not strictly increasing at %d", i)
		}
	}
}

func TestParseTruncatedTailDropsPartialTag(t *testing.T) {
	full := buildFLV(true, true,
		buildTag(TagAudio, 0, 0, []byte{0xAF, 0x01, 0x02}),
		buildTag(TagVideo, 33, 0, []byte{0x17, 0x01, 0x00, 0x00, 0x00}),
	)
	truncated := append([]byte{}, full...)
	truncated = append(truncated, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07) // 7 stray bytes

	f, err := Parse(truncated, "truncated")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Tags) != 2 {
		t.Fatalf("tags = %d, want 2 (trailing fragment dropped)", len(f.Tags))
	}
}

func TestParseTruncationSafety(t *testing.T) {
	full := buildFLV(true, true,
		buildTag(TagAudio, 0, 0, []byte{0xAF, 0x01, 0x02}),
		buildTag(TagVideo, 33, 0, []byte{0x17, 0x01, 0x00, 0x00, 0x00}),
	)

	for cut := 1; cut < len(full); cut++ {
		data := full[:cut]
		f, err := Parse(data, "cut")
		if err != nil {
			if !errors.Is(err, ErrInvalidSignature) && !errors.Is(err, ErrDataTooShort) {
				t.Fatalf("cut=%d: unexpected error %v", cut, err)
			}
			continue
		}
		for _, tag := range f.Tags {
			if tag.Offset+TagHeaderSize+int(tag.DataSize)+4 > len(data) {
				t.Fatalf("cut=%d: tag extends past truncated buffer", cut)
			}
		}
	}
}
