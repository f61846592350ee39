package flvfile

import (
	"bytes"
	"errors"
	"testing"
)

func TestRepairPreservation(t *testing.T) {
	data := buildFLV(true, true,
		buildTag(TagAudio, 0, 0, []byte{0xAF, 0x01, 0x02}),
		buildTag(TagVideo, 33, 0, []byte{0x17, 0x01, 0x00, 0x00, 0x00}),
	)

	repaired, err := Repair(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(repaired, data) {
		t.Fatalf("repair of an intact file changed its bytes")
	}
}

func TestRepairIdempotence(t *testing.T) {
	data := buildFLV(true, true,
		buildTag(TagAudio, 0, 0, []byte{0xAF, 0x01, 0x02}),
		buildTag(TagVideo, 33, 0, []byte{0x17, 0x01, 0x00, 0x00, 0x00}),
	)
	data = append(data, 0x01, 0x02, 0x03) // trailing fragment

	once, err := Repair(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := Repair(once)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(once, twice) {
		t.Fatalf("repair(repair(B)) != repair(B)")
	}
}

func TestRepairTruncatedTailDropsFragment(t *testing.T) {
	full := buildFLV(true, true,
		buildTag(TagAudio, 0, 0, []byte{0xAF, 0x01, 0x02}),
		buildTag(TagVideo, 33, 0, []byte{0x17, 0x01, 0x00, 0x00, 0x00}),
	)
	truncated := append([]byte{}, full...)
	truncated = append(truncated, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07)

	repaired, err := Repair(truncated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(repaired, full) {
		t.Fatalf("repaired bytes don't match the last-complete-tag prefix")
	}

	fOrig, err := Parse(truncated, "orig")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fRepaired, err := Parse(repaired, "repaired")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fOrig.Tags) != len(fRepaired.Tags) {
		t.Fatalf("tag count mismatch: %d vs %d", len(fOrig.Tags), len(fRepaired.Tags))
	}
}

func TestRepairTooShortFails(t *testing.T) {
	_, err := Repair([]byte{'F', 'L', 'V'})
	if !errors.Is(err, ErrDataTooShort) {
		t.Fatalf("err = %v, want ErrDataTooShort", err)
	}
}
