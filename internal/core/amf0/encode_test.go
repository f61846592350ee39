package amf0

import (
	"testing"

	"flvkit/internal/core/binaryio"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	meta := map[string]Value{
		"duration":  12.5,
		"framerate": 30.0,
		"stereo":    true,
		"encoder":   "flvkit",
	}

	w := binaryio.NewWriter(128)
	keys := sortedKeys(meta)
	EncodeOnMetaData(w, meta, keys)

	r := binaryio.NewReader(w.Bytes())
	name, err := Decode(r)
	if err != nil || name.(string) != "onMetaData" {
		t.Fatalf("name = %v, %v", name, err)
	}
	val, err := Decode(r)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	obj := val.(*Object)
	for k, want := range meta {
		got, ok := obj.Get(k)
		if !ok {
			t.Fatalf("missing key %q", k)
		}
		if got != want {
			t.Fatalf("key %q: got %v, want %v", k, got, want)
		}
	}
	if obj.Len() != len(meta) {
		t.Fatalf("got %d entries, want %d", obj.Len(), len(meta))
	}
}

func TestEncodeNestedObject(t *testing.T) {
	nested := map[string]Value{"width": 1920.0, "height": 1080.0}
	meta := map[string]Value{"dims": nested}

	w := binaryio.NewWriter(128)
	EncodeOnMetaData(w, meta, []string{"dims"})

	r := binaryio.NewReader(w.Bytes())
	Decode(r) // name
	val, err := Decode(r)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	outer := val.(*Object)
	inner, ok := outer.Get("dims")
	if !ok {
		t.Fatal("missing dims")
	}
	innerObj := inner.(*Object)
	if w, _ := innerObj.Get("width"); w.(float64) != 1920.0 {
		t.Fatalf("width = %v", w)
	}
}

func TestEncodeUnsupportedKindOmitted(t *testing.T) {
	w := binaryio.NewWriter(32)
	// A channel has no AMF0 representation; Encode must emit nothing for it
	// rather than corrupt the stream.
	Encode(w, make(chan int))
	if w.Len() != 0 {
		t.Fatalf("expected no bytes written for unsupported kind, got %d", w.Len())
	}
}
