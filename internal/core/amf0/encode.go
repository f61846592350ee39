package amf0

import (
	"sort"

	"flvkit/internal/core/binaryio"
)

// EncodeOnMetaData writes the canonical script-data payload: the bare
// string "onMetaData" followed by meta re-serialized as an ECMA array.
// Keys are written in the order given by keys, so callers control
// determinism; callers that don't care can pass Object.Keys().
func EncodeOnMetaData(w *binaryio.Writer, meta map[string]Value, keys []string) {
	encodeString(w, "onMetaData")
	encodeECMAArray(w, meta, keys)
}

// Encode writes a single dynamic value. Kinds outside the supported set
// (anything other than bool, float64/int-ish numbers, string, and nested
// maps) are silently omitted by the caller before this is reached; Encode
// itself treats unrecognized Go types as a no-op so the container stays
// well-formed.
func Encode(w *binaryio.Writer, v Value) {
	switch val := v.(type) {
	case bool:
		encodeBoolean(w, val)
	case float64:
		encodeNumber(w, val)
	case int:
		encodeNumber(w, float64(val))
	case string:
		encodeString(w, val)
	case map[string]Value:
		encodeECMAArray(w, val, sortedKeys(val))
	case *Object:
		encodeECMAArray(w, val.entries, val.Keys())
	}
}

func encodeNumber(w *binaryio.Writer, v float64) {
	w.WriteUint8(markerNumber)
	w.WriteDouble(v)
}

func encodeBoolean(w *binaryio.Writer, v bool) {
	w.WriteUint8(markerBoolean)
	if v {
		w.WriteUint8(1)
	} else {
		w.WriteUint8(0)
	}
}

func encodeString(w *binaryio.Writer, s string) {
	w.WriteUint8(markerString)
	w.WriteUint16(uint16(len(s)))
	w.WriteBytes([]byte(s))
}

func encodeECMAArray(w *binaryio.Writer, m map[string]Value, keys []string) {
	// Only entries with an encodable value are counted and written; absent
	// keys and unsupported kinds are dropped so the count stays accurate.
	written := make([]string, 0, len(keys))
	for _, k := range keys {
		switch m[k].(type) {
		case bool, float64, int, string, map[string]Value, *Object:
			written = append(written, k)
		}
	}
	w.WriteUint8(markerECMAArray)
	w.WriteUint32(uint32(len(written)))
	for _, k := range written {
		w.WriteUint16(uint16(len(k)))
		w.WriteBytes([]byte(k))
		Encode(w, m[k])
	}
	w.WriteBytes([]byte(ecmaArrayEnd))
}

// sortedKeys gives a deterministic key order for a plain map[string]Value,
// since Go map iteration order is randomized and the rewrite-round-trip
// property only requires a *deterministic* order, not the original one.
func sortedKeys(m map[string]Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
