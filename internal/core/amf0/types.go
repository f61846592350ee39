// Package amf0 implements the subset of Action Message Format version 0
// the FLV engine needs: numbers, booleans, strings, and ECMA arrays, decoded
// into a dynamic value tree and re-encoded from a metadata map.
package amf0

import "fmt"

// AMF0 type markers this codec recognizes on decode. Markers outside this
// set are consumed as an opaque placeholder; see Decode.
const (
	markerNumber    = 0x00
	markerBoolean   = 0x01
	markerString    = 0x02
	markerECMAArray = 0x08
	ecmaArrayEnd    = "\x00\x00\x09"
)

// Value is the dynamic AMF0 value tree: a number, a boolean, a string, or
// an ordered map of string to Value. Decoding an unsupported marker yields
// an Unsupported value instead of failing.
type Value interface{}

// Object is an AMF0 ECMA array decoded as an ordered string-keyed map.
// Go maps don't preserve insertion order; callers that need the original
// order should use Object.Keys (set on decode) rather than range.
type Object struct {
	entries map[string]Value
	order   []string
}

// NewObject returns an empty Object ready for Set.
func NewObject() *Object {
	return &Object{entries: make(map[string]Value)}
}

// Set stores a key/value pair, recording first-seen insertion order.
func (o *Object) Set(key string, v Value) {
	if o.entries == nil {
		o.entries = make(map[string]Value)
	}
	if _, exists := o.entries[key]; !exists {
		o.order = append(o.order, key)
	}
	o.entries[key] = v
}

// Get returns the value for key and whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.entries[key]
	return v, ok
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.entries)
}

// Keys returns keys in the order they were first set.
func (o *Object) Keys() []string {
	return o.order
}

// Unsupported is the placeholder value produced for an AMF0 marker this
// codec does not decode (AMF3, strict arrays, typed objects, XML, dates,
// long strings, references, ...).
type Unsupported struct {
	Marker byte
}

// String renders the diagnostic placeholder text.
func (u Unsupported) String() string {
	return fmt.Sprintf("Unsupported AMF Type: %d", u.Marker)
}
