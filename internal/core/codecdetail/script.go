package codecdetail

import (
	"flvkit/internal/core/amf0"
	"flvkit/internal/core/binaryio"
)

// ScriptDetails are the decoded fields of a script (AMF0) tag payload.
type ScriptDetails struct {
	Name  string
	Value amf0.Value
}

// parseErrorDetails is the sentinel returned when a script tag's payload
// fails to decode as two AMF0 values.
func parseErrorDetails(diagnostic string) ScriptDetails {
	return ScriptDetails{Name: "Parse Error", Value: diagnostic}
}

// DecodeScript decodes a script tag payload as two AMF0 values: the first
// coerced to a string name, the second retained as-is. Any decode failure
// collapses to the "Parse Error" sentinel.
func DecodeScript(payload []byte) ScriptDetails {
	r := binaryio.NewReader(payload)

	nameVal, err := amf0.Decode(r)
	if err != nil {
		return parseErrorDetails(err.Error())
	}
	name, ok := nameVal.(string)
	if !ok {
		return parseErrorDetails("script tag name is not a string")
	}

	value, err := amf0.Decode(r)
	if err != nil {
		return parseErrorDetails(err.Error())
	}

	return ScriptDetails{Name: name, Value: value}
}
