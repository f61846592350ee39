package amf0

// ToGoValue recursively converts a decoded Value into plain Go types
// (map[string]interface{}, float64, bool, string) suitable for JSON
// encoding. Unsupported placeholders render as their diagnostic string.
func ToGoValue(v Value) interface{} {
	switch val := v.(type) {
	case *Object:
		m := make(map[string]interface{}, val.Len())
		for _, k := range val.Keys() {
			vv, _ := val.Get(k)
			m[k] = ToGoValue(vv)
		}
		return m
	case Unsupported:
		return val.String()
	default:
		return val
	}
}
