package amf0

import "flvkit/internal/core/binaryio"

// Decode reads one AMF0 value from r: a one-byte type marker followed by
// its payload. An unrecognized marker consumes nothing further and returns
// an Unsupported placeholder, per the wire table in the FLV metadata spec.
func Decode(r *binaryio.Reader) (Value, error) {
	marker, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}

	switch marker {
	case markerNumber:
		return r.ReadDouble()
	case markerBoolean:
		b, err := r.ReadUint8()
		if err != nil {
			return nil, err
		}
		return b != 0, nil
	case markerString:
		return decodeString(r)
	case markerECMAArray:
		return decodeECMAArray(r)
	default:
		return Unsupported{Marker: marker}, nil
	}
}

func decodeString(r *binaryio.Reader) (string, error) {
	length, err := r.ReadUint16()
	if err != nil {
		return "", err
	}
	return r.ReadString(int(length))
}

// decodeECMAArray reads a 4-byte count, then exactly that many key/value
// pairs, then skips the next 3 bytes as the terminator without checking
// that they are 0x00 0x00 0x09. The caller has already consumed the marker.
func decodeECMAArray(r *binaryio.Reader) (*Object, error) {
	count, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}

	obj := NewObject()
	for i := uint32(0); i < count; i++ {
		keyLen, err := r.ReadUint16()
		if err != nil {
			return nil, err
		}
		key, err := r.ReadString(int(keyLen))
		if err != nil {
			return nil, err
		}
		val, err := Decode(r)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
	}

	if err := r.Advance(3); err != nil {
		return nil, err
	}
	return obj, nil
}
