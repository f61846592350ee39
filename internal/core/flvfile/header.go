package flvfile

import "flvkit/internal/core/binaryio"

// HeaderSize is the canonical length of the FLV file header.
const HeaderSize = 9

// Header is the decoded 9-byte FLV file header.
type Header struct {
	Version    uint8
	HasAudio   bool
	HasVideo   bool
	HeaderSize uint32
}

// parseHeader reads and validates the FLV signature, then decodes version,
// flags, and declared header size. It fails with ErrInvalidSignature if the
// first three bytes are not 'F', 'L', 'V', or ErrDataTooShort if the buffer
// is shorter than the 9-byte header.
func parseHeader(r *binaryio.Reader) (Header, error) {
	sig, err := r.ReadBytes(3)
	if err != nil {
		return Header{}, ErrDataTooShort
	}
	if sig[0] != 'F' || sig[1] != 'L' || sig[2] != 'V' {
		return Header{}, ErrInvalidSignature
	}

	version, err := r.ReadUint8()
	if err != nil {
		return Header{}, ErrDataTooShort
	}

	flags, err := r.ReadUint8()
	if err != nil {
		return Header{}, ErrDataTooShort
	}

	headerSize, err := r.ReadUint32()
	if err != nil {
		return Header{}, ErrDataTooShort
	}

	return Header{
		Version:    version,
		HasAudio:   flags&0x04 != 0,
		HasVideo:   flags&0x01 != 0,
		HeaderSize: headerSize,
	}, nil
}

// NewHeaderBytes encodes a 9-byte FLV header for the given audio/video
// presence flags, with the declared header size set to the canonical 9.
func NewHeaderBytes(hasAudio, hasVideo bool) []byte {
	w := binaryio.NewWriter(HeaderSize)
	w.WriteBytes([]byte("FLV"))
	w.WriteUint8(1)
	flags := uint8(0)
	if hasAudio {
		flags |= 0x04
	}
	if hasVideo {
		flags |= 0x01
	}
	w.WriteUint8(flags)
	w.WriteUint32(HeaderSize)
	return w.Bytes()
}
