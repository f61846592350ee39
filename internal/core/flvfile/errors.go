package flvfile

import "errors"

// Terminal errors for the three top-level engine operations. Each is
// surfaced to the host with a human-readable message; none is retried.
var (
	// ErrInvalidSignature means the first three bytes of the buffer were
	// not 'F', 'L', 'V'.
	ErrInvalidSignature = errors.New("flvfile: invalid FLV signature")

	// ErrDataTooShort means a bounds-checked read would have exceeded the
	// buffer on a required field.
	ErrDataTooShort = errors.New("flvfile: data too short")

	// ErrMetadataNotFound means RewriteMetadata walked the entire tag
	// stream without finding an onMetaData script tag to replace.
	ErrMetadataNotFound = errors.New("flvfile: no onMetaData tag found")
)
