package encryption

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// TagSize is the HMAC-SHA256 tag size in bytes.
const TagSize = sha256.Size

// EncodeEnvelope serializes raw envelope or tag bytes to the persisted form,
// standard base64 text.
func EncodeEnvelope(raw []byte) []byte {
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(raw)))
	base64.StdEncoding.Encode(encoded, raw)

	return encoded
}

// DecodeEnvelope reverses EncodeEnvelope, tolerating surrounding whitespace
// as written by editors and shells.
func DecodeEnvelope(text []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(text)

	raw := make([]byte, base64.StdEncoding.DecodedLen(len(trimmed)))

	n, err := base64.StdEncoding.Decode(raw, trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	return raw[:n], nil
}

// DecodeTag decodes a persisted authentication tag and checks its size.
func DecodeTag(text []byte) ([]byte, error) {
	tag, err := DecodeEnvelope(text)
	if err != nil {
		return nil, err
	}

	if len(tag) != TagSize {
		return nil, fmt.Errorf("%w: tag is %d bytes, want %d", ErrFormat, len(tag), TagSize)
	}

	return tag, nil
}
