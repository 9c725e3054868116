package encryption

import "errors"

var (
	// ErrVerification is returned when the authentication tag does not match
	// the stored envelope. It is the only failure mapped to its own exit code.
	ErrVerification = errors.New("authentication tag mismatch")
	// ErrFormat is returned when a persisted envelope or tag is malformed
	// (bad encoding, wrong size).
	ErrFormat = errors.New("malformed envelope")
	// ErrEmptyData is returned when attempting to unpad empty input data.
	ErrEmptyData = errors.New("empty data")
	// ErrInvalidPadding is returned when PKCS7 padding is malformed.
	ErrInvalidPadding = errors.New("invalid padding")
	// ErrInvalidBlockSize is returned when ciphertext length is not aligned
	// with the AES block size.
	ErrInvalidBlockSize = errors.New("ciphertext is not a multiple of block size")
)
