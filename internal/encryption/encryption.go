package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/idelchi/goseal/internal/keys"
)

// Seal encrypts plaintext under the given key material and authenticates the
// result, returning the envelope payload and its tag.
//
// Under the randomized policy (no fixed IV) a fresh IV is generated, the
// payload is iv || ciphertext, and the tag covers the whole payload. Under
// the deterministic policy the fixed IV is used, the payload is the
// ciphertext alone, and the tag covers it; the IV is recomputable from the
// key on the other side.
func Seal(plaintext []byte, material keys.Material) (payload, tag []byte, err error) {
	block, err := aes.NewCipher(material.Cipher)
	if err != nil {
		return nil, nil, fmt.Errorf("creating cipher: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))

	if material.HasFixedIV() {
		cipher.NewCBCEncrypter(block, material.FixedIV).CryptBlocks(ciphertext, padded)

		payload = ciphertext
	} else {
		iv := make([]byte, aes.BlockSize)
		if _, err := io.ReadFull(rand.Reader, iv); err != nil {
			return nil, nil, fmt.Errorf("generating IV: %w", err)
		}

		cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

		// Prepend IV so decryption can recover it.
		payload = append(iv, ciphertext...)
	}

	mac := hmac.New(sha256.New, material.MAC)
	mac.Write(payload)

	return payload, mac.Sum(nil), nil
}

// Open verifies the tag over the payload exactly as stored and, only on
// success, decrypts it. A corrupted or forged envelope is never decrypted:
// the constant-time tag comparison happens before any inspection of the
// payload contents.
func Open(payload, tag []byte, material keys.Material) ([]byte, error) {
	mac := hmac.New(sha256.New, material.MAC)
	mac.Write(payload)

	if !hmac.Equal(mac.Sum(nil), tag) {
		return nil, ErrVerification
	}

	var iv, ciphertext []byte

	if material.HasFixedIV() {
		iv = material.FixedIV
		ciphertext = payload
	} else {
		if len(payload) < aes.BlockSize {
			return nil, fmt.Errorf("%w: payload too short for IV", ErrFormat)
		}

		iv = payload[:aes.BlockSize]
		ciphertext = payload[aes.BlockSize:]
	}

	if len(ciphertext) < aes.BlockSize {
		return nil, fmt.Errorf("%w: ciphertext shorter than one block", ErrFormat)
	}

	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: %w", ErrFormat, ErrInvalidBlockSize)
	}

	block, err := aes.NewCipher(material.Cipher)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext)
	if err != nil {
		return nil, fmt.Errorf("removing padding: %w", err)
	}

	return unpadded, nil
}
