// Package logic implements the core flow of a single encrypt or decrypt
// invocation: read the secret, derive key material once, apply the
// authenticated cipher, and persist the resulting artifacts.
package logic

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/goseal/internal/config"
	"github.com/idelchi/goseal/internal/encryption"
	"github.com/idelchi/goseal/internal/fileutil"
	"github.com/idelchi/goseal/internal/keys"
)

var (
	// ErrKey marks a shared-secret source that could not be read.
	ErrKey = errors.New("reading key file")
	// ErrIO marks an unreadable input or unwritable output.
	ErrIO = errors.New("file i/o")
)

const ownerReadWrite = 0o600

// Run executes one encrypt or decrypt operation as configured. Outputs are
// written only after every preceding step, including verification on
// decrypt, has succeeded.
func Run(cfg *config.Config) error {
	start := time.Now()

	secret, err := os.ReadFile(cfg.Key)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrKey, err)
	}

	var material keys.Material
	if cfg.Deterministic {
		material = keys.Deterministic(secret)
	} else {
		material = keys.Randomized(secret)
	}

	input, err := os.ReadFile(cfg.In)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	var written int64

	if cfg.Decrypt {
		written, err = decrypt(input, material, cfg)
	} else {
		written, err = encrypt(input, material, cfg)
	}

	if err != nil {
		return err
	}

	if cfg.Stats {
		printStats(int64(len(input)), written, time.Since(start))
	}

	return nil
}

// encrypt seals the plaintext and persists the envelope and tag files.
func encrypt(plaintext []byte, material keys.Material, cfg *config.Config) (int64, error) {
	payload, tag, err := encryption.Seal(plaintext, material)
	if err != nil {
		return 0, fmt.Errorf("encrypting: %w", err)
	}

	envelope := encryption.EncodeEnvelope(payload)

	if err := fileutil.WriteFileAtomic(cfg.Out, envelope, ownerReadWrite); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrIO, err)
	}

	if err := fileutil.WriteFileAtomic(cfg.Tag, encryption.EncodeEnvelope(tag), ownerReadWrite); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrIO, err)
	}

	return int64(len(envelope)), nil
}

// decrypt verifies the stored envelope against the stored tag and, only on
// success, decrypts and persists the plaintext.
func decrypt(envelope []byte, material keys.Material, cfg *config.Config) (int64, error) {
	payload, err := encryption.DecodeEnvelope(envelope)
	if err != nil {
		return 0, fmt.Errorf("decoding envelope: %w", err)
	}

	tagText, err := os.ReadFile(cfg.Tag)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrIO, err)
	}

	tag, err := encryption.DecodeTag(tagText)
	if err != nil {
		return 0, fmt.Errorf("decoding tag: %w", err)
	}

	plaintext, err := encryption.Open(payload, tag, material)
	if err != nil {
		return 0, fmt.Errorf("decrypting: %w", err)
	}

	if err := fileutil.WriteFileAtomic(cfg.Out, plaintext, ownerReadWrite); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrIO, err)
	}

	return int64(len(plaintext)), nil
}

func printStats(read, written int64, duration time.Duration) {
	fmt.Fprintf(os.Stderr, "\nStats\n")
	fmt.Fprintf(os.Stderr, "  Read:     %s\n", humanize.IBytes(uint64(max(0, read))))
	fmt.Fprintf(os.Stderr, "  Written:  %s\n", humanize.IBytes(uint64(max(0, written))))
	fmt.Fprintf(os.Stderr, "  Duration: %s\n", duration.Round(time.Millisecond))
}
