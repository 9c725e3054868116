package keys_test

import (
	"bytes"
	"encoding/hex"
	"os"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/idelchi/goseal/internal/keys"
)

// Case is a single derivation vector from the YAML golden file.
type Case struct {
	Description string `yaml:"description,omitempty"`
	Policy      string `yaml:"policy"`
	Secret      string `yaml:"secret"`
	Cipher      string `yaml:"cipher"`
	MAC         string `yaml:"mac"`
	IV          string `yaml:"iv,omitempty"`
}

// Group is a named collection of vectors.
type Group struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Cases       []Case `yaml:"cases"`
}

func loadVectors(t *testing.T) []Group {
	t.Helper()

	data, err := os.ReadFile("testdata/derive.yml")
	if err != nil {
		t.Fatalf("reading testdata: %v", err)
	}

	var groups []Group
	if err := yaml.Unmarshal(data, &groups); err != nil {
		t.Fatalf("parsing testdata: %v", err)
	}

	if len(groups) == 0 {
		t.Fatal("no vector groups found")
	}

	return groups
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("decoding hex %q: %v", s, err)
	}

	return b
}

func derive(t *testing.T, policy string, secret []byte) keys.Material {
	t.Helper()

	switch policy {
	case "deterministic":
		return keys.Deterministic(secret)
	case "randomized":
		return keys.Randomized(secret)
	default:
		t.Fatalf("unknown policy %q", policy)

		return keys.Material{}
	}
}

func TestDeriveVectors(t *testing.T) {
	t.Parallel()

	for _, group := range loadVectors(t) {
		group := group

		t.Run(group.Name, func(t *testing.T) {
			t.Parallel()

			for _, tc := range group.Cases {
				tc := tc

				t.Run(tc.Description, func(t *testing.T) {
					t.Parallel()

					material := derive(t, tc.Policy, []byte(tc.Secret))

					if got, want := material.Cipher, mustHex(t, tc.Cipher); !bytes.Equal(got, want) {
						t.Errorf("cipher key = %x, want %x", got, want)
					}

					if got, want := material.MAC, mustHex(t, tc.MAC); !bytes.Equal(got, want) {
						t.Errorf("mac key = %x, want %x", got, want)
					}

					if tc.IV == "" {
						if material.HasFixedIV() {
							t.Errorf("unexpected fixed IV %x", material.FixedIV)
						}

						return
					}

					if !material.HasFixedIV() {
						t.Fatal("expected a fixed IV")
					}

					if got, want := material.FixedIV, mustHex(t, tc.IV); !bytes.Equal(got, want) {
						t.Errorf("fixed IV = %x, want %x", got, want)
					}
				})
			}
		})
	}
}

func TestDeriveSizes(t *testing.T) {
	t.Parallel()

	secrets := [][]byte{nil, []byte("x"), bytes.Repeat([]byte("long"), 100)}

	for _, secret := range secrets {
		for _, material := range []keys.Material{keys.Randomized(secret), keys.Deterministic(secret)} {
			if len(material.Cipher) != keys.CipherKeySize {
				t.Errorf("cipher key size = %d, want %d", len(material.Cipher), keys.CipherKeySize)
			}

			if len(material.MAC) == 0 {
				t.Error("mac key is empty")
			}
		}
	}
}

func TestDeriveDeterminism(t *testing.T) {
	t.Parallel()

	secret := []byte("some shared secret")

	first := keys.Deterministic(secret)
	second := keys.Deterministic(secret)

	if !bytes.Equal(first.Cipher, second.Cipher) || !bytes.Equal(first.FixedIV, second.FixedIV) {
		t.Error("deterministic derivation is not stable")
	}

	if bytes.Equal(keys.Deterministic([]byte("a")).Cipher, keys.Deterministic([]byte("b")).Cipher) {
		t.Error("different secrets derived the same key")
	}
}
