package commands

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/crypto/argon2"
	"golang.org/x/term"

	"github.com/idelchi/goseal/internal/fileutil"
	"github.com/idelchi/goseal/internal/keys"
)

// Argon2id parameters for passphrase-derived secrets.
const (
	argonTime    = 3
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 2
	argonSalt    = 16
)

// NewGenerateCommand creates the cobra command for the generate subcommand.
// It emits a fresh random secret, or derives one from a passphrase read
// without echo from the terminal.
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a new shared secret",
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return viper.BindPFlags(cmd.Flags())
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			var (
				secret []byte
				err    error
			)

			if viper.GetBool("passphrase") {
				secret, err = secretFromPassphrase()
			} else {
				secret = make([]byte, keys.CipherKeySize)
				_, err = rand.Read(secret)
			}

			if err != nil {
				return fmt.Errorf("generating secret: %w", err)
			}

			encoded := hex.EncodeToString(secret)

			if out := viper.GetString("out"); out != "" {
				const ownerReadWrite = 0o600

				return fileutil.WriteFileAtomic(out, []byte(encoded+"\n"), ownerReadWrite)
			}

			fmt.Println(encoded)

			return nil
		},
	}

	cmd.Flags().BoolP("passphrase", "p", false, "Derive the secret from an interactively read passphrase")
	cmd.Flags().String("out", "", "Write the secret to a file instead of stdout")

	return cmd
}

// secretFromPassphrase prompts twice on the terminal and stretches the
// passphrase with Argon2id under a fresh random salt. The salt is not kept:
// the derived bytes themselves become the shared secret, so nothing needs to
// be re-derivable later.
func secretFromPassphrase() ([]byte, error) {
	first, err := promptPassphrase("Passphrase: ")
	if err != nil {
		return nil, err
	}

	second, err := promptPassphrase("Repeat passphrase: ")
	if err != nil {
		return nil, err
	}

	if !bytes.Equal(first, second) {
		return nil, errors.New("passphrases do not match")
	}

	if len(first) == 0 {
		return nil, errors.New("empty passphrase")
	}

	salt := make([]byte, argonSalt)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}

	return argon2.IDKey(first, salt, argonTime, argonMemory, argonThreads, keys.CipherKeySize), nil
}

func promptPassphrase(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)

	passphrase, err := term.ReadPassword(int(os.Stdin.Fd()))

	fmt.Fprintln(os.Stderr)

	if err != nil {
		return nil, fmt.Errorf("reading passphrase: %w", err)
	}

	return passphrase, nil
}
