package commands

import (
	"errors"
	"strings"

	"github.com/idelchi/goseal/internal/encryption"
)

// NormalizeArgs rewrites single-dash long options (-key, -key=path) to the
// pflag spelling (--key) so the documented invocation grammar parses.
// Single-letter shorthands, double-dashed options and positionals pass
// through untouched.
func NormalizeArgs(args []string) []string {
	normalized := make([]string, 0, len(args))

	for i, arg := range args {
		if arg == "--" {
			return append(normalized, args[i:]...)
		}

		if strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--") {
			name, _, _ := strings.Cut(arg[1:], "=")
			if len(name) > 1 {
				arg = "-" + arg
			}
		}

		normalized = append(normalized, arg)
	}

	return normalized
}

// Exit codes of the tool. Verification failure is deliberately distinct so
// callers can tell a forged or corrupted envelope from an operational error.
const (
	ExitOK           = 0
	ExitVerification = 1
	ExitError        = 2
)

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, encryption.ErrVerification):
		return ExitVerification
	default:
		return ExitError
	}
}
