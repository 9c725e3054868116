package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command and attaches the subcommands.
// Usage and error printing are silenced so the caller controls the single
// status line and the exit code.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "goseal command [flags]",
		Short: "Authenticated file encryption utility",
		Long: `An authenticated file encryption utility built on AES-256-CBC and
HMAC-SHA256. Encrypts a file under a shared secret into an
integrity-protected envelope plus a detached tag, and refuses to decrypt
anything whose tag does not verify.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(NewEncryptCommand(), NewDecryptCommand(), NewGenerateCommand())

	return root
}
