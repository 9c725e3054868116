// goseal encrypts a file under a shared secret into an integrity-protected
// envelope plus a detached authentication tag, and decrypts such envelopes
// after verifying the tag.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/goseal/internal/commands"
)

// version is injected at build time.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI and maps the outcome to an exit code: 0 success,
// 1 verification failure, 2 any other error. A single status line goes to
// stderr; key material never does.
func run(args []string) int {
	root := commands.NewRootCommand(version)
	root.SetArgs(commands.NormalizeArgs(args))

	err := root.Execute()

	code := commands.ExitCode(err)
	switch code {
	case commands.ExitVerification:
		fmt.Fprintln(os.Stderr, "verification failure")
	case commands.ExitError:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}

	return code
}
