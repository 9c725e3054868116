package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/goseal/internal/config"
	"github.com/idelchi/goseal/internal/logic"
)

// NewEncryptCommand creates the cobra command for the enc subcommand.
func NewEncryptCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "enc -key path -in path -out path -tag path",
		Aliases: []string{"encrypt"},
		Short:   "Encrypt a file into an envelope and tag",
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return viper.BindPFlags(cmd.Flags())
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := unmarshalConfig()
			if err != nil {
				return err
			}

			return logic.Run(cfg)
		},
	}

	addCipherFlags(cmd)

	return cmd
}

// addCipherFlags registers the flags shared by enc and dec.
func addCipherFlags(cmd *cobra.Command) {
	cmd.Flags().String("key", "", "Path to the shared-secret file")
	cmd.Flags().String("in", "", "Path to the input file")
	cmd.Flags().String("out", "", "Path to the output file")
	cmd.Flags().String("tag", "", "Path to the authentication tag file")
	cmd.Flags().Bool("deterministic", false,
		"Use the hash-derived fixed-IV policy (must match between enc and dec)")
	cmd.Flags().Bool("stats", false, "Print a processing summary to stderr")
}

// unmarshalConfig collects bound flags into a validated config struct.
func unmarshalConfig() (*config.Config, error) {
	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
