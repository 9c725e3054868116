package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/goseal/internal/logic"
)

// NewDecryptCommand creates the cobra command for the dec subcommand.
func NewDecryptCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dec -key path -in path -out path -tag path",
		Aliases: []string{"decrypt"},
		Short:   "Verify and decrypt an envelope",
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return viper.BindPFlags(cmd.Flags())
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := unmarshalConfig()
			if err != nil {
				return err
			}

			cfg.Decrypt = true

			return logic.Run(cfg)
		},
	}

	addCipherFlags(cmd)

	return cmd
}
