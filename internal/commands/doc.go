// Package commands provides the command-line interface for the goseal tool.
//
// It implements commands for:
//   - encryption
//   - decryption
//   - secret generation
//
// The package handles command-line parsing, configuration validation,
// and flag binding through cobra and viper.
package commands
