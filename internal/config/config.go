// Package config holds the validated runtime configuration for one
// invocation of the tool.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config carries the flag values for a single encrypt or decrypt run.
// All four file paths are mandatory.
type Config struct {
	// Key is the path to the shared-secret file.
	Key string `mapstructure:"key" validate:"required"`

	// In is the path to the input file (plaintext for enc, envelope for dec).
	In string `mapstructure:"in" validate:"required"`

	// Out is the path the result is written to.
	Out string `mapstructure:"out" validate:"required"`

	// Tag is the path of the authentication tag file.
	Tag string `mapstructure:"tag" validate:"required"`

	// Deterministic selects the hash-derived fixed-IV policy instead of the
	// default random-IV policy. Must match between enc and dec of a
	// deployment.
	Deterministic bool `mapstructure:"deterministic"`

	// Stats prints a processing summary to stderr.
	Stats bool `mapstructure:"stats"`

	// Decrypt is set by the dec command.
	Decrypt bool
}

// Validate validates the configuration against the struct tags.
func (c Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	return nil
}
