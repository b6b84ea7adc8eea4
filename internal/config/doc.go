// Package config loads sampler's TOML configuration.
//
// # Configuration Discovery
//
// Load resolves the file in this order:
//
//  1. An explicitly provided path
//  2. ~/.config/sampler/config.toml
//  3. Built-in defaults when the file does not exist
//
// Missing files are not an error. Empty or blank fields fall back to their
// defaults.
//
// # TOML Format
//
//	name = "sampler"      # greeting name
//	mark = "!"            # greeting punctuation
//	log_file = "~/.local/share/sampler/sampler.log"
//
// Tilde expansion is applied to log_file, and relative paths are made
// absolute.
package config
