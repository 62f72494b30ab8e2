// Package cli parses the tierplan command line, resolves configuration
// from flags, environment and an optional .env file, and builds the
// command's structured logger.
//
// Precedence: flags > process environment > .env file > defaults.
package cli
