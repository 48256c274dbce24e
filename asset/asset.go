// Package asset bundles the card definition files into the binary.
package asset

import "embed"

// Cards holds the built-in card pool, one YAML file per card type under
// cards/.
//
//go:embed cards
var Cards embed.FS
