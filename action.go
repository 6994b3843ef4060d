// Package registermodel carries the GitHub Action metadata shipped with the
// register-model binary.
package registermodel

import _ "embed"

// ActionMetadata is the contents of action.yml.
//
//go:embed action.yml
var ActionMetadata []byte
