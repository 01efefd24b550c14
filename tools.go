//go:build tools

package invaders

// Build-time tooling, kept versioned with the module.
import (
	_ "golang.org/x/tools/cmd/stringer"
)
