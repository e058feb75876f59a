package app

import (
	"errors"
	"fmt"
)

var ErrMissingDependency = errors.New("missing required dependency")

// RequiredTools are the external tools the scan requires on PATH.
var RequiredTools = []string{"curl", "jq"}

// LookPathFunc resolves an executable name on PATH, exec.LookPath style.
type LookPathFunc func(name string) (string, error)

// CheckDependencies fails on the first tool that does not resolve. There is
// no degraded mode: a single missing tool aborts the whole run.
func CheckDependencies(lookPath LookPathFunc) error {
	for _, tool := range RequiredTools {
		_, err := lookPath(tool)
		if err != nil {
			return fmt.Errorf("%w: %s not found in PATH", ErrMissingDependency, tool)
		}
	}

	return nil
}
