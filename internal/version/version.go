package version

import (
	"fmt"
	"runtime"
)

// current version
const coreVersion = "1.0.0"

// Provisioned by ldflags
var commit string

// Core return the core version.
func Core() string {
	return coreVersion
}

// Full return the full version including commit hash, runtime os and arch.
func Full() string {
	if commit != "" && commit[:1] != " " {
		commit = " " + commit
	}

	return fmt.Sprintf("v%s%s %s/%s", coreVersion, commit, runtime.GOOS, runtime.GOARCH)
}
