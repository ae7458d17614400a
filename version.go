package lispish

import (
	"github.com/maloquacious/semver"
)

// release is bumped by hand on every tagged release, the build metadata
// carries the VCS revision the binary was built from.
var release = semver.Version{
	Major: 0,
	Minor: 2,
	Patch: 0,
	Build: semver.Commit(),
}

// Version returns the version of the lispish module
func Version() semver.Version {
	return release
}
