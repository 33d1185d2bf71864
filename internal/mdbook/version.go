package mdbook

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// CompatibleVersion is the host version this preprocessor is built
// against. Hosts satisfying ^CompatibleVersion speak the same format.
const CompatibleVersion = "0.4.35"

// CheckVersion reports whether hostVersion satisfies ^CompatibleVersion.
// An unparseable version is an error; an incompatible one is not.
func CheckVersion(hostVersion string) (bool, error) {
	v, err := semver.StrictNewVersion(hostVersion)
	if err != nil {
		return false, fmt.Errorf("failed to parse mdbook version %q: %w", hostVersion, err)
	}
	req, err := semver.NewConstraint("^" + CompatibleVersion)
	if err != nil {
		return false, fmt.Errorf("failed to parse version requirement: %w", err)
	}
	return req.Check(v), nil
}
