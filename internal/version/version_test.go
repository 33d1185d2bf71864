package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	orig := [3]string{Version, Commit, BuildDate}
	defer func() { Version, Commit, BuildDate = orig[0], orig[1], orig[2] }()

	Version, Commit, BuildDate = "v1.2.3", "abc123", "2026-01-02"

	assert.Equal(t, "v1.2.3 (commit: abc123, built: 2026-01-02)", String())
}
