package mdbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		version    string
		compatible bool
	}{
		{"0.4.35", true},
		{"0.4.40", true},
		{"0.4.34", false},
		{"0.5.0", false},
		{"1.0.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			ok, err := CheckVersion(tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.compatible, ok)
		})
	}
}

func TestCheckVersion_Invalid(t *testing.T) {
	for _, v := range []string{"", "latest", "0.4"} {
		_, err := CheckVersion(v)
		assert.Error(t, err, "version %q", v)
	}
}
