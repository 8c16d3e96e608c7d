package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	t.Run("linker value wins", func(t *testing.T) {
		orig := version
		t.Cleanup(func() { version = orig })
		version = "v1.2.3"
		assert.Equal(t, "v1.2.3", GetVersion())
	})

	t.Run("never empty", func(t *testing.T) {
		orig := version
		t.Cleanup(func() { version = orig })
		version = ""
		assert.NotEmpty(t, GetVersion())
	})
}

func TestGetCommit(t *testing.T) {
	orig := commit
	t.Cleanup(func() { commit = orig })
	commit = "abc123"
	assert.Equal(t, "abc123", GetCommit())
}
