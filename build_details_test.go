package oasdowngrade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	// Development builds report "dev"; release builds override via ldflags
	assert.Equal(t, "dev", Version())
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "oasdowngrade/dev", UserAgent())
}
