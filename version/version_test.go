package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDefaults(t *testing.T) {
	t.Setenv("EMUSCAN_VERSION", "")

	info := Get()
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, "EmuScan "+Version, info.Generator())
}

func TestGetOverride(t *testing.T) {
	t.Setenv("EMUSCAN_VERSION", "1.4.0")

	assert.Equal(t, "EmuScan 1.4.0", Get().Generator())
}
