package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", " ", "abc123")

	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "riegum 1.2.0 (abc123, N/A)", info.String())

	var zero AppBuildInfo
	assert.Equal(t, "N/A", zero.BuildVersion())
}
