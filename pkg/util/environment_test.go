package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvironmentVariable(t *testing.T) {
	assert.Equal(t, "fallback", GetEnvironmentVariable("METROPLAN_TEST_UNSET", "fallback"))

	t.Setenv("METROPLAN_TEST_SET", "value")
	assert.Equal(t, "value", GetEnvironmentVariable("METROPLAN_TEST_SET", "fallback"))

	t.Setenv("METROPLAN_TEST_EMPTY", "")
	assert.Equal(t, "fallback", GetEnvironmentVariable("METROPLAN_TEST_EMPTY", "fallback"))
}
