// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseString(t *testing.T) {
	const key = "EPGCLEAN_TEST_STRING"

	assert.Equal(t, "fallback", ParseString(key, "fallback"), "unset")

	t.Setenv(key, "")
	assert.Equal(t, "fallback", ParseString(key, "fallback"), "empty")

	t.Setenv(key, "value")
	assert.Equal(t, "value", ParseString(key, "fallback"))
}

func TestParseInt(t *testing.T) {
	const key = "EPGCLEAN_TEST_INT"
	tests := []struct {
		name  string
		value string
		set   bool
		want  int
	}{
		{"unset", "", false, 7},
		{"empty", "", true, 7},
		{"valid", "42", true, 42},
		{"negative", "-3", true, -3},
		{"garbage", "4x", true, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv(key, tt.value)
			}
			assert.Equal(t, tt.want, ParseInt(key, 7))
		})
	}
}

func TestParseInt64(t *testing.T) {
	const key = "EPGCLEAN_TEST_INT64"
	t.Setenv(key, "8589934592")
	assert.Equal(t, int64(8589934592), ParseInt64(key, 1))

	t.Setenv(key, "1e9")
	assert.Equal(t, int64(1), ParseInt64(key, 1))
}
