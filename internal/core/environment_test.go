package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEnvironment(t *testing.T) {
	cases := map[string]Environment{
		"production":  Production,
		"staging":     Staging,
		"testing":     Testing,
		"development": Development,
		"":            Development,
		"PRODUCTION":  Development,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseEnvironment(in), "input %q", in)
	}
}

func TestEnvironment_IsInteractive(t *testing.T) {
	assert.True(t, Development.IsInteractive())
	assert.True(t, Testing.IsInteractive())
	assert.False(t, Staging.IsInteractive())
	assert.False(t, Production.IsInteractive())
	assert.True(t, Production.IsProduction())
}
