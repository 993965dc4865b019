package logging

import (
	"bytes"
	"testing"

	"github.com/joeycumines/logiface"
	"github.com/stretchr/testify/assert"
)

func TestNew_WritesToProvidedWriter(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, logiface.LevelInformational)

	l.Info().Str(`field`, `value`).Log(`hello`)

	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"field":"value"`)
}

func TestNew_NilWriterDefaultsToStderr(t *testing.T) {
	l := New(nil, logiface.LevelInformational)
	assert.NotNil(t, l)
}

func TestDisabled_NeverPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		Disabled.Info().Str(`x`, `y`).Log(`should be a no-op`)
	})
}
