package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	t.Run("Should prefix the cause and keep it reachable", func(t *testing.T) {
		cause := errors.New("boom")
		err := WrapError("unable to load", cause)
		assert.EqualError(t, err, "unable to load: boom")
		assert.ErrorIs(t, err, cause)
	})

	t.Run("Should keep a nil error nil", func(t *testing.T) {
		assert.NoError(t, WrapError("unused", nil))
	})
}
