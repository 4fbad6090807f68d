package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	t.Run("Returns 0 for nil", func(t *testing.T) {
		assert.Equal(t, uint32(0), CodeOf(nil))
	})

	t.Run("Returns the rule code through wrapping", func(t *testing.T) {
		// Given: a rule error wrapped twice
		err := fmt.Errorf("failed to play: %w", fmt.Errorf("invalid turn: %w", ErrTileAlreadySet))

		// When: extracting the code
		code := CodeOf(err)

		// Then: the code of the wrapped rule error is returned
		assert.Equal(t, uint32(6001), code)
		assert.ErrorIs(t, err, ErrTileAlreadySet)
	})

	t.Run("Returns CodeUnknown for plain errors", func(t *testing.T) {
		assert.Equal(t, CodeUnknown, CodeOf(errors.New("redis down")))
	})
}
