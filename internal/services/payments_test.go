package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits(t *testing.T) {
	t.Run("Should convert 19.99 to 1999 cents", func(t *testing.T) {
		assert.Equal(t, int64(1999), minorUnits(19.99))
	})

	t.Run("Should convert whole amounts", func(t *testing.T) {
		assert.Equal(t, int64(5000), minorUnits(50))
	})

	t.Run("Should convert sub-dollar amounts", func(t *testing.T) {
		assert.Equal(t, int64(99), minorUnits(0.99))
	})
}
