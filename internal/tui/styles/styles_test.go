package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", Truncate("A New Hope", 0))
	assert.Equal(t, "A New Hope", Truncate("A New Hope", 10))
	assert.Equal(t, "A New...", Truncate("A New Hope", 8))
	assert.Equal(t, "A N", Truncate("A New Hope", 3))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "Jedi  ", Pad("Jedi", 6))
	assert.Equal(t, "Re...", Pad("Return", 5))
	assert.Equal(t, "", Pad("Jedi", 0))
}
