package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, sanitizer.Clamp(3, 5, 10))
	assert.Equal(t, 10, sanitizer.Clamp(12, 5, 10))
	assert.Equal(t, 7, sanitizer.Clamp(7, 5, 10))
	assert.Equal(t, 0.5, sanitizer.Clamp(0.2, 0.5, 1.0))
}

func TestClampMinMax(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, sanitizer.ClampMin(-3, 0))
	assert.Equal(t, 4, sanitizer.ClampMin(4, 0))
	assert.Equal(t, 100, sanitizer.ClampMax(250, 100))
	assert.Equal(t, 42, sanitizer.ClampMax(42, 100))
}
