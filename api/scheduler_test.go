// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContinuation_TakeReturnsToken(t *testing.T) {
	c := NewContinuation("fiber-1")
	require.False(t, c.Consumed())
	assert.Equal(t, "fiber-1", c.Take())
	assert.True(t, c.Consumed())
}

func TestContinuation_SecondTakePanics(t *testing.T) {
	c := NewContinuation(42)
	c.Take()
	assert.Panics(t, func() { c.Take() })
}
