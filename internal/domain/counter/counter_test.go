package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCounter(t *testing.T) {
	c, err := NewCounter("ctr_test00000001", "  Window 3 ")

	require.NoError(t, err)
	assert.Equal(t, "ctr_test00000001", c.SID())
	assert.Equal(t, "Window 3", c.Name())
	assert.True(t, c.IsActive())
}

func TestNewCounter_MissingName(t *testing.T) {
	c, err := NewCounter("ctr_test00000001", "   ")

	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestCounter_Rename(t *testing.T) {
	c, err := NewCounter("ctr_test00000001", "Window 3")
	require.NoError(t, err)

	require.NoError(t, c.Rename("Window 4"))
	assert.Equal(t, "Window 4", c.Name())
	assert.Equal(t, 2, c.Version())

	assert.Error(t, c.Rename(""))
	assert.Equal(t, "Window 4", c.Name())
}

func TestCounter_ActivateDeactivate(t *testing.T) {
	c, err := NewCounter("ctr_test00000001", "Window 3")
	require.NoError(t, err)

	c.Deactivate()
	assert.False(t, c.IsActive())

	c.Deactivate()
	assert.Equal(t, 2, c.Version(), "repeated deactivate must not bump version")

	c.Activate()
	assert.True(t, c.IsActive())
	assert.Equal(t, 3, c.Version())
}
