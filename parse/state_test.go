package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_Traversal(t *testing.T) {
	st := NewState([]string{"a", "b", "c"})

	assert.Equal(t, -1, st.Pos(), "a fresh state starts before the first argument")
	assert.Equal(t, "", st.CurrentArg())

	assert.True(t, st.Advance())
	assert.Equal(t, "a", st.CurrentArg())

	assert.True(t, st.Advance())
	assert.True(t, st.Advance())
	assert.Equal(t, "c", st.CurrentArg())
	assert.False(t, st.Advance(), "advance past the end reports exhaustion")
	assert.Equal(t, "c", st.CurrentArg(), "a failed advance leaves the cursor in place")
}

func TestState_Empty(t *testing.T) {
	st := NewState(nil)

	assert.False(t, st.Advance())
	assert.Equal(t, "", st.CurrentArg())
}
