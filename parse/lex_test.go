package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	args, err := Split(`build -o "my output.txt" --tag 'v1'`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"build", "-o", "my output.txt", "--tag", "v1"}, args)
}

func TestSplit_Empty(t *testing.T) {
	args, err := Split("")
	assert.NoError(t, err)
	assert.Empty(t, args)
}

func TestSplit_UnterminatedQuote(t *testing.T) {
	_, err := Split(`-m "unterminated`)
	assert.Error(t, err)
}
