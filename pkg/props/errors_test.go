package props

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with message",
			err:      &Error{Op: "Table", Err: ErrArity, Msg: "row 2 has 3 cells, want 2"},
			expected: "Table: row 2 has 3 cells, want 2: wrong number of elements",
		},
		{
			name:     "without message",
			err:      &Error{Op: "Icon", Err: ErrInvalidValue},
			expected: "Icon: invalid value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	assert.True(t, errors.Is(Invalidf("Code", "bad language"), ErrInvalidValue))
	assert.True(t, errors.Is(Arityf("Column", "empty"), ErrArity))
	assert.True(t, errors.Is(OutOfRange("Pop", 3, 1), ErrIndexOutOfRange))
	assert.Nil(t, Invalid("noop", nil))
}
