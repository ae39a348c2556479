package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrAlreadyExists", ErrAlreadyExists},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrGeometryConflict", ErrGeometryConflict},
		{"ErrInUse", ErrInUse},
		{"ErrPreconditionFailed", ErrPreconditionFailed},
		{"ErrCorruptData", ErrCorruptData},
		{"ErrUnsupportedType", ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrAlreadyExists))
}

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrInvalidInput, "InvalidArgument"},
		{fmt.Errorf("border 1-2: %w", ErrNotFound), "NotFound"},
		{fmt.Errorf("wrapped twice: %w", fmt.Errorf("inner: %w", ErrGeometryConflict)), "GeometryConflict"},
		{fmt.Errorf("point 3: %w", ErrInUse), "InUse"},
		{ErrPreconditionFailed, "PreconditionFailed"},
		{ErrCorruptData, "CorruptData"},
		{ErrAlreadyExists, "AlreadyExists"},
		{ErrUnsupportedType, "UnsupportedType"},
		{errors.New("disk full"), "Internal"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Kind(tt.err))
	}
}
