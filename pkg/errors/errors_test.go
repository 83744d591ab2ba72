package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/docrender/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "action not found",
			wantStr: "[NOT_FOUND] action not found",
		},
		{
			name:    "parse_error",
			code:    errors.ErrParse,
			message: "unbalanced brace",
			wantStr: "[PARSE] unbalanced brace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidInput, "width %d below %s", -1, "zero")
	assert.Equal(t, "width -1 below zero", err.Message)
}

func TestWrap(t *testing.T) {
	t.Run("wraps_error", func(t *testing.T) {
		base := stderrors.New("disk full")
		err := errors.Wrap(base, errors.ErrWrite, "cannot write output")

		assert.Equal(t, errors.ErrWrite, err.Code)
		assert.Equal(t, "[WRITE] cannot write output: disk full", err.Error())
		assert.Equal(t, base, stderrors.Unwrap(err))
	})

	t.Run("nil_error", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrWrite, "cannot write output"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrWrite, "cannot write %s", "x"))
	})
}

func TestArity(t *testing.T) {
	err := errors.Arity("align", "exactly one argument", 3)

	assert.Equal(t, errors.ErrArity, err.Code)
	assert.Contains(t, err.Error(), "align expects exactly one argument, got 3")
	assert.Equal(t, "align", err.Details["command"])
	assert.Equal(t, 3, err.Details["got"])
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrParse, "bad markup").
		WithDetail("position", 4).
		WithDetails(map[string]interface{}{"input": `\bold{`})

	assert.Equal(t, 4, err.Details["position"])
	assert.Equal(t, `\bold{`, err.Details["input"])
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrNotFound, "error 1")
	err2 := errors.New(errors.ErrNotFound, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, stderrors.Is(err1, err2))
	assert.False(t, stderrors.Is(err1, err3))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrArity, "arity"),
			code:     errors.ErrArity,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrArity, "arity"),
			code:     errors.ErrParse,
			expected: false,
		},
		{
			name:     "wrapped_in_fmt",
			err:      fmt.Errorf("render: %w", errors.New(errors.ErrArity, "arity")),
			code:     errors.ErrArity,
			expected: true,
		},
		{
			name:     "plain_error",
			err:      stderrors.New("plain"),
			code:     errors.ErrArity,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrArity,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrUnknownCommand, errors.GetErrorCode(errors.New(errors.ErrUnknownCommand, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestErrorChaining(t *testing.T) {
	root := stderrors.New("permission denied")
	fileErr := errors.Wrap(root, errors.ErrFileAccess, "cannot read values")
	cfgErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	assert.True(t, errors.IsErrorCode(cfgErr, errors.ErrConfigLoad))
	assert.True(t, stderrors.Is(cfgErr, root))

	var renderErr *errors.RenderError
	require.True(t, stderrors.As(cfgErr.Wrapped, &renderErr))
	assert.Equal(t, errors.ErrFileAccess, renderErr.Code)
	assert.Nil(t, errors.GetErrorDetails(root))
}
