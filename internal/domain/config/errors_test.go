package config

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *UserError
		expected string
	}{
		{
			name: "simple message",
			err: &UserError{
				Code:    ErrCodeConfigNotFound,
				Message: "config file not found",
			},
			expected: "config file not found",
		},
		{
			name: "message with context",
			err: &UserError{
				Code:    ErrCodeConfigNotFound,
				Message: "config file not found",
				Context: "devstack.yaml",
			},
			expected: "config file not found (at devstack.yaml)",
		},
		{
			name: "message with all fields",
			err: &UserError{
				Code:       ErrCodeConfigNotFound,
				Message:    "config file not found",
				Context:    "devstack.yaml",
				Suggestion: "pass --config",
			},
			expected: "config file not found (at devstack.yaml)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestUserError_Format(t *testing.T) {
	t.Parallel()

	err := &UserError{
		Code:       ErrCodeConfigNotFound,
		Message:    "config file not found",
		Context:    "devstack.yaml",
		Suggestion: "Pass --config with an existing file",
	}

	formatted := err.Format()

	assert.Contains(t, formatted, "[CONFIG_NOT_FOUND]")
	assert.Contains(t, formatted, "config file not found")
	assert.Contains(t, formatted, "Location: devstack.yaml")
	assert.Contains(t, formatted, "Suggestion: Pass --config")
}

func TestUserError_Unwrap(t *testing.T) {
	t.Parallel()

	underlying := errors.New("underlying error")
	err := &UserError{
		Code:       ErrCodeConfigParse,
		Message:    "parse failed",
		Underlying: underlying,
	}

	assert.Equal(t, underlying, err.Unwrap())
	assert.ErrorIs(t, err, underlying)
}

func TestUserError_Is(t *testing.T) {
	t.Parallel()

	err1 := &UserError{Code: ErrCodeConfigNotFound, Message: "not found 1"}
	err2 := &UserError{Code: ErrCodeConfigNotFound, Message: "not found 2"}
	err3 := &UserError{Code: ErrCodeConfigParse, Message: "parse error"}

	assert.ErrorIs(t, err1, err2)
	assert.NotErrorIs(t, err1, err3)
}

func TestUserError_WithSuggestion(t *testing.T) {
	t.Parallel()

	original := &UserError{
		Code:    ErrCodeConfigNotFound,
		Message: "not found",
		Context: "file.yaml",
	}

	withSuggestion := original.WithSuggestion("Check the service name")

	assert.Equal(t, original.Code, withSuggestion.Code)
	assert.Equal(t, original.Message, withSuggestion.Message)
	assert.Equal(t, original.Context, withSuggestion.Context)
	assert.Equal(t, "Check the service name", withSuggestion.Suggestion)
	assert.Empty(t, original.Suggestion) // Original unchanged
}

func TestErrorList_Add(t *testing.T) {
	t.Parallel()

	list := NewErrorList()
	assert.False(t, list.HasErrors())
	assert.Equal(t, 0, list.Len())

	list.Add(&UserError{Code: ErrCodeConfigNotFound, Message: "err1"})
	list.Add(&UserError{Code: ErrCodeConfigParse, Message: "err2"})
	list.Add(nil) // Should be ignored

	assert.True(t, list.HasErrors())
	assert.Equal(t, 2, list.Len())
}

func TestErrorList_AddValidation(t *testing.T) {
	t.Parallel()

	list := NewErrorList()
	list.AddValidation("service", "cannot be empty", "Set service to the compose service name")

	require.Equal(t, 1, list.Len())
	err := list.Errors()[0]
	assert.Equal(t, ErrCodeValidationFailed, err.Code)
	assert.Contains(t, err.Message, "service")
	assert.Contains(t, err.Message, "cannot be empty")
	assert.Equal(t, "Set service to the compose service name", err.Suggestion)
}

func TestErrorList_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		setup    func(*ErrorList)
		contains []string
	}{
		{
			name:     "empty list",
			setup:    func(_ *ErrorList) {},
			contains: nil,
		},
		{
			name: "single error",
			setup: func(l *ErrorList) {
				l.Add(&UserError{Code: "ERR1", Message: "first error"})
			},
			contains: []string{"first error"},
		},
		{
			name: "multiple errors",
			setup: func(l *ErrorList) {
				l.Add(&UserError{Code: "ERR1", Message: "first error"})
				l.Add(&UserError{Code: "ERR2", Message: "second error"})
			},
			contains: []string{"2 errors occurred", "first error", "second error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			list := NewErrorList()
			tt.setup(list)
			errStr := list.Error()

			for _, s := range tt.contains {
				assert.Contains(t, errStr, s)
			}
		})
	}
}

func TestErrorList_Format(t *testing.T) {
	t.Parallel()

	list := NewErrorList()
	list.Add(&UserError{
		Code:       ErrCodeConfigNotFound,
		Message:    "config not found",
		Context:    "devstack.yaml",
		Suggestion: "Run init",
	})
	list.Add(&UserError{
		Code:    ErrCodeValidationFailed,
		Message: "validation error",
	})

	formatted := list.Format()

	assert.Contains(t, formatted, "Found 2 error(s)")
	assert.Contains(t, formatted, "[CONFIG_NOT_FOUND]")
	assert.Contains(t, formatted, "[VALIDATION_FAILED]")
	assert.Contains(t, formatted, "Location: devstack.yaml")
	assert.Contains(t, formatted, "Suggestion: Run init")
}

func TestErrorList_Errors(t *testing.T) {
	t.Parallel()

	list := NewErrorList()
	err1 := &UserError{Code: "ERR1", Message: "error 1"}
	err2 := &UserError{Code: "ERR2", Message: "error 2"}
	list.Add(err1)
	list.Add(err2)

	errors := list.Errors()

	assert.Len(t, errors, 2)
	assert.Equal(t, err1, errors[0])
	assert.Equal(t, err2, errors[1])

	// Verify it's a copy
	errors[0] = nil
	assert.NotNil(t, list.Errors()[0])
}

func TestErrorList_AsError(t *testing.T) {
	t.Parallel()

	t.Run("empty list returns nil", func(t *testing.T) {
		t.Parallel()
		list := NewErrorList()
		assert.NoError(t, list.AsError())
	})

	t.Run("non-empty list returns error", func(t *testing.T) {
		t.Parallel()
		list := NewErrorList()
		list.Add(&UserError{Code: "ERR", Message: "error"})
		assert.Error(t, list.AsError())
	})
}


func TestNewConfigNotFoundError(t *testing.T) {
	t.Parallel()

	err := NewConfigNotFoundError("/path/to/devstack.yaml")

	assert.Equal(t, ErrCodeConfigNotFound, err.Code)
	assert.Contains(t, err.Message, "/path/to/devstack.yaml")
	assert.Equal(t, "/path/to/devstack.yaml", err.Context)
	assert.Contains(t, err.Suggestion, "--config")
}

func TestNewConfigParseError(t *testing.T) {
	t.Parallel()

	underlying := errors.New("toml: expected character =")
	err := NewConfigParseError("/path/to/devstack.toml", underlying)

	assert.Equal(t, ErrCodeConfigParse, err.Code)
	assert.Equal(t, "/path/to/devstack.toml", err.Context)
	assert.ErrorIs(t, err, underlying)
}

func TestNewUnsupportedFormatError(t *testing.T) {
	t.Parallel()

	err := NewUnsupportedFormatError("devstack.json")

	assert.Equal(t, ErrCodeUnsupportedFormat, err.Code)
	assert.Contains(t, err.Message, `".json"`)
	assert.Contains(t, err.Suggestion, ".toml")
}

func TestNewFilePermissionError(t *testing.T) {
	t.Parallel()

	underlying := errors.New("permission denied")
	err := NewFilePermissionError("devstack.yaml", underlying)

	assert.Equal(t, ErrCodeFilePermission, err.Code)
	assert.ErrorIs(t, err, underlying)
}

func TestNewValidationFailedError(t *testing.T) {
	t.Parallel()

	err := NewValidationFailedError("service", "cannot be empty")

	assert.Equal(t, ErrCodeValidationFailed, err.Code)
	assert.Contains(t, err.Message, "service")
	assert.Contains(t, err.Message, "cannot be empty")
	assert.Equal(t, "service", err.Context)
}

func TestNewProfileNotFoundError(t *testing.T) {
	t.Parallel()

	err := NewProfileNotFoundError("reset", []string{"setup", "restart"})

	assert.Equal(t, ErrCodeProfileNotFound, err.Code)
	assert.Contains(t, err.Message, "reset")
	assert.Equal(t, "Available operations: setup, restart", err.Suggestion)
}

func TestIsUserError(t *testing.T) {
	t.Parallel()

	t.Run("is UserError with matching code", func(t *testing.T) {
		t.Parallel()
		err := NewConfigNotFoundError("path")
		assert.True(t, IsUserError(err, ErrCodeConfigNotFound))
	})

	t.Run("is UserError with different code", func(t *testing.T) {
		t.Parallel()
		err := NewConfigNotFoundError("path")
		assert.False(t, IsUserError(err, ErrCodeConfigParse))
	})

	t.Run("not a UserError", func(t *testing.T) {
		t.Parallel()
		assert.False(t, IsUserError(errors.New("regular error"), ErrCodeConfigNotFound))
	})

	t.Run("wrapped with %w", func(t *testing.T) {
		t.Parallel()
		wrapped := fmt.Errorf("loading: %w", NewConfigNotFoundError("path"))
		assert.True(t, IsUserError(wrapped, ErrCodeConfigNotFound))
	})
}

func TestGetUserError(t *testing.T) {
	t.Parallel()

	t.Run("returns UserError", func(t *testing.T) {
		t.Parallel()
		ue := GetUserError(NewConfigNotFoundError("path"))
		require.NotNil(t, ue)
		assert.Equal(t, ErrCodeConfigNotFound, ue.Code)
	})

	t.Run("returns nil for non-UserError", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, GetUserError(errors.New("regular error")))
	})
}

func TestNewYAMLParseError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		err             error
		expectedMessage string
		expectedContext string
		suggestionHas   string
	}{
		{
			name:            "unknown field",
			err:             errors.New("yaml: unmarshal errors:\n  line 4: field servcie not found in type config.fileConfig"),
			expectedMessage: "unknown setting",
			expectedContext: "devstack.yaml (line 4)",
			suggestionHas:   "snake_case",
		},
		{
			name:            "list instead of value",
			err:             errors.New("yaml: unmarshal errors:\n  line 2: cannot unmarshal !!seq into string"),
			expectedMessage: "expected a single value but found a list",
			expectedContext: "devstack.yaml (line 2)",
			suggestionHas:   "one value",
		},
		{
			name:            "object instead of value",
			err:             errors.New("yaml: unmarshal errors:\n  line 3: cannot unmarshal !!map into string"),
			expectedMessage: "expected a single value but found an object",
			expectedContext: "devstack.yaml (line 3)",
			suggestionHas:   "nested",
		},
		{
			name:            "mapping values",
			err:             errors.New("yaml: line 7: mapping values are not allowed in this context"),
			expectedMessage: "invalid YAML structure",
			expectedContext: "devstack.yaml (line 7)",
			suggestionHas:   "colons",
		},
		{
			name:            "bad character",
			err:             errors.New("yaml: line 1: found character that cannot start any token"),
			expectedMessage: "invalid character in YAML",
			expectedContext: "devstack.yaml (line 1)",
			suggestionHas:   "Quote",
		},
		{
			name:            "unknown error",
			err:             errors.New("yaml: something odd"),
			expectedMessage: "invalid YAML syntax",
			expectedContext: "devstack.yaml",
			suggestionHas:   "indentation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := NewYAMLParseError("devstack.yaml", tt.err)

			assert.Equal(t, ErrCodeConfigParse, err.Code)
			assert.Equal(t, tt.expectedMessage, err.Message)
			assert.Equal(t, tt.expectedContext, err.Context)
			assert.Contains(t, err.Suggestion, tt.suggestionHas)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestErrorList_Unwrap(t *testing.T) {
	t.Parallel()

	list := NewErrorList()
	list.AddValidation("settle", "time: invalid duration", "")

	assert.True(t, IsUserError(list.AsError(), ErrCodeValidationFailed))
}
