package errors

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, nil)

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"validation error", ValidationError("page_limit must be positive").Build(), 2},
		{"config error", ConfigError("bad config").Build(), 7},
		{"invalid date", InvalidDateError("date is missing").Build(), 11},
		{"marker not found", MarkerNotFoundError("marker not found").Build(), 11},
		{"template error", TemplateError("missing template").Build(), 11},
		{"wrapped io error", fmt.Errorf("stage: %w", IOError("read").Build()), 11},
		{"internal error", InternalError("boom").Build(), 10},
		{"unclassified error", errors.New("unknown error"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, adapter.ExitCodeFor(tt.err))
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	err := InvalidDateError("date is missing").WithContext("file", "post.md").Build()

	quiet := NewCLIErrorAdapter(false, nil)
	assert.Equal(t, "InvalidDate: date is missing (file=post.md)", quiet.FormatError(err))

	wrapped := WrapError(errors.New("no such file"), CategoryFileSystem, "cannot read").Build()
	assert.Equal(t, "IOFailure: cannot read: no such file", quiet.FormatError(fmt.Errorf("stage: %w", wrapped)))

	verbose := NewCLIErrorAdapter(true, nil)
	assert.Equal(t, err.Error(), verbose.FormatError(err))

	assert.Equal(t, "Error: plain", quiet.FormatError(errors.New("plain")))
	assert.Empty(t, quiet.FormatError(nil))
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var out, logs bytes.Buffer
	var code int
	adapter := NewCLIErrorAdapter(true, slog.New(slog.NewTextHandler(&logs, nil)))
	adapter.out = &out
	adapter.exit = func(c int) { code = c }

	adapter.HandleError(MarkerNotFoundError("marker not found").WithContext("class", "latest").Build())

	assert.Equal(t, 11, code)
	assert.Contains(t, out.String(), "[marker:fatal] marker not found class=latest")
	assert.Contains(t, logs.String(), "category=marker")
	assert.Contains(t, logs.String(), "class=latest")
}

func TestCLIErrorAdapter_HandleNil(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, nil)
	adapter.exit = func(int) { t.Fatal("exit called for nil error") }
	adapter.HandleError(nil)
}
