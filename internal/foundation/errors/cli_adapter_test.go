package errors

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"validation error", ValidationError("empty group").Build(), 2},
		{"not found", NotFoundError("missing").Build(), 3},
		{"config error", ConfigError("bad yaml").Build(), 7},
		{"git error", GitError("no remote").Build(), 8},
		{"filesystem error", FileSystemError("write").Build(), 11},
		{"export error", ExportError("encode").Build(), 11},
		{"unclassified error", stderrors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, adapter.ExitCodeFor(tt.err))
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	err := ValidationError("sidebar group has no items").
		WithField("themeConfig.sidebar[0].items").
		WithPath("sitenav.yaml").
		Build()

	quiet := NewCLIErrorAdapter(false, nil)
	assert.Equal(t, "Error: sitenav.yaml: themeConfig.sidebar[0].items: sidebar group has no items", quiet.FormatError(err))

	verbose := NewCLIErrorAdapter(true, nil)
	assert.Equal(t, "Error: "+err.Error(), verbose.FormatError(err))

	decode := ConfigError("failed to decode config").WithCause(stderrors.New("yaml: line 3: did not find expected key")).Build()
	assert.Equal(t, "Error: failed to decode config: yaml: line 3: did not find expected key", quiet.FormatError(decode))

	assert.Equal(t, "Error: boom", quiet.FormatError(stderrors.New("boom")))
	assert.Empty(t, quiet.FormatError(nil))
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var out bytes.Buffer
	var logs bytes.Buffer
	adapter := NewCLIErrorAdapter(true, slog.New(slog.NewTextHandler(&logs, nil)))
	adapter.out = &out
	code := -1
	adapter.exit = func(c int) { code = c }

	adapter.HandleError(ValidationError("title is required").WithField("title").Build())

	assert.Equal(t, 2, code)
	assert.Contains(t, out.String(), "title is required")
	assert.Contains(t, logs.String(), "category=validation")
	assert.Contains(t, logs.String(), "field=title")
}
