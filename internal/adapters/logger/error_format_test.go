package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/peek/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want []logger.ErrorEntry
	}{
		{
			name: "standard error",
			err:  errors.New("simple error"),
			want: []logger.ErrorEntry{{Message: "simple error"}},
		},
		{
			name: "zerr chain",
			err:  zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle"), "outer"),
			want: []logger.ErrorEntry{
				{Message: "outer", Metadata: map[string]any{}},
				{Message: "middle", Metadata: map[string]any{}},
				{Message: "root cause"},
			},
		},
		{
			name: "metadata on standard error moves to the error",
			err:  zerr.With(errors.New("busy"), "cpu", 3),
			want: []logger.ErrorEntry{{Message: "busy", Metadata: map[string]any{"cpu": 3}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, logger.CollectErrorEntries(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	t.Parallel()

	got := logger.FormatErrorEntries([]logger.ErrorEntry{
		{Message: "leak run failed", Metadata: map[string]any{"offset": 12}},
		{Message: "context canceled"},
	})

	assert.Equal(t, "Error: leak run failed (offset=12)\n\n  Caused by:\n    → context canceled", got)
}
