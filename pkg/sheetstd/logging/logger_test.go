package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewRespectsLevel(t *testing.T) {
	logger := New(&Config{Level: "warn", Format: "json", Output: "stderr"})
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}

func TestJSONWriterPassthrough(t *testing.T) {
	var buf bytes.Buffer
	w := writer(&Config{Format: "json", Output: "stderr"})
	_, isConsole := w.(zerolog.ConsoleWriter)
	assert.False(t, isConsole)

	logger := zerolog.New(&buf)
	logger.Info().Str("action", "File Loaded").Msg("ok")
	assert.Contains(t, buf.String(), `"action":"File Loaded"`)
}
