//go:build !integration

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	defer Init("info", false)

	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "debug level", level: "debug", want: zerolog.DebugLevel},
		{name: "info level", level: "info", want: zerolog.InfoLevel},
		{name: "warn level", level: "warn", want: zerolog.WarnLevel},
		{name: "error level", level: "error", want: zerolog.ErrorLevel},
		{name: "case and spaces are ignored", level: " WARN ", want: zerolog.WarnLevel},
		{name: "invalid level defaults to info", level: "verbose", want: zerolog.InfoLevel},
		{name: "empty level defaults to info", level: "", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, false)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	defer Init("info", false)

	var buf bytes.Buffer
	initWithWriter("info", false, &buf)

	l := Logger()
	l.Info().Str("vehicle_class", "box-truck").Msg("planned")
	l.Debug().Msg("hidden")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line), buf.String())
	assert.Equal(t, "planned", line["message"])
	assert.Equal(t, ServiceName, line["service"])
	assert.Equal(t, "box-truck", line["vehicle_class"])
	assert.Contains(t, line, "time")
}

func TestLogger_PrettyOutput(t *testing.T) {
	defer Init("info", false)

	var buf bytes.Buffer
	initWithWriter("info", true, &buf)

	l := Logger()
	l.Info().Msg("ready")

	assert.Contains(t, buf.String(), "ready")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
