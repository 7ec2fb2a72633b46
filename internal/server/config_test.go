package server

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 80, cfg.Port)
	assert.Equal(t, "./static", cfg.StaticDir)
	assert.Equal(t, ":80", cfg.Addr())
	assert.NoError(t, cfg.Validate())
}

func TestParsePort(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"8080", 8080, false},
		{"1", 1, false},
		{"65535", 65535, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"65536", 0, true},
		{"abc", 0, true},
		{"80abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePort(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPort)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{Port: 8080}.Validate())
	assert.ErrorIs(t, Config{Port: 0}.Validate(), ErrInvalidPort)
	assert.ErrorIs(t, Config{Port: 70000}.Validate(), ErrInvalidPort)
	assert.Equal(t, ":8080", Config{Port: 8080}.Addr())
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, logrus.InfoLevel)

	l.Info("listening", Field{"port", 8080})
	l.Debug("hidden below info")

	out := buf.String()
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, "msg=listening")
	assert.Contains(t, out, "port=8080")
	assert.NotContains(t, out, "hidden below info")
}

func TestLoggerTruncatesLongValues(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, logrus.DebugLevel)

	long := strings.Repeat("a", 300)
	l.Warn("long path", Field{"path", long})
	assert.Contains(t, buf.String(), strings.Repeat("a", 100)+"...[truncated]")
	assert.NotContains(t, buf.String(), strings.Repeat("a", 101))

	buf.Reset()
	l.Error("panic", Field{"stack", long})
	assert.Contains(t, buf.String(), long)
}

func TestNullLogger(t *testing.T) {
	var l Logger = &NullLogger{}
	assert.NotPanics(t, func() {
		l.Debug("x")
		l.Info("x")
		l.Warn("x")
		l.Error("x", Field{"k", "v"})
	})
}
