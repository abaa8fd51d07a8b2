package notify

import (
	"bytes"
	"errors"
	"os/exec"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	logger := zerolog.Nop()

	if _, err := exec.LookPath("notify-send"); err == nil {
		assert.IsType(t, Desktop{}, New("desktop", logger))
	} else {
		assert.IsType(t, Log{}, New("desktop", logger))
	}
	assert.IsType(t, Log{}, New("log", logger))
	assert.IsType(t, Nop{}, New("none", logger))
	assert.IsType(t, Nop{}, New("", logger))
}

func TestDesktopNotifier(t *testing.T) {
	var calls [][]string
	desktop := Desktop{
		Logger: zerolog.Nop(),
		Run: func(name string, args ...string) error {
			calls = append(calls, append([]string{name}, args...))
			return nil
		},
	}

	desktop.ThemeWritten("dist/theme.css", 12)
	desktop.Error("boom")

	require.Len(t, calls, 2)
	assert.Equal(t, []string{"notify-send", "-a", "themetokens", "Theme updated", "12 tokens written to dist/theme.css"}, calls[0])
	assert.Equal(t, []string{"notify-send", "-a", "themetokens", "-u", "critical", "Theme error", "boom"}, calls[1])
}

func TestDesktopNotifier_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	desktop := Desktop{
		Logger: zerolog.New(&buf),
		Run:    func(string, ...string) error { return errors.New("notify-send not found") },
	}

	desktop.ThemeWritten("theme.css", 1)
	assert.Contains(t, buf.String(), "failed to send notification")
	assert.Contains(t, buf.String(), "notify-send not found")
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	logNotifier := Log{Logger: zerolog.New(&buf)}

	t.Run("ThemeWritten", func(t *testing.T) {
		buf.Reset()
		logNotifier.ThemeWritten("dist/theme.css", 7)

		output := buf.String()
		assert.Contains(t, output, `"path":"dist/theme.css"`)
		assert.Contains(t, output, `"tokens":7`)
		assert.Contains(t, output, "theme updated")
	})

	t.Run("Error", func(t *testing.T) {
		buf.Reset()
		logNotifier.Error("test error message")

		output := buf.String()
		assert.Contains(t, output, `"level":"error"`)
		assert.Contains(t, output, "test error message")
	})
}

func TestNopNotifier(t *testing.T) {
	nop := Nop{}

	// All Nop methods should do nothing and not panic
	nop.ThemeWritten("theme.css", 3)
	nop.Error("test message")
}
