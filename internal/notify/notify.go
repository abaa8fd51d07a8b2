package notify

import (
	"fmt"
	"os/exec"

	"github.com/leonardotrapani/themetokens/internal/deps"
	"github.com/rs/zerolog"
)

type Notifier interface {
	ThemeWritten(path string, tokens int)
	Error(msg string)
}

// New returns the notifier for kind: "desktop", "log" or anything else for
// none. Desktop falls back to log when notify-send is not installed.
func New(kind string, logger zerolog.Logger) Notifier {
	switch kind {
	case "desktop":
		if !deps.CheckNotifySend().Installed {
			logger.Warn().Msg("notify-send not found, logging notifications instead")
			return Log{Logger: logger}
		}
		return Desktop{Logger: logger}
	case "log":
		return Log{Logger: logger}
	default:
		return Nop{}
	}
}

// Desktop sends notifications through notify-send.
type Desktop struct {
	Logger zerolog.Logger
	// Run executes the notification command; nil means exec.Command(...).Run.
	Run func(name string, args ...string) error
}

func (d Desktop) ThemeWritten(path string, tokens int) {
	d.send("-a", "themetokens", "Theme updated", fmt.Sprintf("%d tokens written to %s", tokens, path))
}

func (d Desktop) Error(msg string) {
	d.send("-a", "themetokens", "-u", "critical", "Theme error", msg)
}

func (d Desktop) send(args ...string) {
	run := d.Run
	if run == nil {
		run = func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		}
	}
	if err := run("notify-send", args...); err != nil {
		d.Logger.Warn().Err(err).Msg("failed to send notification")
	}
}

// Log writes notifications to the logger.
type Log struct {
	Logger zerolog.Logger
}

func (l Log) ThemeWritten(path string, tokens int) {
	l.Logger.Info().Str("path", path).Int("tokens", tokens).Msg("theme updated")
}

func (l Log) Error(msg string) {
	l.Logger.Error().Msg(msg)
}

// Nop is a Notifier that does absolutely nothing.
// Useful in unit tests or headless builds.
type Nop struct{}

func (Nop) ThemeWritten(path string, tokens int) {}
func (Nop) Error(msg string)                     {}
