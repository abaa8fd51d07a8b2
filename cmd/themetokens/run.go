package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/leonardotrapani/themetokens/internal/config"
	"github.com/leonardotrapani/themetokens/internal/notify"
	"github.com/leonardotrapani/themetokens/internal/render"
	"github.com/leonardotrapani/themetokens/internal/theme"
	"github.com/leonardotrapani/themetokens/internal/watch"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// deriveFile loads a theme and derives its tokens. ok is false when the
// theme has no colors configured.
func deriveFile(themePath string, cfg *config.Config) (tokens []theme.Token, ok bool, err error) {
	th, err := theme.Load(themePath)
	if err != nil {
		return nil, false, err
	}

	tokens, ok = theme.NewDeriver(cfg.DeriverOptions()).Derive(th)
	return tokens, ok, nil
}

// generate derives the theme and writes it to cfg.Output.Path, or to stdout
// when no path is set. It returns the number of tokens written; a theme
// without colors writes nothing.
func generate(themePath string, cfg *config.Config, stdout io.Writer) (int, error) {
	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return 0, err
	}

	tokens, ok, err := deriveFile(themePath, cfg)
	if err != nil {
		return 0, err
	}
	if !ok {
		log.Info().Str("theme", themePath).Msg("no theme colors configured, nothing written")
		return 0, nil
	}

	var buf bytes.Buffer
	opts := render.Options{Format: format, Selector: cfg.Output.Selector, Prefix: cfg.Output.Prefix}
	if err := render.Write(&buf, tokens, opts); err != nil {
		return 0, fmt.Errorf("failed to render tokens: %w", err)
	}

	if cfg.Output.Path == "" {
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			return 0, err
		}
		return len(tokens), nil
	}

	if err := writeFileAtomic(cfg.Output.Path, buf.Bytes()); err != nil {
		return 0, err
	}
	log.Debug().Str("path", cfg.Output.Path).Int("tokens", len(tokens)).Msg("tokens written")
	return len(tokens), nil
}

// writeFileAtomic replaces path through a rename so readers never see a
// partially written file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to chmod %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// regenerator rebuilds the output whenever the theme or config file changes.
type regenerator struct {
	themePath string
	manager   *config.Manager
	flags     outputFlags
	out       io.Writer
	logger    zerolog.Logger

	// newNotifier builds the notifier for a config load; nil means notify.New.
	newNotifier func(kind string, logger zerolog.Logger) notify.Notifier

	mu       sync.Mutex
	notifier notify.Notifier
}

func (r *regenerator) Run(ctx context.Context) error {
	r.resetNotifier()
	if err := r.regenerate(); err != nil {
		return err
	}

	targets := []watch.Target{{Path: r.themePath, OnChange: r.onThemeChange}}
	configDir := filepath.Dir(r.manager.Path())
	if info, err := os.Stat(configDir); err == nil && info.IsDir() {
		targets = append(targets, watch.Target{Path: r.manager.Path(), OnChange: r.onConfigChange})
	} else {
		r.logger.Debug().Str("dir", configDir).Msg("config directory does not exist, not watching config")
	}

	w, err := watch.New(r.manager.GetConfig().Watch.Debounce, r.logger, targets...)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	r.logger.Info().Str("theme", r.themePath).Msg("watching for changes, press Ctrl+C to stop")
	<-ctx.Done()
	r.logger.Info().Msg("stopped watching")
	return nil
}

func (r *regenerator) config() *config.Config {
	cfg := r.manager.GetConfig()
	r.flags.apply(cfg)
	return cfg
}

// resetNotifier rebuilds the notifier from the current config.
func (r *regenerator) resetNotifier() {
	newNotifier := r.newNotifier
	if newNotifier == nil {
		newNotifier = notify.New
	}
	n := newNotifier(r.config().NotifierKind(), r.logger)

	r.mu.Lock()
	r.notifier = n
	r.mu.Unlock()
}

func (r *regenerator) regenerate() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cfg := r.config()
	if err := cfg.Validate(); err != nil {
		return err
	}

	n, err := generate(r.themePath, cfg, r.out)
	if err != nil {
		return err
	}
	if n > 0 {
		dest := cfg.Output.Path
		if dest == "" {
			dest = "stdout"
		}
		r.notifier.ThemeWritten(dest, n)
	}
	return nil
}

func (r *regenerator) onThemeChange() {
	if err := r.regenerate(); err != nil {
		r.fail(err)
	}
}

func (r *regenerator) onConfigChange() {
	if err := r.manager.Reload(); err != nil {
		r.fail(err)
		return
	}
	r.resetNotifier()
	r.onThemeChange()
}

func (r *regenerator) fail(err error) {
	r.logger.Error().Err(err).Msg("failed to regenerate theme")

	r.mu.Lock()
	n := r.notifier
	r.mu.Unlock()
	n.Error(err.Error())
}
