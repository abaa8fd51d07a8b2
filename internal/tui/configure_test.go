package tui

import (
	"testing"

	"github.com/leonardotrapani/themetokens/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureValues_RoundTrip(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Derive.NeedsVariant = []string{"topBar", "primary"}
	cfg.Output.Path = "dist/theme.css"

	got := newConfigureValues(cfg).apply(cfg)
	assert.Equal(t, cfg, got)
}

func TestConfigureValues_Apply(t *testing.T) {
	cfg := config.DefaultConfig()
	values := newConfigureValues(cfg)
	values.needsVariant = " primary, ,secondary "
	values.format = "json"
	values.path = "  out.json "
	values.notifications = true
	values.notifyType = "desktop"

	got := values.apply(cfg)
	require.NoError(t, got.Validate())
	assert.Equal(t, []string{"primary", "secondary"}, got.Derive.NeedsVariant)
	assert.Equal(t, "json", got.Output.Format)
	assert.Equal(t, "out.json", got.Output.Path)
	assert.Equal(t, "desktop", got.NotifierKind())

	// the original is left untouched
	assert.Equal(t, "css", cfg.Output.Format)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a", "b"}, splitList("a,b"))
	assert.Equal(t, []string{"topBar"}, splitList(" topBar , "))
}

func TestValidateColor(t *testing.T) {
	assert.NoError(t, validateColor("#212b36"))
	assert.NoError(t, validateColor(" rgb(255, 255, 255) "))
	assert.Error(t, validateColor("var(--ink)"))
}

func TestBuildConfigureForm(t *testing.T) {
	form := buildConfigureForm(newConfigureValues(config.DefaultConfig()))
	assert.NotNil(t, form)
}
