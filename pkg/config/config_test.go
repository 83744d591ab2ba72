package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/docrender/pkg/backend"
	"github.com/arthur-debert/docrender/pkg/document"
	"github.com/arthur-debert/docrender/pkg/errors"
	"github.com/arthur-debert/docrender/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, AutoFormat, cfg.Render.Format)
	assert.Equal(t, "contents", cfg.Render.Unknown)
	assert.False(t, cfg.Render.DM)
	assert.Equal(t, 80, cfg.ASCII.Width)
	assert.Equal(t, 80, cfg.ANSI.Width)
	assert.Equal(t, backend.DefaultANSIIgnore, cfg.ANSI.Ignore)
	assert.Equal(t, 0, cfg.HTML.Width)
	assert.Equal(t, ".html", cfg.HTML.LinkSuffix)
	assert.Equal(t, 30, cfg.Footnotes.Rule)
	assert.Equal(t, "f4:L;100:L", cfg.Footnotes.Columns)
	assert.Equal(t, "/", cfg.Domain.BaseURL)
	assert.Empty(t, cfg.Styles.File)
}

func TestDefaultContent(t *testing.T) {
	assert.Contains(t, DefaultContent(), "[render]")
}

func TestLoadLayers(t *testing.T) {
	userDir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, userDir)
	writeFile(t, userDir, "config.toml", "[ascii]\nwidth = 60\n[render]\nunknown = \"echo\"\n")

	explicit := writeFile(t, t.TempDir(), "site.yaml", "ascii:\n  width: 50\nhtml:\n  link_suffix: ''\n")

	t.Run("user file", func(t *testing.T) {
		cfg, err := Load(Options{SkipEnv: true})
		require.NoError(t, err)
		assert.Equal(t, 60, cfg.ASCII.Width)
		assert.Equal(t, "echo", cfg.Render.Unknown)
		assert.Equal(t, ".html", cfg.HTML.LinkSuffix)
	})

	t.Run("explicit file over user file", func(t *testing.T) {
		cfg, err := Load(Options{File: explicit, SkipEnv: true})
		require.NoError(t, err)
		assert.Equal(t, 50, cfg.ASCII.Width)
		assert.Equal(t, "echo", cfg.Render.Unknown)
		assert.Empty(t, cfg.HTML.LinkSuffix)
	})

	t.Run("environment over files", func(t *testing.T) {
		t.Setenv("DOCRENDER_ASCII__WIDTH", "44")
		t.Setenv("DOCRENDER_DOMAIN__BASE_URL", "/srd")
		cfg, err := Load(Options{File: explicit})
		require.NoError(t, err)
		assert.Equal(t, 44, cfg.ASCII.Width)
		assert.Equal(t, "/srd", cfg.Domain.BaseURL)
	})

	t.Run("overrides last", func(t *testing.T) {
		t.Setenv("DOCRENDER_ASCII__WIDTH", "44")
		cfg, err := Load(Options{
			File:      explicit,
			Overrides: map[string]interface{}{"ascii.width": 33, "render.dm": true},
		})
		require.NoError(t, err)
		assert.Equal(t, 33, cfg.ASCII.Width)
		assert.True(t, cfg.Render.DM)
	})

	t.Run("skip user", func(t *testing.T) {
		cfg, err := Load(Options{SkipUser: true, SkipEnv: true})
		require.NoError(t, err)
		assert.Equal(t, 80, cfg.ASCII.Width)
	})
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, t.TempDir())
	dir := t.TempDir()

	tests := []struct {
		name string
		opts Options
		code errors.ErrorCode
	}{
		{
			name: "missing explicit file",
			opts: Options{File: filepath.Join(dir, "nope.toml")},
			code: errors.ErrConfigLoad,
		},
		{
			name: "malformed toml",
			opts: Options{File: writeFile(t, dir, "bad.toml", "[ascii\nwidth = ")},
			code: errors.ErrConfigParse,
		},
		{
			name: "unsupported extension",
			opts: Options{File: writeFile(t, dir, "conf.ini", "width=3")},
			code: errors.ErrConfigParse,
		},
		{
			name: "unknown format",
			opts: Options{Overrides: map[string]interface{}{"render.format": "pdf"}},
			code: errors.ErrConfigInvalid,
		},
		{
			name: "unknown policy",
			opts: Options{Overrides: map[string]interface{}{"render.unknown": "keep"}},
			code: errors.ErrConfigInvalid,
		},
		{
			name: "negative width",
			opts: Options{Overrides: map[string]interface{}{"html.width": -1}},
			code: errors.ErrConfigInvalid,
		},
		{
			name: "bad ignore pattern",
			opts: Options{Overrides: map[string]interface{}{"ansi.ignore": "(["}},
			code: errors.ErrConfigInvalid,
		},
		{
			name: "rule above 100",
			opts: Options{Overrides: map[string]interface{}{"footnotes.rule": 120}},
			code: errors.ErrConfigInvalid,
		},
		{
			name: "empty footnote columns",
			opts: Options{Overrides: map[string]interface{}{"footnotes.columns": " "}},
			code: errors.ErrConfigInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.SkipEnv = true
			_, err := Load(tt.opts)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"DOCRENDER_ASCII__WIDTH":      "ascii.width",
		"DOCRENDER_DOMAIN__BASE_URL":  "domain.base_url",
		"DOCRENDER_HTML__LINK_SUFFIX": "html.link_suffix",
	}
	for in, want := range tests {
		assert.Equal(t, want, envKey(in), in)
	}
}

func TestDocumentOptions(t *testing.T) {
	cfg, err := Load(Options{
		SkipUser: true,
		SkipEnv:  true,
		Overrides: map[string]interface{}{
			"render.unknown": "echo",
			"render.dm":      true,
			"ansi.width":     72,
		},
	})
	require.NoError(t, err)

	opts := cfg.DocumentOptions(backend.ANSI)
	assert.Equal(t, backend.ANSI, opts.Kind)
	assert.Equal(t, 72, opts.Width)
	assert.Equal(t, backend.DefaultANSIIgnore, opts.Ignore)
	assert.Equal(t, document.EchoUnknown, opts.Unknown)
	assert.True(t, opts.DM)
	assert.Equal(t, 30, opts.FootnoteRule)

	html := cfg.DocumentOptions(backend.HTML)
	assert.Equal(t, 0, html.Width)
	assert.Empty(t, html.Ignore)

	assert.Equal(t, 80, cfg.Output(backend.ASCII).Width)
}
