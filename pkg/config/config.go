package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/docrender/pkg/backend"
	"github.com/arthur-debert/docrender/pkg/document"
	"github.com/arthur-debert/docrender/pkg/errors"
	"github.com/arthur-debert/docrender/pkg/logging"
	"github.com/arthur-debert/docrender/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix starts every environment variable read as configuration.
// A double underscore separates sections: DOCRENDER_ASCII__WIDTH=60.
const EnvPrefix = "DOCRENDER_"

// AutoFormat picks ANSI on a terminal and ASCII otherwise.
const AutoFormat = "auto"

// Config is the complete docrender configuration.
type Config struct {
	Render    Render    `koanf:"render"`
	ASCII     Output    `koanf:"ascii"`
	ANSI      Output    `koanf:"ansi"`
	HTML      Output    `koanf:"html"`
	Footnotes Footnotes `koanf:"footnotes"`
	Styles    Styles    `koanf:"styles"`
	Domain    Domain    `koanf:"domain"`
}

// Render holds the document-wide settings.
type Render struct {
	Format  string `koanf:"format"`
	Unknown string `koanf:"unknown"`
	DM      bool   `koanf:"dm"`
}

// Output holds the settings of one backend.
type Output struct {
	Width      int    `koanf:"width"`
	Ignore     string `koanf:"ignore"`
	LinkSuffix string `koanf:"link_suffix"`
}

// Footnotes configures the block emitted when a root document finalizes.
type Footnotes struct {
	Rule    int    `koanf:"rule"`
	Columns string `koanf:"columns"`
}

type Styles struct {
	File string `koanf:"file"`
}

type Domain struct {
	BaseURL string `koanf:"base_url"`
	Catalog string `koanf:"catalog"`
}

// Options controls where Load looks for configuration.
type Options struct {
	// File is an explicit configuration file; it must exist.
	File string
	// SkipUser ignores the user configuration directory.
	SkipUser bool
	// SkipEnv ignores DOCRENDER_ environment variables.
	SkipEnv bool
	// Overrides are dotted keys applied last, typically from flags.
	Overrides map[string]interface{}
}

// Load builds the configuration from every layer and validates it.
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if !opts.SkipUser {
		if path := userConfigFile(); path != "" {
			if err := loadFile(k, path); err != nil {
				return nil, err
			}
			logger.Debug().Str("path", path).Msg("Loaded user config")
		}
	}

	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", opts.File)
		}
		if err := loadFile(k, opts.File); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", opts.File).Msg("Loaded config file")
	}

	if !opts.SkipEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
		}
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the embedded defaults alone.
func Default() (*Config, error) {
	return Load(Options{SkipUser: true, SkipEnv: true})
}

// envKey maps DOCRENDER_ASCII__WIDTH to ascii.width. Single underscores
// stay so keys like base_url can be set.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func userConfigFile() string {
	for _, path := range paths.UserConfigCandidates() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".toml", "":
		parser = toml.Parser()
	default:
		return errors.Newf(errors.ErrConfigParse, "unsupported config format %s", path)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
	}
	return nil
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	conf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, conf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}
	return &cfg, nil
}

// Validate reports the first setting no renderer could use.
func (c *Config) Validate() error {
	if c.Render.Format != AutoFormat {
		if _, err := backend.ParseKind(c.Render.Format); err != nil {
			return errors.Newf(errors.ErrConfigInvalid, "render.format: unknown format %q", c.Render.Format)
		}
	}
	if _, err := document.ParseUnknownPolicy(c.Render.Unknown); err != nil {
		return errors.Newf(errors.ErrConfigInvalid, "render.unknown: %q is not contents, drop or echo", c.Render.Unknown)
	}
	for name, out := range map[string]Output{"ascii": c.ASCII, "ansi": c.ANSI, "html": c.HTML} {
		if out.Width < 0 {
			return errors.Newf(errors.ErrConfigInvalid, "%s.width: must not be negative, got %d", name, out.Width)
		}
		if out.Ignore != "" {
			if _, err := regexp.Compile(out.Ignore); err != nil {
				return errors.Wrapf(err, errors.ErrConfigInvalid, "%s.ignore: invalid pattern", name)
			}
		}
	}
	if c.Footnotes.Rule < 0 || c.Footnotes.Rule > 100 {
		return errors.Newf(errors.ErrConfigInvalid, "footnotes.rule: %d is not a percentage", c.Footnotes.Rule)
	}
	if strings.TrimSpace(c.Footnotes.Columns) == "" {
		return errors.New(errors.ErrConfigInvalid, "footnotes.columns: must not be empty")
	}
	return nil
}

// Output returns the settings of a backend.
func (c *Config) Output(kind backend.Kind) Output {
	switch kind {
	case backend.ANSI:
		return c.ANSI
	case backend.HTML:
		return c.HTML
	default:
		return c.ASCII
	}
}

// DocumentOptions returns the options of a root document of kind.
func (c *Config) DocumentOptions(kind backend.Kind) backend.Options {
	out := c.Output(kind)
	unknown, _ := document.ParseUnknownPolicy(c.Render.Unknown)
	return backend.Options{
		Kind:            kind,
		Width:           out.Width,
		Ignore:          out.Ignore,
		Unknown:         unknown,
		DM:              c.Render.DM,
		FootnoteRule:    c.Footnotes.Rule,
		FootnoteColumns: c.Footnotes.Columns,
	}
}
