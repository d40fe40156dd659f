// Package config loads izquery settings from defaults, a YAML file, the
// environment and command line flags.
package config

import (
	"os"
	"strings"
	"unicode/utf8"

	query "github.com/izayoijiichan/izayoi-data-query"
	"github.com/izayoijiichan/izayoi-data-query/dialect"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes the environment variables read by Load,
// e.g. IZQUERY_DIALECT.
const EnvPrefix = "IZQUERY_"

// output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// default settings
const (
	DefaultDialect = "sqlserver"
	DefaultOutput  = OutputText
)

// DefaultConfigFiles are looked up in the working directory when no config
// file is given.
var DefaultConfigFiles = []string{"izquery.yaml", "izquery.yml"}

// ErrInvalidConfig is returned for settings out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of a build.
type Config struct {
	Dialect     string `koanf:"dialect"`
	Version     int    `koanf:"version"`
	Format      bool   `koanf:"format"`
	Indent      int    `koanf:"indent"`
	BeforeComma bool   `koanf:"before_comma"`
	// Quotes overrides the quotation marks of the dialect: "none" or a pair
	// of characters such as "[]".
	Quotes     string `koanf:"quotes"`
	BufferSize int    `koanf:"buffer_size"`
	Output     string `koanf:"output"`
	Verbose    bool   `koanf:"verbose"`

	// File is the config file read, if any.
	File string `koanf:"-"`
}

// flagKeys maps flag names to config keys where they differ.
var flagKeys = map[string]string{
	"rdb-version": "version",
}

// Load reads the configuration. Precedence from highest to lowest:
// flags, environment, config file, defaults. Only flags set on the command
// line take part.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"dialect":     DefaultDialect,
		"indent":      query.DefaultIndentSpace,
		"buffer_size": query.DefaultInitialBufferSize,
		"output":      DefaultOutput,
	}, "."), nil); err != nil {
		return nil, errors.Wrap(err, "load defaults")
	}

	cfgFile = findConfigFile(cfgFile)
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", cfgFile)
		}
	}

	// IZQUERY_BEFORE_COMMA -> before_comma
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env vars")
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				key = strings.ReplaceAll(f.Name, "-", "_")
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, errors.Wrap(err, "load flags")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	cfg.File = cfgFile
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// findConfigFile returns explicit if set, otherwise the first default
// config file present.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range DefaultConfigFiles {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if _, err := dialect.Parse(c.Dialect); err != nil {
		return err
	}
	if c.Indent < 0 {
		return errors.Wrapf(ErrInvalidConfig, "indent %d", c.Indent)
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		return errors.Wrapf(ErrInvalidConfig, "output %q, want %s or %s", c.Output, OutputText, OutputJSON)
	}
	if _, err := c.quotationMarks(dialect.None); err != nil {
		return err
	}
	return nil
}

// QueryOption returns the builder option described by the settings.
func (c *Config) QueryOption() (*query.QueryOption, error) {
	kind, err := dialect.Parse(c.Dialect)
	if err != nil {
		return nil, err
	}
	marks, err := c.quotationMarks(kind)
	if err != nil {
		return nil, err
	}
	option := query.NewQueryOption(kind)
	option.RdbVersion = c.Version
	option.QuotationMarks = marks
	option.EnableFormat = c.Format
	option.IndentSpace = c.Indent
	option.BeforeComma = c.BeforeComma
	if c.BufferSize > 0 {
		option.InitialBufferSize = c.BufferSize
	}
	return option, nil
}

func (c *Config) quotationMarks(kind dialect.Kind) (query.QuotationMarks, error) {
	switch c.Quotes {
	case "":
		return query.NewQuotationMarks(kind.QuotationMarks()), nil
	case "none":
		return query.QuotationMarks{}, nil
	}
	if utf8.RuneCountInString(c.Quotes) != 2 {
		return query.QuotationMarks{}, errors.Wrapf(ErrInvalidConfig, "quotes %q, want none or a pair like []", c.Quotes)
	}
	left, size := utf8.DecodeRuneInString(c.Quotes)
	return query.NewQuotationMarks(string(left), c.Quotes[size:]), nil
}
