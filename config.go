package erroz

import (
	"fmt"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Config is the file-configurable subset of Options.
//
// A typical application section looks like:
//
//	errors:
//	  include_stack: true
//	  language: tr
type Config struct {
	IncludeStack bool   `mapstructure:"include_stack"`
	Language     string `mapstructure:"language"`
}

// LoadConfig reads the Config stored under key in v.
// An empty key reads from the root of v. A missing section yields the
// zero Config.
func LoadConfig(v *viper.Viper, key string) (Config, error) {
	var cfg Config

	var err error
	if key == "" {
		err = v.Unmarshal(&cfg)
	} else {
		err = v.UnmarshalKey(key, &cfg)
	}
	if err != nil {
		return Config{}, platformerrors.Wrap(err, platformerrors.CodeInvalidConfig, "failed to unmarshal error config")
	}

	if cfg.Language != "" {
		if _, err := language.Parse(cfg.Language); err != nil {
			return Config{}, platformerrors.Wrap(err, platformerrors.CodeInvalidConfig,
				fmt.Sprintf("invalid language %q", cfg.Language))
		}
	}

	return cfg, nil
}

// Options converts the configuration into factory options.
func (c Config) Options() []Option {
	opts := []Option{WithIncludeStack(c.IncludeStack)}
	if c.Language != "" {
		opts = append(opts, WithLanguage(language.Make(c.Language)))
	}
	return opts
}
