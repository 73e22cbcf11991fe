package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type AppConfig struct {
	HTTPAddr string `yaml:"http_addr"`
	// TypstBin is the typst executable used for PDF output.
	TypstBin string `yaml:"typst_bin"`
	// Extensions turns on chords-over-lyrics parsing by default; the
	// --extensions flag overrides it per invocation.
	Extensions bool   `yaml:"extensions"`
	LogLevel   string `yaml:"log_level"`
}

func defaults() AppConfig {
	return AppConfig{
		HTTPAddr: ":8080",
		TypstBin: "typst",
		LogLevel: "info",
	}
}

// Load reads a YAML config file on top of the defaults. A missing path
// just yields the defaults; a present but unreadable or invalid file is
// an error.
func Load(path string) (AppConfig, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "reading config file %s", path)
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config file %s", path)
	}
	return cfg, nil
}

// SetupLogger applies the configured level to the global logrus logger.
func (c AppConfig) SetupLogger() error {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "unable to parse %q as a log level", c.LogLevel)
	}
	logrus.SetLevel(lvl)
	return nil
}
