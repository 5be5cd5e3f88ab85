// Package config resolves settings from flags, the environment and an
// optional .nurhuda.yaml file.
package config

import (
	"errors"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override, e.g. NURHUDA_DEBUG.
	EnvPrefix = "NURHUDA"
	// PathEnv names an extra directory searched for the config file.
	PathEnv = "NURHUDA_CONFIG_PATH"

	KeyCatalog   = "catalog"
	KeyCardWidth = "card_width"
	KeyDebug     = "debug"
	KeyLogFile   = "log_file"

	DefaultCardWidth = 34
)

// Config holds resolved settings.
type Config struct {
	// Catalog is a YAML catalog path; empty means the embedded default.
	Catalog   string `json:"catalog" yaml:"catalog"`
	CardWidth int    `json:"card_width" yaml:"card_width"`
	Debug     bool   `json:"debug" yaml:"debug"`
	LogFile   string `json:"log_file" yaml:"log_file"`
	// Source is the config file that was read, if any.
	Source string `json:"-" yaml:"-"`
}

// Loader reads configuration through its own viper instance.
type Loader struct {
	v *viper.Viper
	// Dir, when set, is searched before the default locations.
	Dir string
}

// NewLoader returns a loader with defaults and env bindings applied.
func NewLoader() *Loader {
	v := viper.New()
	v.SetDefault(KeyCatalog, "")
	v.SetDefault(KeyCardWidth, DefaultCardWidth)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLogFile, "")
	v.SetConfigName(".nurhuda") // .yaml is implicit
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return &Loader{v: v}
}

// BindFlags lets set flags override file and env values. Flags that are
// not present on fs are ignored.
func (l *Loader) BindFlags(fs *pflag.FlagSet) error {
	flags := map[string]string{
		KeyCatalog:   "catalog",
		KeyCardWidth: "card-width",
		KeyDebug:     "debug",
		KeyLogFile:   "log-file",
	}
	for key, name := range flags {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the config file, if one exists, and returns the merged result.
func (l *Loader) Load() (*Config, error) {
	if l.Dir != "" {
		l.v.AddConfigPath(l.Dir)
	}
	if override := os.Getenv(PathEnv); override != "" {
		l.v.AddConfigPath(override)
	}
	l.v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		l.v.AddConfigPath(home)
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		Catalog:   l.v.GetString(KeyCatalog),
		CardWidth: l.v.GetInt(KeyCardWidth),
		Debug:     l.v.GetBool(KeyDebug),
		LogFile:   l.v.GetString(KeyLogFile),
		Source:    l.v.ConfigFileUsed(),
	}
	if cfg.CardWidth <= 0 {
		cfg.CardWidth = DefaultCardWidth
	}
	for _, p := range []*string{&cfg.Catalog, &cfg.LogFile} {
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return nil, err
		}
		*p = expanded
	}
	return cfg, nil
}
