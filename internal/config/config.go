package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. MULTIQUIZ_QUESTIONS.
const EnvPrefix = "MULTIQUIZ"

// Config holds the resolved runtime settings.
type Config struct {
	// Questions is the question-set path.
	Questions string `mapstructure:"questions"`

	// Shuffle randomizes question order on every session start.
	Shuffle bool `mapstructure:"shuffle"`

	Log LogConfig `mapstructure:"log"`
}

// LogConfig configures the rotating log file.
type LogConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// flagKeys maps cobra flag names to config keys.
var flagKeys = map[string]string{
	"questions": "questions",
	"log-file":  "log.file",
	"log-level": "log.level",
}

// Load resolves configuration from, in priority order: flags, MULTIQUIZ_*
// environment variables, the YAML file at configPath (or the default
// location when empty), and defaults. A missing file is not an error unless
// configPath was given explicitly.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	} else if dir, err := defaultConfigDir(); err == nil {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// --no-shuffle only ever turns shuffling off.
	if flags != nil {
		if noShuffle, err := flags.GetBool("no-shuffle"); err == nil && noShuffle {
			cfg.Shuffle = false
		}
	}

	if cfg.Log.File == "" {
		p, err := DefaultLogPath()
		if err != nil {
			return nil, err
		}
		cfg.Log.File = p
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("questions", "questions.json")
	v.SetDefault("shuffle", true)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
}

// defaultConfigDir returns $XDG_CONFIG_HOME/multiquiz or ~/.config/multiquiz.
func defaultConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "multiquiz"), nil
}

// DefaultLogPath resolves the log file path in priority order:
// 1. $XDG_STATE_HOME/multiquiz/multiquiz.log
// 2. ~/.local/state/multiquiz/multiquiz.log
func DefaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "multiquiz", "multiquiz.log"), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
