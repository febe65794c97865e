package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/kchaow/filemanager"
	"github.com/kchaow/filemanager/internal/i18n"
	"github.com/kchaow/filemanager/internal/util"
)

// Config contains runtime configuration values for the file manager.
// It is built once at startup and treated as read-only afterwards.
type Config struct {
	DefaultDir string        // Directory used when "-" is entered at the directory prompt (Default user home)
	Lang       string        // Console language, "ru" or "en" (Default "ru")
	LogLvl     util.LogLevel // Internal log level (Default warn)
	LogFile    string        // Log destination; empty means stderr
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
//
// LogLvl holds the CLI verbosity (1 error .. 5 trace), not the internal level.
// Environment keys are FILEMANAGER_DEFAULT_DIR, FILEMANAGER_LANG,
// FILEMANAGER_LOG_LVL and FILEMANAGER_LOG_FILE.
type ConfigOverride struct {
	DefaultDir *string `yaml:"default_dir,omitempty" json:"default_dir,omitempty" toml:"default_dir,omitempty" split_words:"true"`
	Lang       *string `yaml:"lang,omitempty" json:"lang,omitempty" toml:"lang,omitempty" split_words:"true"`
	LogLvl     *int    `yaml:"verbose,omitempty" json:"verbose,omitempty" toml:"verbose,omitempty" split_words:"true"`
	LogFile    *string `yaml:"log_file,omitempty" json:"log_file,omitempty" toml:"log_file,omitempty" split_words:"true"`
}

// DefaultDir resolves the platform home directory, falling back to the
// working directory when it cannot be determined.
func DefaultDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		DefaultDir: DefaultDir(),
		Lang:       DefaultLang,
		LogLvl:     DefaultLogLvl,
		LogFile:    DefaultLogFile,
	}
}

// NewConfig creates a Config from defaults with override applied on top.
// A nil override yields the defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.DefaultDir != nil {
		c.DefaultDir = *override.DefaultDir
	}
	if override.Lang != nil {
		c.Lang = strings.ToLower(strings.TrimSpace(*override.Lang))
	}
	if override.LogLvl != nil {
		c.LogLvl = VerboseToLogLevel(*override.LogLvl)
	}
	if override.LogFile != nil {
		c.LogFile = *override.LogFile
	}
}

// Validate checks that the configuration can be used to start the console
func (c *Config) Validate() error {
	if !i18n.Supported(c.Lang) {
		return fmt.Errorf("unsupported language %q: %w", c.Lang, filemanager.ErrValidation)
	}
	if c.DefaultDir == "" {
		return fmt.Errorf("default directory is empty: %w", filemanager.ErrValidation)
	}
	return nil
}

// VerboseToLogLevel clamps a CLI verbosity to 1..5 and maps it to a log level
func VerboseToLogLevel(verbose int) util.LogLevel {
	verbose = min(max(verbose, ErrorVerbose), TraceVerbose)
	lvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	return lvls[verbose-1]
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports YAML (.yaml, .yml), JSON (.json) and TOML (.toml) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := sonic.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// LoadEnvOverride reads FILEMANAGER_* environment variables into an override.
// Unset variables leave their fields nil.
func LoadEnvOverride() (*ConfigOverride, error) {
	var override ConfigOverride
	if err := envconfig.Process(EnvPrefix, &override); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}
	return &override, nil
}

// Load builds the startup configuration: defaults, then the optional config
// file, then the environment, then flags. Each later layer wins.
func Load(path string, flags *ConfigOverride) (*Config, error) {
	cfg := NewDefaultConfig()
	if path != "" {
		override, err := LoadConfigOverrideFile(path)
		if err != nil {
			return nil, err
		}
		cfg.Merge(override)
	}

	env, err := LoadEnvOverride()
	if err != nil {
		return nil, err
	}
	cfg.Merge(env)

	if flags != nil {
		cfg.Merge(flags)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
