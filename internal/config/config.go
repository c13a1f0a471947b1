package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755

	// EnvPrefix prefixes environment overrides (AWP_STATUS_ATTACH_DELAY=1s)
	EnvPrefix = "AWP"
)

var (
	// ConfigDir is the global configuration directory (~/.awp)
	ConfigDir string

	// ConfigFile is the default configuration file
	ConfigFile string

	// KeybindsFile is the default keybindings file
	KeybindsFile string

	// LogFile is the default log file
	LogFile string
)

// Config holds application configuration
type Config struct {
	Editor   EditorConfig   `mapstructure:"editor" yaml:"editor"`
	Status   StatusConfig   `mapstructure:"status" yaml:"status"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Keybinds KeybindsConfig `mapstructure:"keybinds" yaml:"keybinds"`
	History  HistoryConfig  `mapstructure:"history" yaml:"history"`
}

// EditorConfig holds tab and text surface settings
type EditorConfig struct {
	PlaceholderName string `mapstructure:"placeholder_name" yaml:"placeholder_name"`
	WelcomeText     string `mapstructure:"welcome_text" yaml:"welcome_text"`
	Language        string `mapstructure:"language" yaml:"language"`
	Theme           string `mapstructure:"theme" yaml:"theme"`
	LineNumbers     bool   `mapstructure:"line_numbers" yaml:"line_numbers"`
	TabWidth        int    `mapstructure:"tab_width" yaml:"tab_width"`
	MaxTabs         int    `mapstructure:"max_tabs" yaml:"max_tabs"` // 0 = unlimited
}

// StatusConfig holds the launch animation and status bar timings
type StatusConfig struct {
	AttachDelay    time.Duration `mapstructure:"attach_delay" yaml:"attach_delay"`
	BannerDuration time.Duration `mapstructure:"banner_duration" yaml:"banner_duration"`
	MessageTimeout time.Duration `mapstructure:"message_timeout" yaml:"message_timeout"` // 0 = never clear
	BannerText     string        `mapstructure:"banner_text" yaml:"banner_text"`
}

// LogConfig holds log sink settings
type LogConfig struct {
	File    string `mapstructure:"file" yaml:"file"`
	Level   string `mapstructure:"level" yaml:"level"`
	Journal bool   `mapstructure:"journal" yaml:"journal"`
}

// KeybindsConfig points at the user keybindings file
type KeybindsConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// HistoryConfig holds closed-tab history settings
type HistoryConfig struct {
	Limit int `mapstructure:"limit" yaml:"limit"`
}

// Initialize sets up the configuration directory and default paths
// It creates ~/.awp/ if it doesn't exist
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	return InitializeAt(filepath.Join(homeDir, ".awp"))
}

// InitializeAt sets the default paths below dir and creates it
func InitializeAt(dir string) error {
	ConfigDir = dir
	ConfigFile = filepath.Join(ConfigDir, "config.yaml")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.jsonc")
	LogFile = filepath.Join(ConfigDir, "awp.log")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("editor.placeholder_name", "Untitled Tab")
	v.SetDefault("editor.welcome_text", "-- Welcome to AWP!")
	v.SetDefault("editor.language", "lua")
	v.SetDefault("editor.theme", "monokai")
	v.SetDefault("editor.line_numbers", true)
	v.SetDefault("editor.tab_width", 4)
	v.SetDefault("editor.max_tabs", 0)

	v.SetDefault("status.attach_delay", "500ms")
	v.SetDefault("status.banner_duration", "2s")
	v.SetDefault("status.message_timeout", "3s")
	v.SetDefault("status.banner_text", "AWP fully launched")

	v.SetDefault("log.file", LogFile)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.journal", false)

	v.SetDefault("keybinds.file", KeybindsFile)

	v.SetDefault("history.limit", 20)
}

// Load reads configuration from file and env. Env var overrides use prefix AWP_.
// An explicit path must exist; the default path is optional.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(ExpandPath(path))
	} else if ConfigFile != "" {
		v.SetConfigFile(ConfigFile)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if explicit || !isNotFound(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	c.Log.File = ExpandPath(c.Log.File)
	c.Keybinds.File = ExpandPath(c.Keybinds.File)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Default returns the configuration with every default applied
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var c Config
	// Defaults always decode
	_ = v.Unmarshal(&c)
	return &c
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Status.AttachDelay < 0 {
		return fmt.Errorf("status.attach_delay must not be negative (got %s)", c.Status.AttachDelay)
	}
	if c.Status.BannerDuration < 0 {
		return fmt.Errorf("status.banner_duration must not be negative (got %s)", c.Status.BannerDuration)
	}
	if c.Status.MessageTimeout < 0 {
		return fmt.Errorf("status.message_timeout must not be negative (got %s)", c.Status.MessageTimeout)
	}
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return fmt.Errorf("editor.tab_width must be between 1 and 16 (got %d)", c.Editor.TabWidth)
	}
	if c.Editor.MaxTabs < 0 {
		return fmt.Errorf("editor.max_tabs must not be negative (got %d)", c.Editor.MaxTabs)
	}
	if c.History.Limit < 0 {
		return fmt.Errorf("history.limit must not be negative (got %d)", c.History.Limit)
	}
	return nil
}

// YAML renders the configuration as YAML
func (c *Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

// ExpandPath expands a leading ~/ to the home directory
func ExpandPath(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
