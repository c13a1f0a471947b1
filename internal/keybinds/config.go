package keybinds

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// ConfigVersion is written to exported files
const ConfigVersion = "1.0"

// Config represents the user's keybinding configuration.
// Each section maps a key to an action name; "noop" disables a default key.
type Config struct {
	Version string            `json:"version"`
	Global  map[string]string `json:"global,omitempty"`
	Editor  map[string]string `json:"editor,omitempty"`
	TabBar  map[string]string `json:"tabbar,omitempty"`
	Rename  map[string]string `json:"rename,omitempty"`
	Picker  map[string]string `json:"picker,omitempty"`
	History map[string]string `json:"history,omitempty"`
	Help    map[string]string `json:"help,omitempty"`
}

func (c *Config) sections() map[Context]map[string]string {
	return map[Context]map[string]string{
		ContextGlobal:  c.Global,
		ContextEditor:  c.Editor,
		ContextTabBar:  c.TabBar,
		ContextRename:  c.Rename,
		ContextPicker:  c.Picker,
		ContextHistory: c.History,
		ContextHelp:    c.Help,
	}
}

// ParseConfig parses JSONC (JSON with comments and trailing commas)
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.jsonc format: %w", err)
	}
	return &config, nil
}

// LoadConfig loads keybinding configuration from a JSONC file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// applyBindings registers every entry without checking it
func applyBindings(registry *Registry, config *Config) {
	for context, bindings := range config.sections() {
		for key, actionStr := range bindings {
			registry.Register(context, key, Action(actionStr))
		}
	}
}

// ApplyConfig applies user configuration to a registry.
// User bindings override default bindings. Nothing is applied when the
// configuration has validation errors.
func ApplyConfig(registry *Registry, config *Config) error {
	result := NewValidator().ValidateConfig(config)
	if result.HasErrors() {
		return &result.Errors[0]
	}

	applyBindings(registry, config)
	return nil
}

// LoadOrDefault loads user config if it exists, otherwise returns default registry
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()
	if configPath == "" {
		return registry, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		// A missing file means defaults
		if errors.Is(err, fs.ErrNotExist) {
			return registry, nil
		}
		return nil, fmt.Errorf("failed to load keybinds: %w", err)
	}

	if err := ApplyConfig(registry, config); err != nil {
		return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
	}

	return registry, nil
}

// MarshalJSONC renders a registry as a commented keybinds.jsonc document.
// Every binding carries the action description as a trailing comment.
func MarshalJSONC(registry *Registry) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("// awp keybindings\n")
	buf.WriteString("// Each section maps a key to an action. Bind a key to \"noop\" to disable it.\n")
	buf.WriteString("{\n")
	fmt.Fprintf(&buf, "  \"version\": %q", ConfigVersion)

	for _, context := range Contexts {
		bindings := registry.ListBindings(context)
		if len(bindings) == 0 {
			continue
		}

		fmt.Fprintf(&buf, ",\n  %q: {\n", string(context))
		for i, b := range bindings {
			key, err := json.Marshal(b.Key)
			if err != nil {
				return nil, fmt.Errorf("failed to encode key %q: %w", b.Key, err)
			}
			sep := ","
			if i == len(bindings)-1 {
				sep = ""
			}
			fmt.Fprintf(&buf, "    %s: %q%s // %s\n", key, string(b.Action), sep, GetActionInfo(b.Action).Description)
		}
		buf.WriteString("  }")
	}

	buf.WriteString("\n}\n")
	return buf.Bytes(), nil
}

// WriteDefaults writes the default keybindings to path
func WriteDefaults(path string) error {
	data, err := MarshalJSONC(NewDefaultRegistry())
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	return os.WriteFile(path, data, 0644)
}
