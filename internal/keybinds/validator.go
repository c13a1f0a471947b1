package keybinds

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// ValidationError represents a keybinding validation error
type ValidationError struct {
	Type    string // "invalid", "warning"
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s in context '%s': %s", e.Type, e.Key, e.Context, e.Message)
}

// ValidationResult contains all validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// String returns a human-readable summary of validation results
func (r *ValidationResult) String() string {
	var sb strings.Builder

	if len(r.Errors) > 0 {
		fmt.Fprintf(&sb, "Errors (%d):\n", len(r.Errors))
		for _, err := range r.Errors {
			fmt.Fprintf(&sb, "  - %s\n", err.Error())
		}
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(&sb, "Warnings (%d):\n", len(r.Warnings))
		for _, warn := range r.Warnings {
			fmt.Fprintf(&sb, "  - %s\n", warn.Error())
		}
	}

	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}

	return sb.String()
}

func (r *ValidationResult) add(kind string, context Context, key, message string) {
	e := ValidationError{Type: kind, Context: context, Key: key, Message: message}
	if kind == "warning" {
		r.Warnings = append(r.Warnings, e)
		return
	}
	r.Errors = append(r.Errors, e)
}

func (r *ValidationResult) sort() {
	cmp := func(a, b ValidationError) int {
		if c := strings.Compare(string(a.Context), string(b.Context)); c != 0 {
			return c
		}
		return strings.Compare(a.Key, b.Key)
	}
	slices.SortFunc(r.Errors, cmp)
	slices.SortFunc(r.Warnings, cmp)
}

// Validator validates keybinding configurations
type Validator struct {
	// reservedKeys are keys that should not be rebound
	reservedKeys map[string]Action

	// contextHierarchy defines which contexts fall back to which.
	// Modal contexts are absent: they never see global bindings.
	contextHierarchy map[Context]Context
}

// NewValidator creates a new keybinding validator
func NewValidator() *Validator {
	return &Validator{
		reservedKeys: map[string]Action{
			"ctrl+c": ActionQuitForce, // Force quit should always work
		},
		contextHierarchy: map[Context]Context{
			ContextEditor: ContextGlobal,
			ContextTabBar: ContextGlobal,
		},
	}
}

// ValidateRegistry validates an entire registry
func (v *Validator) ValidateRegistry(registry *Registry) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	v.checkEntries(registry, result)
	v.checkReservedKeys(registry, result)
	v.checkGlobalPrintable(registry, result)
	v.checkShadowing(registry, result)

	result.sort()
	return result
}

// ValidateConfig validates a configuration before applying it
func (v *Validator) ValidateConfig(config *Config) *ValidationResult {
	registry := NewRegistry()
	applyBindings(registry, config)
	return v.ValidateRegistry(registry)
}

// checkEntries rejects malformed keys, unknown actions and unknown contexts
func (v *Validator) checkEntries(registry *Registry, result *ValidationResult) {
	for context, bindings := range registry.bindings {
		if !IsKnownContext(context) {
			result.add("invalid", context, "", "unknown context")
			continue
		}
		for key, action := range bindings {
			if err := ValidateKey(key); err != nil {
				result.add("invalid", context, key, err.Error())
			}
			if err := ValidateAction(string(action)); err != nil {
				result.add("invalid", context, key, err.Error())
			}
		}
	}
}

// checkReservedKeys checks if any reserved keys have been rebound
func (v *Validator) checkReservedKeys(registry *Registry, result *ValidationResult) {
	for context, bindings := range registry.bindings {
		for key, action := range bindings {
			reserved, ok := v.reservedKeys[key]
			if ok && action != reserved {
				result.add("warning", context, key, fmt.Sprintf("reserved key rebound to %s (may cause issues)", action))
			}
		}
	}
}

// checkGlobalPrintable warns about plain characters in the global context,
// which would swallow typing in the editor
func (v *Validator) checkGlobalPrintable(registry *Registry, result *ValidationResult) {
	for key, action := range registry.bindings[ContextGlobal] {
		if action == ActionNoOp {
			continue
		}
		if utf8.RuneCountInString(key) == 1 {
			result.add("warning", ContextGlobal, key, "printable key bound globally captures editor input")
		}
	}
}

// checkShadowing checks for context-specific bindings that shadow global bindings
func (v *Validator) checkShadowing(registry *Registry, result *ValidationResult) {
	for context, bindings := range registry.bindings {
		parent, ok := v.contextHierarchy[context]
		if !ok {
			continue
		}
		parentBindings := registry.bindings[parent]

		for key, action := range bindings {
			if parentAction, has := parentBindings[key]; has && action != parentAction {
				result.add("warning", context, key, fmt.Sprintf("shadows %s binding (%s -> %s)", parent, parentAction, action))
			}
		}
	}
}

var validModifiers = []string{"ctrl+", "alt+", "shift+", "super+"}

// ValidateKey checks if a key string is valid
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}
	if strings.TrimSpace(key) != key {
		return fmt.Errorf("key has surrounding whitespace: %q", key)
	}

	for _, mod := range validModifiers {
		if key == mod {
			return fmt.Errorf("modifier without key: %s", key)
		}
	}

	return nil
}

// ValidateAction checks if an action string is valid
func ValidateAction(actionStr string) error {
	if actionStr == "" {
		return fmt.Errorf("action cannot be empty")
	}
	if !IsKnownAction(Action(actionStr)) {
		return fmt.Errorf("unknown action %q", actionStr)
	}
	return nil
}
