package keybinds

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfig_JSONC(t *testing.T) {
	data := []byte(`
// user overrides
{
  "version": "1.0",
  "global": {
    "ctrl+n": "tab_new", // extra new-tab key
    "ctrl+t": "noop",
  },
  /* tab bar */
  "tabbar": {
    "R": "tab_rename"
  }
}
`)

	config, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	if config.Global["ctrl+n"] != "tab_new" {
		t.Errorf("global ctrl+n = %q", config.Global["ctrl+n"])
	}
	if config.Global["ctrl+t"] != "noop" {
		t.Errorf("global ctrl+t = %q", config.Global["ctrl+t"])
	}
	if config.TabBar["R"] != "tab_rename" {
		t.Errorf("tabbar R = %q", config.TabBar["R"])
	}
}

func TestParseConfig_UnknownSection(t *testing.T) {
	if _, err := ParseConfig([]byte(`{"websocket": {"d": "ws_disconnect"}}`)); err == nil {
		t.Error("Expected error for unknown section")
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file uses defaults", func(t *testing.T) {
		r, err := LoadOrDefault(filepath.Join(dir, "missing.jsonc"))
		if err != nil {
			t.Fatalf("LoadOrDefault failed: %v", err)
		}
		if action, _ := r.Match(ContextEditor, "ctrl+t"); action != ActionTabNew {
			t.Errorf("Expected default ctrl+t, got %q", action)
		}
	})

	t.Run("empty path uses defaults", func(t *testing.T) {
		if _, err := LoadOrDefault(""); err != nil {
			t.Fatalf("LoadOrDefault failed: %v", err)
		}
	})

	t.Run("user overrides", func(t *testing.T) {
		path := filepath.Join(dir, "keybinds.jsonc")
		content := `{"global": {"ctrl+n": "tab_new", "ctrl+t": "noop"}}`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		r, err := LoadOrDefault(path)
		if err != nil {
			t.Fatalf("LoadOrDefault failed: %v", err)
		}
		if action, _ := r.Match(ContextEditor, "ctrl+n"); action != ActionTabNew {
			t.Errorf("Expected ctrl+n -> tab_new, got %q", action)
		}
		if _, ok := r.Match(ContextEditor, "ctrl+t"); ok {
			t.Error("ctrl+t should be disabled by noop")
		}
		if action, _ := r.Match(ContextEditor, "ctrl+w"); action != ActionTabClose {
			t.Errorf("Other defaults should survive, got %q", action)
		}
	})

	t.Run("invalid action rejected", func(t *testing.T) {
		path := filepath.Join(dir, "bad.jsonc")
		if err := os.WriteFile(path, []byte(`{"tabbar": {"x": "tab_explode"}}`), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := LoadOrDefault(path)
		if err == nil {
			t.Fatal("Expected error for unknown action")
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Expected ValidationError, got %T: %v", err, err)
		}
		if verr.Key != "x" || verr.Context != ContextTabBar {
			t.Errorf("Unexpected validation error %+v", verr)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(dir, "broken.jsonc")
		if err := os.WriteFile(path, []byte(`{"global": `), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadOrDefault(path); err == nil {
			t.Error("Expected error for malformed file")
		}
	})
}

func TestMarshalJSONC_RoundTrip(t *testing.T) {
	defaults := NewDefaultRegistry()

	data, err := MarshalJSONC(defaults)
	if err != nil {
		t.Fatalf("MarshalJSONC failed: %v", err)
	}
	text := string(data)

	if !strings.Contains(text, `"ctrl+t": "tab_new", // New tab`) {
		t.Errorf("Export should annotate bindings:\n%s", text)
	}

	config, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("Exported file should parse: %v\n%s", err, text)
	}
	if config.Version != ConfigVersion {
		t.Errorf("Version = %q", config.Version)
	}

	loaded := NewRegistry()
	if err := ApplyConfig(loaded, config); err != nil {
		t.Fatalf("ApplyConfig failed: %v", err)
	}

	for _, context := range Contexts {
		want := defaults.ListBindings(context)
		got := loaded.ListBindings(context)
		if len(got) != len(want) {
			t.Errorf("%s: %d bindings after round trip, want %d", context, len(got), len(want))
			continue
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s: binding %d = %+v, want %+v", context, i, got[i], want[i])
			}
		}
	}
}

func TestWriteDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "keybinds.jsonc")

	if err := WriteDefaults(path); err != nil {
		t.Fatalf("WriteDefaults failed: %v", err)
	}

	r, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("Written defaults should load: %v", err)
	}
	if action, _ := r.Match(ContextTabBar, "?"); action != ActionOpenHelp {
		t.Errorf("Expected ? -> open_help, got %q", action)
	}
}
