package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-suika/internal/engine"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "suika.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadSuika("")
	if err != nil {
		t.Fatalf("LoadSuika: %v", err)
	}
	def := DefaultSuikaConfig()

	if cfg.EngineConfig() != def.EngineConfig() {
		t.Errorf("embedded engine config = %+v, expected %+v", cfg.EngineConfig(), def.EngineConfig())
	}
	if len(cfg.Fruits) != len(def.Fruits) {
		t.Fatalf("embedded fruits = %d, expected %d", len(cfg.Fruits), len(def.Fruits))
	}
	for i := range def.Fruits {
		if cfg.Fruits[i] != def.Fruits[i] {
			t.Errorf("fruit %d = %+v, expected %+v", i, cfg.Fruits[i], def.Fruits[i])
		}
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded config invalid: %v", err)
	}
}

func TestDefaultEngineConfig(t *testing.T) {
	if got := DefaultSuikaConfig().EngineConfig(); got != engine.DefaultConfig() {
		t.Errorf("EngineConfig() = %+v, expected engine defaults", got)
	}
}

func TestLoadCustomPathOverridesKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
pit:
  ceiling_y: 120
game_over:
  dwell_ms: 750
`)

	cfg, err := LoadSuika(path)
	if err != nil {
		t.Fatalf("LoadSuika: %v", err)
	}
	if cfg.Pit.CeilingY != 120 {
		t.Errorf("ceiling = %v, expected 120", cfg.Pit.CeilingY)
	}
	if got := cfg.EngineConfig().DwellTime; got != 750*time.Millisecond {
		t.Errorf("dwell = %v, expected 750ms", got)
	}
	// Untouched keys keep their defaults.
	if cfg.Pit.Width != 400 || cfg.Physics.Gravity != 0.3 {
		t.Errorf("defaults lost: width %v gravity %v", cfg.Pit.Width, cfg.Physics.Gravity)
	}
	if len(cfg.Fruits) != 9 {
		t.Errorf("fruits = %d, expected the default 9", len(cfg.Fruits))
	}
}

func TestLoadCustomFruitList(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
spawn:
  pool_size: 2
fruits:
  - { name: Small, radius: 10, score: 1, color: "#ffffff" }
  - { name: Medium, radius: 20, score: 5, color: "#ff0000" }
  - { name: Large, radius: 40, score: 25, color: "#00ff00" }
`)

	cfg, err := LoadSuika(path)
	if err != nil {
		t.Fatalf("LoadSuika: %v", err)
	}
	cat, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if cat.Len() != 3 {
		t.Fatalf("catalog length = %d, expected 3", cat.Len())
	}
	if pool := cat.SpawnPool(); len(pool) != 2 {
		t.Errorf("spawn pool = %v, expected 2 tiers", pool)
	}
	if top := cat.MustTierAt(2); top.Name != "Large" || top.Score != 25 {
		t.Errorf("top tier = %+v", top)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		invalid bool
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), false},
		{"bad yaml", writeConfig(t, t.TempDir(), "pit: [1, 2"), false},
		{"ceiling outside pit", writeConfig(t, t.TempDir(), "pit: {ceiling_y: 700}"), true},
		{"shrinking radii", writeConfig(t, t.TempDir(), `
fruits:
  - { name: A, radius: 20, score: 1 }
  - { name: B, radius: 10, score: 2 }
`), true},
		{"watermelon too wide", writeConfig(t, t.TempDir(), "pit: {width: 150}"), true},
		{"negative dwell", writeConfig(t, t.TempDir(), "game_over: {dwell_ms: -1}"), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadSuika(tc.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrInvalid); got != tc.invalid {
				t.Errorf("errors.Is(err, ErrInvalid) = %v, expected %v (err: %v)", got, tc.invalid, err)
			}
		})
	}
}

func TestLoadFromUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".suika", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, dir, "spawn: {y: 55}")

	cfg, err := LoadSuika("")
	if err != nil {
		t.Fatalf("LoadSuika: %v", err)
	}
	if cfg.Spawn.Y != 55 {
		t.Errorf("spawn y = %v, expected 55 from user config", cfg.Spawn.Y)
	}
}

func TestInvalidUserConfigFallsBack(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".suika", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := writeConfig(t, dir, "physics: {gravity: -1}")

	var out bytes.Buffer
	cfg, err := LoadSuikaLogged("", log.New(&out))
	if err != nil {
		t.Fatalf("LoadSuikaLogged: %v", err)
	}
	if cfg.Physics.Gravity != 0.3 {
		t.Errorf("gravity = %v, expected default after invalid user file", cfg.Physics.Gravity)
	}
	if !strings.Contains(out.String(), "ignoring invalid config file") || !strings.Contains(out.String(), path) {
		t.Errorf("expected a warning naming %s, got %q", path, out.String())
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultSuikaConfig())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	cfg, err := parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.EngineConfig() != engine.DefaultConfig() {
		t.Error("marshalled config should load back to the defaults")
	}
}
