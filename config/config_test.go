package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/crankspin/input"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crankspin.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[device]
max_fps = 30.0

[terminal]
scale = 1
hold_timeout = "200ms"

[audio]
enabled = false
volume = 0.25

[metrics]
addr = ":9100"

[keys]
a = ["space", "enter"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Device.MaxFPS != 30 {
		t.Errorf("Expected max_fps 30, got %v", cfg.Device.MaxFPS)
	}
	if cfg.Device.DetentDegrees != Default().Device.DetentDegrees {
		t.Errorf("Expected default detent kept, got %v", cfg.Device.DetentDegrees)
	}
	if cfg.Terminal.Scale != 1 || cfg.Terminal.HoldTimeout != 200*time.Millisecond {
		t.Errorf("Expected scale 1 and 200ms hold, got %d and %v", cfg.Terminal.Scale, cfg.Terminal.HoldTimeout)
	}
	if cfg.Terminal.WheelStep != Default().Terminal.WheelStep {
		t.Errorf("Expected default wheel step kept, got %v", cfg.Terminal.WheelStep)
	}
	if cfg.Metrics.Addr != ":9100" || cfg.Metrics.Namespace != "crankspin" {
		t.Errorf("Expected metrics :9100/crankspin, got %s/%s", cfg.Metrics.Addr, cfg.Metrics.Namespace)
	}

	ac := cfg.AudioConfig()
	if ac.Enabled || ac.MasterVolume != 0.25 {
		t.Errorf("Expected disabled audio at 0.25, got %v at %v", ac.Enabled, ac.MasterVolume)
	}

	kt, err := cfg.KeyTable()
	if err != nil {
		t.Fatalf("KeyTable failed: %v", err)
	}
	if b := kt.Runes[' ']; b.Button != input.ButtonA {
		t.Errorf("Expected space bound to A, got %v", b.Button)
	}
	if b := kt.Keys[tcell.KeyEnter]; b.Button != input.ButtonA {
		t.Errorf("Expected enter bound to A, got %v", b.Button)
	}
	if _, ok := kt.Runes['x']; ok {
		t.Error("Expected default A key replaced")
	}
}

func TestLoadConversions(t *testing.T) {
	cfg := Default()
	cfg.Device.MaxFPS = 40
	cfg.Terminal.KeyStep = 5

	if dc := cfg.DeviceConfig(); dc.MaxFPS != 40 || dc.DetentDegrees != cfg.Device.DetentDegrees {
		t.Errorf("Unexpected device config %+v", dc)
	}
	if opts := cfg.TerminalOptions(); opts.KeyStep != 5 || opts.Scale != cfg.Terminal.Scale {
		t.Errorf("Unexpected terminal options %+v", opts)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[device]
max_fps = 30.0
turbo = true
`)
	_, err := Load(path)
	if !errors.Is(err, ErrUnknownKeys) {
		t.Errorf("Expected ErrUnknownKeys, got %v", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	bodies := map[string]string{
		"fps":     "[device]\nmax_fps = 0.0\n",
		"detent":  "[device]\ndetent_degrees = -1.0\n",
		"scale":   "[terminal]\nscale = 0\n",
		"hold":    "[terminal]\nhold_timeout = \"0s\"\n",
		"volume":  "[audio]\nvolume = 1.5\n",
		"action":  "[keys]\njump = [\"j\"]\n",
		"keyname": "[keys]\nup = [\"nosuchkey\"]\n",
	}
	for name, body := range bodies {
		_, err := Load(writeConfig(t, body))
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", name, err)
		}
	}
}

func TestLoadSyntaxError(t *testing.T) {
	_, err := Load(writeConfig(t, "[device\nmax_fps = 30"))
	if err == nil {
		t.Error("Expected parse error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	if _, err := Load(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error from Load, got %v", err)
	}

	cfg, err := LoadOptional(path)
	if err != nil {
		t.Fatalf("Expected LoadOptional to fall back to defaults, got %v", err)
	}
	if cfg.Device.MaxFPS != Default().Device.MaxFPS {
		t.Errorf("Expected default fps, got %v", cfg.Device.MaxFPS)
	}
}
