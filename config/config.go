// Package config loads crankspin settings from TOML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/crankspin/audio"
	"github.com/lixenwraith/crankspin/constants"
	"github.com/lixenwraith/crankspin/device"
	"github.com/lixenwraith/crankspin/input"
	"github.com/lixenwraith/crankspin/terminal"
)

// DefaultPath is read when no -config flag is given
const DefaultPath = "crankspin.toml"

var (
	ErrUnknownKeys = errors.New("unknown config keys")
	ErrInvalid     = errors.New("invalid config")
)

// Config is the decoded settings file
type Config struct {
	Device   DeviceSection       `toml:"device"`
	Terminal TerminalSection     `toml:"terminal"`
	Audio    AudioSection        `toml:"audio"`
	Metrics  MetricsSection      `toml:"metrics"`
	Keys     map[string][]string `toml:"keys"`
}

type DeviceSection struct {
	MaxFPS        float32 `toml:"max_fps"`
	DetentDegrees float32 `toml:"detent_degrees"`
}

type TerminalSection struct {
	Scale       int           `toml:"scale"`
	HoldTimeout time.Duration `toml:"hold_timeout"`
	WheelStep   float32       `toml:"wheel_step"`
	KeyStep     float32       `toml:"key_step"`
}

type AudioSection struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type MetricsSection struct {
	// Addr enables the /metrics listener when non-empty
	Addr      string `toml:"addr"`
	Namespace string `toml:"namespace"`
}

// Default returns built-in settings
func Default() *Config {
	ac := audio.DefaultAudioConfig()
	return &Config{
		Device: DeviceSection{
			MaxFPS:        constants.PanelMaxFPS,
			DetentDegrees: constants.DetentDegrees,
		},
		Terminal: TerminalSection{
			Scale:       constants.PixelScale,
			HoldTimeout: constants.HoldTimeout,
			WheelStep:   constants.WheelStep,
			KeyStep:     constants.KeyStep,
		},
		Audio: AudioSection{
			Enabled: ac.Enabled,
			Volume:  ac.MasterVolume,
		},
		Metrics: MetricsSection{
			Namespace: "crankspin",
		},
	}
}

// Load decodes path over the defaults and validates the result
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("load config %s: %w: %s", path, ErrUnknownKeys, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional is Load with a missing file treated as defaults
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate rejects out-of-range values and bad key bindings
func (c *Config) Validate() error {
	switch {
	case c.Device.MaxFPS <= 0:
		return fmt.Errorf("%w: device.max_fps must be positive, got %v", ErrInvalid, c.Device.MaxFPS)
	case c.Device.DetentDegrees < 0:
		return fmt.Errorf("%w: device.detent_degrees must not be negative, got %v", ErrInvalid, c.Device.DetentDegrees)
	case c.Terminal.Scale <= 0:
		return fmt.Errorf("%w: terminal.scale must be positive, got %d", ErrInvalid, c.Terminal.Scale)
	case c.Terminal.HoldTimeout <= 0:
		return fmt.Errorf("%w: terminal.hold_timeout must be positive, got %v", ErrInvalid, c.Terminal.HoldTimeout)
	case c.Terminal.WheelStep <= 0 || c.Terminal.KeyStep <= 0:
		return fmt.Errorf("%w: terminal crank steps must be positive", ErrInvalid)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be within [0, 1], got %v", ErrInvalid, c.Audio.Volume)
	}

	if _, err := c.KeyTable(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// DeviceConfig returns the device section as device settings
func (c *Config) DeviceConfig() device.Config {
	return device.Config{
		MaxFPS:        c.Device.MaxFPS,
		DetentDegrees: c.Device.DetentDegrees,
	}
}

// TerminalOptions returns the terminal section as frontend options
func (c *Config) TerminalOptions() terminal.Options {
	return terminal.Options{
		Scale:       c.Terminal.Scale,
		HoldTimeout: c.Terminal.HoldTimeout,
		WheelStep:   c.Terminal.WheelStep,
		KeyStep:     c.Terminal.KeyStep,
	}
}

// AudioConfig returns the audio section as sound manager settings
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.Volume
	return ac
}

// KeyTable applies [keys] overrides to the default bindings
func (c *Config) KeyTable() (*input.KeyTable, error) {
	return input.ParseKeyBindings(c.Keys)
}
