package vt

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the parser's enumerated tunables (spec.md §6,
// "Configuration (enumerated)"). Zero-value fields are filled in with
// DefaultConfig's values by Normalize, matching the teacher's habit of a
// small options struct with sane defaults (terminal/terminal.go's
// RichTextTerminalOption, generalized to a data struct loadable from
// YAML rather than only functional options).
type Config struct {
	// BufferSize is the ByteBuffer's logical capacity in bytes.
	BufferSize int `yaml:"buffer_size"`

	// PendingWaitTime bounds how long a synchronized-update ("pending
	// mode") batch may be held before being forced to drain.
	PendingWaitTime time.Duration `yaml:"pending_wait_time"`

	// InputDelay is the lower bound on how long parse() waits for more
	// input to arrive before flushing what it already has.
	InputDelay time.Duration `yaml:"input_delay"`

	// MaxEscapeCodeLength bounds OSC/DCS/APC/PM/SOS payload length
	// (default BufferSize/4).
	MaxEscapeCodeLength int `yaml:"max_escape_code_length"`

	// MaxCSIParameters bounds the number of ;-or-: separated parameters
	// in one CSI sequence.
	MaxCSIParameters int `yaml:"max_csi_parameters"`

	// MaxCSIDigits bounds the number of digits accumulated for a single
	// CSI parameter before the sequence is aborted as overflowed.
	MaxCSIDigits int `yaml:"max_csi_digits"`
}

// DefaultConfig returns the spec-mandated defaults.
func DefaultConfig() Config {
	c := Config{
		BufferSize:      1 << 20,
		PendingWaitTime: 2 * time.Second,
		InputDelay:      1 * time.Millisecond,
	}
	c.MaxEscapeCodeLength = c.BufferSize / 4
	c.MaxCSIParameters = 256
	c.MaxCSIDigits = 16
	return c
}

// Normalize fills zero-valued fields with DefaultConfig's values and
// derives MaxEscapeCodeLength from BufferSize when it wasn't set
// explicitly.
func (c *Config) Normalize() {
	d := DefaultConfig()
	if c.BufferSize <= 0 {
		c.BufferSize = d.BufferSize
	}
	if c.PendingWaitTime <= 0 {
		c.PendingWaitTime = d.PendingWaitTime
	}
	if c.InputDelay <= 0 {
		c.InputDelay = d.InputDelay
	}
	if c.MaxEscapeCodeLength <= 0 {
		c.MaxEscapeCodeLength = c.BufferSize / 4
	}
	if c.MaxCSIParameters <= 0 {
		c.MaxCSIParameters = d.MaxCSIParameters
	}
	if c.MaxCSIDigits <= 0 {
		c.MaxCSIDigits = d.MaxCSIDigits
	}
}

// LoadConfig reads a YAML config file, applying defaults for anything it
// doesn't set. A missing file is not an error; it simply yields
// DefaultConfig().
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, err
	}
	var loaded Config
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return Config{}, err
	}
	loaded.Normalize()
	return loaded, nil
}
