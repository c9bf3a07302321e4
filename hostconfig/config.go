// Package hostconfig loads the settings a host needs before it can
// bind a kernel to a HostServices implementation: which configuration
// bits to start with, how much memory to back the simulation with, the
// entry address, and where to write the trace log. No package in this
// module imports it (the kernel itself has no configuration file of
// its own; its configuration bitset is set programmatically through
// the facade).
package hostconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the host-side settings loaded from a TOML file: whether to
// start with trace_log enabled, how large the simulated address space
// is, and where trace output goes.
type Config struct {
	Execution struct {
		TraceLog  bool   `toml:"trace_log"`
		MemSize   uint64 `toml:"mem_size"`
		EntryAddr uint64 `toml:"entry_addr"`
	} `toml:"execution"`

	Trace struct {
		OutputFile string `toml:"output_file"`
	} `toml:"trace"`
}

// DefaultConfig returns the settings Load falls back to when no config
// file is present.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Execution.TraceLog = false
	cfg.Execution.MemSize = 1 << 20
	cfg.Execution.EntryAddr = 0
	cfg.Trace.OutputFile = "trace.log"
	return cfg
}

// Load reads and decodes a TOML config file at path. A missing file is
// not an error: Load returns DefaultConfig() instead.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save encodes cfg as TOML to path, creating parent directories as
// needed.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- host-supplied config path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
