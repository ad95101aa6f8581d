// Package config loads wipe profiles: named bundles of method, block size,
// and resource limits that commands resolve by name.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/lakshaymaurya-felt/winshred/internal/wipe"
)

// Profile is a reusable wipe configuration.
type Profile struct {
	// Method names the overwrite policy (single, dod3, dod7, gutmann).
	Method string `yaml:"method"`

	// BlockSizeKB overrides the pattern buffer size; 0 keeps the default.
	BlockSizeKB int `yaml:"block_size_kb"`

	// MaxSpeedMBps caps the sustained write rate; 0 means unthrottled.
	MaxSpeedMBps float64 `yaml:"max_speed_mbps"`

	// MaxTempGB caps how much a single free-space pass may write; 0 means
	// fill until the volume is full.
	MaxTempGB int `yaml:"max_temp_gb"`
}

// Config is the on-disk configuration shape.
type Config struct {
	DefaultProfile string             `yaml:"default_profile"`
	Profiles       map[string]Profile `yaml:"profiles"`
}

// Default returns the built-in profiles used when no config file exists.
func Default() *Config {
	return &Config{
		DefaultProfile: "standard",
		Profiles: map[string]Profile{
			"quick":    {Method: wipe.MethodSinglePass.String()},
			"standard": {Method: wipe.MethodDoD3.String()},
			"dod":      {Method: wipe.MethodDoD7.String()},
			"paranoid": {Method: wipe.MethodGutmann.String(), MaxSpeedMBps: 200},
		},
	}
}

// Load reads the configuration at path, falling back to Default when path
// is empty or the file does not exist.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return &cfg, nil
}

// Profile resolves a profile by name; an empty name selects the default.
func (c *Config) Profile(name string) (Profile, error) {
	if name == "" {
		name = c.DefaultProfile
	}
	p, ok := c.Profiles[name]
	if !ok {
		return Profile{}, errors.Newf("unknown profile %q", name)
	}
	return p, nil
}

func (c *Config) validate() error {
	if len(c.Profiles) == 0 {
		return errors.New("no profiles defined")
	}
	if c.DefaultProfile != "" {
		if _, ok := c.Profiles[c.DefaultProfile]; !ok {
			return errors.Newf("default profile %q is not defined", c.DefaultProfile)
		}
	}
	for name, p := range c.Profiles {
		if _, err := wipe.ParseMethod(p.Method); err != nil {
			return errors.Wrapf(err, "profile %q", name)
		}
		if p.BlockSizeKB < 0 || p.MaxSpeedMBps < 0 || p.MaxTempGB < 0 {
			return errors.Newf("profile %q: limits must not be negative", name)
		}
	}
	return nil
}

// Options converts the profile's tunables into engine options.
func (p Profile) Options() []wipe.Option {
	opts := []wipe.Option{}
	if p.BlockSizeKB > 0 {
		opts = append(opts, wipe.WithBlockSize(p.BlockSizeKB*1024))
	}
	if p.MaxSpeedMBps > 0 {
		opts = append(opts, wipe.WithMaxSpeedMBps(p.MaxSpeedMBps))
	}
	if p.MaxTempGB > 0 {
		opts = append(opts, wipe.WithMaxBytesPerPass(uint64(p.MaxTempGB)<<30))
	}
	return opts
}
