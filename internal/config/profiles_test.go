package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfiles(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "standard", cfg.DefaultProfile)
	assert.Len(t, cfg.Profiles, 4)

	p, err := cfg.Profile("")
	require.NoError(t, err)
	assert.Equal(t, "dod3", p.Method)

	p, err = cfg.Profile("paranoid")
	require.NoError(t, err)
	assert.Equal(t, "gutmann", p.Method)
	assert.Equal(t, 200.0, p.MaxSpeedMBps)
}

func TestLoadEmptyPathFallsBack(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "winshred.yaml")
	doc := `
default_profile: fast
profiles:
  fast:
    method: single
    block_size_kb: 256
  thorough:
    method: dod7
    max_speed_mbps: 50
    max_temp_gb: 8
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fast", cfg.DefaultProfile)

	p, err := cfg.Profile("thorough")
	require.NoError(t, err)
	assert.Equal(t, "dod7", p.Method)
	assert.Equal(t, 50.0, p.MaxSpeedMBps)
	assert.Equal(t, 8, p.MaxTempGB)
}

func TestLoadRejectsBadConfig(t *testing.T) {
	cases := map[string]string{
		"unknown method":  "profiles:\n  x:\n    method: vaporize\n",
		"missing default": "default_profile: gone\nprofiles:\n  x:\n    method: single\n",
		"no profiles":     "default_profile: x\n",
		"negative limit":  "profiles:\n  x:\n    method: single\n    max_temp_gb: -1\n",
		"malformed yaml":  "profiles: [not, a, map\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestUnknownProfile(t *testing.T) {
	_, err := Default().Profile("turbo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "turbo")
}

func TestProfileOptions(t *testing.T) {
	assert.Empty(t, Profile{Method: "single"}.Options())

	p := Profile{Method: "dod3", BlockSizeKB: 64, MaxSpeedMBps: 10, MaxTempGB: 2}
	assert.Len(t, p.Options(), 3)
}
