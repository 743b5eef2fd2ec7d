package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse(`
[log]
level = "debug"
format = "json"

[build]
output_dir = "site/labware"
strict = true

[server]
listen = "127.0.0.1:9000"
`)
	require.Nil(t, err)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, "site/labware", c.Build.OutputDir)
	assert.True(t, c.Build.Strict)
	// untouched keys keep their defaults
	assert.True(t, c.Build.CheckImages)
	assert.Equal(t, "127.0.0.1:9000", c.Server.Listen)
	assert.Equal(t, "http://localhost:8190", c.Server.CORSOrigin)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "unknown key", data: "[build]\noutput = \"x\"\n"},
		{name: "bad format", data: "[log]\nformat = \"xml\"\n"},
		{name: "malformed", data: "[build\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.Nil(t, err)
	assert.Equal(t, Defaults(), c)

	path := filepath.Join(t.TempDir(), "labcatalog.toml")
	require.NoError(t, os.WriteFile(path, []byte("[build]\ncheck_images = false\n"), 0o644))

	t.Setenv(EnvConfigFile, path)
	c, err = Load("")
	require.Nil(t, err)
	assert.False(t, c.Build.CheckImages)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
