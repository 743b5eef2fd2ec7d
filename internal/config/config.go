package config

import (
	"os"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/mugiliam/labcatalog/internal/apperrors"
)

// EnvConfigFile names the environment variable consulted when no config file
// is given on the command line.
const EnvConfigFile = "LABCATALOG_CONFIG"

var ErrInvalidConfig apperrors.Error = apperrors.New("invalid configuration").SetExpandError(true)

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type BuildConfig struct {
	OutputDir   string `toml:"output_dir"`
	Strict      bool   `toml:"strict"`
	CheckImages bool   `toml:"check_images"`
}

type ServerConfig struct {
	Listen     string `toml:"listen"`
	HandleCORS bool   `toml:"handle_cors"`
	CORSOrigin string `toml:"cors_origin"`
}

type ConfigValues struct {
	Log    LogConfig    `toml:"log"`
	Build  BuildConfig  `toml:"build"`
	Server ServerConfig `toml:"server"`
}

func Defaults() *ConfigValues {
	return &ConfigValues{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Build: BuildConfig{
			OutputDir:   "docs",
			CheckImages: true,
		},
		Server: ServerConfig{
			Listen:     ":8190",
			CORSOrigin: "http://localhost:8190",
		},
	}
}

var (
	mu  sync.RWMutex
	cfg = Defaults()
)

// Config returns the active configuration.
func Config() *ConfigValues {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

func Set(c *ConfigValues) {
	mu.Lock()
	defer mu.Unlock()
	cfg = c
}

// Parse decodes TOML over the defaults. Unknown keys are an error.
func Parse(data string) (*ConfigValues, apperrors.Error) {
	c := Defaults()
	md, err := toml.Decode(data, c)
	if err != nil {
		return nil, ErrInvalidConfig.Err(err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, ErrInvalidConfig.Msg("unknown configuration key " + undecoded[0].String())
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return nil, ErrInvalidConfig.Msg("log.format must be console or json")
	}
	return c, nil
}

// Load reads the config file at path, falling back to $LABCATALOG_CONFIG.
// Without either the defaults are used.
func Load(path string) (*ConfigValues, apperrors.Error) {
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		return Defaults(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrInvalidConfig.Err(err)
	}
	return Parse(string(data))
}
