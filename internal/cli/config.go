package cli

import (
	"encoding/hex"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// configEnv names the environment variable consulted when --config is unset.
const configEnv = "PERMGEN_CONFIG"

// Config holds defaults read from a TOML file.
type Config struct {
	Scheme string `toml:"scheme"`
	Digits int    `toml:"digits"`
	Key    string `toml:"key"`
	Tweak  string `toml:"tweak"`
}

// configPath returns flag when set, otherwise $PERMGEN_CONFIG.
func configPath(flag string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv(configEnv)
}

// loadConfig decodes the TOML file at path. An empty path yields an empty
// Config. Unknown keys are logged and ignored.
func loadConfig(path string, logger *log.Logger) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config %s", path)
	}
	for _, key := range md.Undecoded() {
		logger.Warn("Ignoring unknown config key", "key", key.String(), "file", path)
	}
	if cfg.Digits < 0 {
		return nil, errors.Errorf("config %s: digits must not be negative, got %d", path, cfg.Digits)
	}
	logger.Debug("Loaded config", "file", path, "scheme", cfg.Scheme, "digits", cfg.Digits)
	return cfg, nil
}

// KeyBytes decodes the hex key, ignoring surrounding whitespace.
func (c *Config) KeyBytes() ([]byte, error) {
	if c.Key == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(strings.TrimSpace(c.Key))
	if err != nil {
		return nil, errors.Wrap(err, "config key is not valid hex")
	}
	return key, nil
}
