// Package config loads the optional efadm configuration file.
package config

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Config is the content of ~/.config/efadm/config.yaml (or the file named
// by EFADM_CONFIG). Everything in it is optional.
type Config struct {
	// EFAURL overrides the built-in default departure monitor endpoint.
	// The -u flag and EFADM_EFA_URL both take precedence over it.
	EFAURL string `yaml:"efa_url"`
}

// Load reads the configuration file. A missing file is fine and yields the
// zero Config; an unreadable or malformed one is logged and otherwise
// ignored.
func Load() Config {
	var config Config

	path := configPath()
	if path == "" {
		return config
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("Failed to read config file")
		}

		return config
	}

	log.Debug().Str("path", path).Msg("Loading config file")

	if err := yaml.Unmarshal(content, &config); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed to parse config file")

		return Config{}
	}

	return config
}

func configPath() string {
	if path := os.Getenv("EFADM_CONFIG"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "efadm", "config.yaml")
}
