// Package config loads a client.Config from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/forestrie/go-logquery/client"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of the environment variables read by Load:
//
//	LOGQUERY_ENDPOINT, LOGQUERY_ACCESS_KEY_ID, LOGQUERY_ACCESS_KEY_SECRET,
//	LOGQUERY_PROJECT, LOGQUERY_TIMEOUT (e.g. "10s")
const EnvPrefix = "LOGQUERY_"

// Load reads the configuration from LOGQUERY_* variables.
func Load() (client.Config, error) {
	return LoadWithPrefix(EnvPrefix, nil)
}

// LoadWithPrefix reads the configuration from prefix-ed environment
// variables. Non-empty overrides, keyed by koanf name (e.g. "endpoint"),
// take precedence over the environment. The result is validated.
func LoadWithPrefix(prefix string, overrides map[string]string) (client.Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(prefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, prefix))
	}), nil)
	if err != nil {
		return client.Config{}, fmt.Errorf("could not load env variables: %w", err)
	}

	for key, v := range overrides {
		if v == "" {
			continue
		}
		if err := k.Set(key, v); err != nil {
			return client.Config{}, fmt.Errorf("could not apply override %q: %w", key, err)
		}
	}

	var cfg client.Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return client.Config{}, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return client.Config{}, err
	}
	return cfg, nil
}
