package config

import (
	"encoding/json"
	"io/ioutil"

	"github.com/pkg/errors"
)

type GitLabConfig struct {
	Token string `json:"token"`
}

type DatadogConfig struct {
	APIKey string `json:"api_key"`
	AppKey string `json:"app_key"`
	URL    string `json:"url"`
}

type Config struct {
	GitLab  GitLabConfig  `json:"gitlab"`
	Datadog DatadogConfig `json:"datadog"`
}

// Read loads the config file at path. An empty path yields the zero config.
func Read(configPath string) (Config, error) {
	if configPath == "" {
		return Config{}, nil
	}

	raw, err := ioutil.ReadFile(configPath)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed-to-read-config-file")
	}

	var config Config
	err = json.Unmarshal(raw, &config)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed-to-unmarshal-config")
	}

	return config, nil
}

// FromEnv overrides file values with any non-empty environment variable.
func (c Config) FromEnv(getenv func(string) string) Config {
	overrides := []struct {
		name   string
		target *string
	}{
		{"GITLAB_TOKEN", &c.GitLab.Token},
		{"DATADOG_API_KEY", &c.Datadog.APIKey},
		{"DATADOG_APP_KEY", &c.Datadog.AppKey},
	}

	for _, o := range overrides {
		if value := getenv(o.name); value != "" {
			*o.target = value
		}
	}

	return c
}
