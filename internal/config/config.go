//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/ucare
//
// Adapted from github.com/bounoable/godrive
//

// Package config loads the client configuration from YAML file and
// environment. Environment takes precedence over the file.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIHost = "api.uploadcare.com"
	DefaultCDNHost = "ucarecdn.com"
)

// Environment variables
const (
	EnvPublicKey = "CONFIG_UCARE_PUBLIC_KEY"
	EnvSecretKey = "CONFIG_UCARE_SECRET_KEY"
	EnvAPIHost   = "CONFIG_UCARE_API_HOST"
	EnvCDNHost   = "CONFIG_UCARE_CDN_HOST"
)

// Config of the client
type Config struct {
	PublicKey string          `yaml:"public_key"`
	SecretKey string          `yaml:"secret_key"`
	APIHost   string          `yaml:"api_host"`
	CDNHost   string          `yaml:"cdn_host"`
	Disks     map[string]Disk `yaml:"disks"`
}

// Disk is the configuration of mirror disk
type Disk struct {
	Provider string         `yaml:"provider"`
	Config   map[string]any `yaml:"config"`
}

// Endpoint of REST API
func (cfg Config) Endpoint() string { return "https://" + cfg.APIHost }

// Load loads the configuration from a file, empty path skips the file.
// It checks against provided file extensions and returns an error if
// the filetype is unsupported.
func Load(path string) (Config, error) {
	cfg := Config{}

	if path != "" {
		switch ext := filepath.Ext(path); ext {
		case ".yml", ".yaml":
			f, err := os.Open(path)
			if err != nil {
				return Config{}, err
			}
			defer f.Close()

			if cfg, err = LoadYAMLReader(f); err != nil {
				return Config{}, err
			}
		default:
			return Config{}, fmt.Errorf("unknown file extension for configuration '%s'", ext)
		}
	}

	cfg.apply(os.Getenv)

	return cfg, nil
}

// LoadYAMLReader loads the configuration from YAML in r.
func LoadYAMLReader(r io.Reader) (Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, err
	}

	for name, disk := range cfg.Disks {
		if disk.Provider == "" {
			return Config{}, InvalidConfigValueError{
				DiskName:  name,
				ConfigKey: "provider",
				Expected:  "",
				Provided:  nil,
			}
		}
		if disk.Config == nil {
			disk.Config = make(map[string]any)
			cfg.Disks[name] = disk
		}
	}

	return cfg, nil
}

// overrides config with environment, fills defaults
func (cfg *Config) apply(getenv func(string) string) {
	for key, val := range map[string]*string{
		EnvPublicKey: &cfg.PublicKey,
		EnvSecretKey: &cfg.SecretKey,
		EnvAPIHost:   &cfg.APIHost,
		EnvCDNHost:   &cfg.CDNHost,
	} {
		if env := getenv(key); env != "" {
			*val = env
		}
	}

	if cfg.APIHost == "" {
		cfg.APIHost = DefaultAPIHost
	}

	if cfg.CDNHost == "" {
		cfg.CDNHost = DefaultCDNHost
	}
}

// InvalidConfigValueError means a configuration value for a disk has a wrong type.
type InvalidConfigValueError struct {
	DiskName  string
	ConfigKey string
	Expected  any
	Provided  any
}

func (err InvalidConfigValueError) Error() string {
	return fmt.Sprintf("invalid config value for disk '%s': '%s' must be a '%T' but is a '%T'", err.DiskName, err.ConfigKey, err.Expected, err.Provided)
}
