// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RuntimeOS is the platform used to pick config locations. Tests may
// compare against it to skip platform specific cases.
var RuntimeOS = runtime.GOOS

const (
	appName  = "folio"
	fileName = "folio.yaml"
)

// Config holds every persisted setting.
type Config struct {
	Content  string `mapstructure:"content" yaml:"content"`
	Language string `mapstructure:"language" yaml:"language"`

	Database struct {
		Type string `mapstructure:"type" yaml:"type"`
		Dsn  string `mapstructure:"dsn" yaml:"dsn"`
	} `mapstructure:"database" yaml:"database"`

	Export struct {
		Dir string `mapstructure:"dir" yaml:"dir"`
	} `mapstructure:"export" yaml:"export"`

	Serve struct {
		Addr  string `mapstructure:"addr" yaml:"addr"`
		Watch bool   `mapstructure:"watch" yaml:"watch"`
	} `mapstructure:"serve" yaml:"serve"`

	Deploy struct {
		Host       string `mapstructure:"host" yaml:"host"`
		User       string `mapstructure:"user" yaml:"user"`
		Port       int    `mapstructure:"port" yaml:"port"`
		Key        string `mapstructure:"key" yaml:"key"`
		Path       string `mapstructure:"path" yaml:"path"`
		KnownHosts string `mapstructure:"known_hosts" yaml:"known_hosts"`
	} `mapstructure:"deploy" yaml:"deploy"`
}

// Defaults returns the built-in values keyed the way viper and the flags
// name them.
func Defaults() map[string]any {
	return map[string]any{
		"content":            "",
		"language":           "en",
		"database.type":      "sqlite",
		"database.dsn":       "./folio.db",
		"export.dir":         "./public",
		"serve.addr":         "127.0.0.1:8080",
		"serve.watch":        true,
		"deploy.port":        22,
		"deploy.path":        "/var/www/folio",
		"deploy.known_hosts": "",
	}
}

// GetConfigPath returns the full path of the user or system config file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	if system {
		switch RuntimeOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Folio")
		default:
			configDir = "/etc/folio"
		}
	} else {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(dir, appName)
	}
	return filepath.Join(configDir, fileName), nil
}

// LoadConfig merges defaults, the first config file found, FOLIO_*
// environment variables and the flags of cmd into a T. When no config file
// exists, or the explicit one is empty, the returned error is a
// viper.ConfigFileNotFoundError and the result still carries every other
// layer.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(appName)
	v.SetConfigType("yaml")

	if explicitPath != nil && *explicitPath != "" {
		v.SetConfigFile(*explicitPath)
	}
	if userPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userPath))
	}
	if systemPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := readConfig(v); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return c, err
		}
		notFound = err
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, notFound
}

// readConfig treats an empty candidate like a missing one so a truncated
// file does not shadow the defaults.
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		return err
	}
	used := v.ConfigFileUsed()
	if info, err := os.Stat(used); err == nil && info.Size() == 0 {
		return viper.ConfigFileNotFoundError{}
	}
	return nil
}

// WriteConfigFile writes c to the user or system config path, creating the
// directory when needed.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// Save persists the global viper state to the user config path.
func Save() error {
	path, err := GetConfigPath(false)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(viper.AllSettings())
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

func writeFile(path string, data []byte) error {
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}
	// 0600, deploy settings may name private keys
	return os.WriteFile(path, data, 0600)
}
