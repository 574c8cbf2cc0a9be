package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Pet    PetConfig    `yaml:"pet"`
	Status StatusConfig `yaml:"status"`
	Log    LogConfig    `yaml:"log"`
}

type PetConfig struct {
	Name     string `yaml:"name"`
	Timezone string `yaml:"timezone"` // IANA name or "Local"
}

type StatusConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

const (
	DefaultPetName    = "Charm Pet"
	DefaultStatusAddr = "127.0.0.1:7420"
)

// Dir returns the directory holding the config file and the log
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "vpet")
}

// DefaultPath returns the default location of the config file
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

func defaults() *Config {
	return &Config{
		Pet: PetConfig{
			Name:     DefaultPetName,
			Timezone: "Local",
		},
		Status: StatusConfig{
			Enabled: true,
			Addr:    DefaultStatusAddr,
		},
		Log: LogConfig{
			Enabled: true,
			Path:    filepath.Join(Dir(), "vpet.log"),
		},
	}
}

// Load reads the YAML config at path. A missing file means defaults.
// Environment variables override the file.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if env := os.Getenv("VPET_NAME"); env != "" {
		cfg.Pet.Name = env
	}
	if env := os.Getenv("VPET_TIMEZONE"); env != "" {
		cfg.Pet.Timezone = env
	}
	if env := os.Getenv("VPET_STATUS_ADDR"); env != "" {
		cfg.Status.Addr = env
	}
	if env := os.Getenv("VPET_LOG_PATH"); env != "" {
		cfg.Log.Path = env
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.Pet.Name = strings.TrimSpace(c.Pet.Name)
	if c.Pet.Name == "" {
		c.Pet.Name = DefaultPetName
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Status.Enabled && strings.TrimSpace(c.Status.Addr) == "" {
		return fmt.Errorf("status.addr is required when the status server is enabled")
	}
	return nil
}

// Location resolves the configured time zone used for the sleep window
func (c *Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Pet.Timezone)
	if tz == "" || strings.EqualFold(tz, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", tz, err)
	}
	return loc, nil
}

// StatusURL is the base URL clients use to reach the status server
func (c *Config) StatusURL() string {
	addr := c.Status.Addr
	if strings.HasPrefix(addr, ":") {
		addr = "127.0.0.1" + addr
	}
	return "http://" + addr
}
