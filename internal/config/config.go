package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	Input    string   `toml:"input"`
	Genders  string   `toml:"genders"`
	Output   string   `toml:"output"`
	Exclude  []string `toml:"exclude"`
	LogLevel string   `toml:"log_level"`
}

// Environment variables that override the config file
const (
	EnvInput    = "CARDWRIGHT_INPUT"
	EnvGenders  = "CARDWRIGHT_GENDERS"
	EnvOutput   = "CARDWRIGHT_OUTPUT"
	EnvLogLevel = "CARDWRIGHT_LOG_LEVEL"
)

// Default returns the configuration written on first use
func Default() *Config {
	return &Config{
		Input:    "cards.json",
		Genders:  filepath.Join("cards", "genders.json"),
		Output:   "-",
		Exclude:  []string{},
		LogLevel: "info",
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardwright", "config.toml")
}

// LoadEnv loads a .env file from dir if there is one
func LoadEnv(dir string) error {
	envPath := filepath.Join(dir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading %s: %w", envPath, err)
	}
	return nil
}

// LoadConfig loads the config file, creating it with defaults when it is
// missing, then applies environment overrides.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	var config *Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config, err = createDefaultConfig()
		if err != nil {
			return nil, err
		}
	} else {
		config = Default()
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return nil, fmt.Errorf("error decoding config file: %w", err)
		}
	}

	config.applyEnv()
	return config, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvInput); v != "" {
		c.Input = v
	}
	if v := os.Getenv(EnvGenders); v != "" {
		c.Genders = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	configPath := GetConfigFilePath()
	configDir := filepath.Dir(configPath)

	// Ensure the config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	config := Default()
	if err := config.Save(); err != nil {
		return nil, err
	}

	return config, nil
}

// Save writes the config to the config file path
func (c *Config) Save() error {
	file, err := os.Create(GetConfigFilePath())
	if err != nil {
		return fmt.Errorf("error opening config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}
