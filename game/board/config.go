package board

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// BoardConfig is a named board as stored in a YAML catalog file
type BoardConfig struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Size        int    `yaml:"size" json:"size"`
	Layout      string `yaml:"layout" json:"layout"`
}

// ValidateBoardConfig checks the declared fields and that the layout parses.
func ValidateBoardConfig(config *BoardConfig) error {
	if config.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidConfig)
	}
	if config.Size < MinBoardSize || config.Size > MaxBoardSize {
		return fmt.Errorf("%w: size must be between %d and %d, got %d", ErrInvalidConfig, MinBoardSize, MaxBoardSize, config.Size)
	}
	if strings.TrimSpace(config.Layout) == "" {
		return fmt.Errorf("%w: layout is required", ErrInvalidConfig)
	}
	if _, err := ParseString(config.Layout, config.Size); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Grid builds the board described by the config.
func (c *BoardConfig) Grid() (*Grid, error) {
	return ParseString(c.Layout, c.Size)
}

// ParseBoardConfig decodes and validates a YAML board config.
func ParseBoardConfig(data []byte) (*BoardConfig, error) {
	var config BoardConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: parse yaml: %v", ErrInvalidConfig, err)
	}
	if err := ValidateBoardConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadBoardConfig reads a YAML board config from disk.
func LoadBoardConfig(path string) (*BoardConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read board config: %w", err)
	}
	return ParseBoardConfig(data)
}

// ConfigFromGrid wraps an already loaded grid, for plain text board files.
func ConfigFromGrid(name, description string, g *Grid) *BoardConfig {
	return &BoardConfig{
		Name:        name,
		Description: description,
		Size:        g.Size(),
		Layout:      strings.Join(g.Layout(), "\n") + "\n",
	}
}
