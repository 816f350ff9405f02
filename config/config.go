package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// AdjustConfig normalizes the advisory tags and the algorithm identifier.
// Seeds are left untouched: they are hashed byte for byte.
func (cfg *Generator) AdjustConfig() {
	cfg.Algorithm = strings.ToLower(strings.TrimSpace(cfg.Algorithm))
	cfg.UseCase = strings.ToLower(strings.TrimSpace(cfg.UseCase))
	cfg.Priority = strings.ToLower(strings.TrimSpace(cfg.Priority))
}

func LoadConfig(path string) (*Generator, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config yaml file %s: %w", path, err)
	}

	cfg := &Generator{}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml from %s: %w", path, err)
	}
	cfg.AdjustConfig()

	return cfg, nil
}
