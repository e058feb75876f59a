package app

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultOutputDir               = "api_scan_results"
	DefaultTimeoutSeconds          = 10
	DefaultDiscoveryTimeoutSeconds = 5
)

// Config holds one scan invocation. Immutable after the cmd layer finished
// merging flags and the optional config file. TargetURL is passed through to
// the HTTP client without format validation - a malformed URL fails per
// request, not up front.
type Config struct {
	TargetURL               string `yaml:"-" validate:"required"`
	WordlistPath            string `yaml:"wordlist"`
	OutputDir               string `yaml:"outputDir" validate:"required"`
	TimeoutSeconds          int    `yaml:"timeoutSeconds" validate:"min=1"`
	DiscoveryTimeoutSeconds int    `yaml:"discoveryTimeoutSeconds" validate:"min=1"`
}

func NewConfig(targetURL string) Config {
	return Config{
		TargetURL:               targetURL,
		OutputDir:               DefaultOutputDir,
		TimeoutSeconds:          DefaultTimeoutSeconds,
		DiscoveryTimeoutSeconds: DefaultDiscoveryTimeoutSeconds,
	}
}

// LoadConfigFromFile reads a YAML scan config. Absent keys keep their
// defaults; the target URL always comes from the -u flag, never the file.
func LoadConfigFromFile(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	cfg := NewConfig("")
	err = yaml.Unmarshal(content, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("cannot unmarshal %s file: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	err := validator.New().Struct(c)
	if err != nil {
		return fmt.Errorf("invalid scan configuration: %w", err)
	}

	return nil
}
