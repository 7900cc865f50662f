// Package config provides a centralized entrypoint for the application parameters.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/creasty/defaults"
	"go.yaml.in/yaml/v3"
)

const (
	// ModeLambda runs the enforcer inside the AWS Lambda runtime.
	ModeLambda = "lambda"
	// ModeService runs the enforcer behind a local HTTP endpoint.
	ModeService = "service"
)

var (
	// Global is a struct that contains the global configuration.
	Global global
	// Enforcement is a struct that contains the configuration for tag enforcement.
	Enforcement enforcement
	// AWS is a struct that contains the configuration for the AWS SDK.
	AWS awsConfig
	// Service is a struct that contains the configuration for the service mode.
	Service service
)

type global struct {
	// Mode is the runtime mode of the application.
	Mode string `yaml:"mode,omitempty" default:"lambda"`
	// Logging is a struct that contains the logging configuration.
	Logging struct {
		// Verbosity is the verbosity level of the application. It represents slog levels.
		Verbosity int `yaml:"verbosity,omitempty" default:"1"`
		// CallerTrace is a flag that enables the caller trace in the logger.
		CallerTrace bool `yaml:"callerTrace,omitempty"`
	} `yaml:"logging,omitempty"`
	// S3 is a struct that contains the configuration for S3.
	S3 struct {
		Upload struct {
			BucketName string `yaml:"bucketName,omitempty"`
			Enabled    bool   `yaml:"enabled,omitempty"`
		} `yaml:"upload,omitempty"`
	} `yaml:"s3,omitempty"`
}

type enforcement struct {
	// DryRun skips terminate and delete calls while still reporting what would have happened.
	DryRun bool `yaml:"dryRun,omitempty" default:"false"`
}

type awsConfig struct {
	// MaxAttempts caps the number of attempts made by the SDK retryer.
	MaxAttempts int `yaml:"maxAttempts,omitempty" default:"3"`
	// MaxBackoff caps the delay between two SDK retry attempts.
	MaxBackoff time.Duration `yaml:"maxBackoff,omitempty" default:"3s"`
}

type service struct {
	Path    string        `yaml:"path,omitempty" default:"/"`
	Addr    string        `yaml:"addr,omitempty"`
	Port    string        `yaml:"port,omitempty" default:"8080"`
	Timeout time.Duration `yaml:"timeout,omitempty" default:"5s"`
}

// SetDefaults sets the default values for the configuration.
func SetDefaults() error {
	return errors.Join(
		defaults.Set(&Global),
		defaults.Set(&Enforcement),
		defaults.Set(&AWS),
		defaults.Set(&Service),
	)
}

// LoadFromFile loads the configuration from a file.
func LoadFromFile(path string) error {
	if len(path) == 0 {
		return nil
	}
	fstat, err := os.Stat(path)
	if err != nil {
		return nil //nolint:nilerr // If the file does not exist, we ignore it.
	}
	if fstat.IsDir() {
		return fmt.Errorf("configuration file %s is a directory", path)
	}
	if !fstat.Mode().IsRegular() {
		return fmt.Errorf("configuration file %s is not a regular file", path)
	}

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}
	type all struct {
		Global      global      `yaml:"global,omitempty"`
		Enforcement enforcement `yaml:"enforcement,omitempty"`
		AWS         awsConfig   `yaml:"aws,omitempty"`
		Service     service     `yaml:"service,omitempty"`
	}
	var a all
	if err = yaml.Unmarshal(content, &a); err != nil {
		return fmt.Errorf("failed to unmarshal configuration file %s: %w", path, err)
	}
	Global = a.Global
	Enforcement = a.Enforcement
	AWS = a.AWS
	Service = a.Service

	return nil
}
