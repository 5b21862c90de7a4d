package usecase

import (
	"context"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/deputui/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct {
	Config *domain.Config // Effective configuration (required)
}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	File      domain.ConfigInfo // Config file on disk
	Effective string            // Effective configuration as TOML
	Warnings  []string          // Problems found while loading the file
}

// ShowConfig displays configuration file information.
type ShowConfig struct {
	configManager domain.ConfigManager
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configManager domain.ConfigManager) *ShowConfig {
	return &ShowConfig{
		configManager: configManager,
	}
}

// Execute retrieves the config file and renders the effective configuration.
func (uc *ShowConfig) Execute(_ context.Context, in ShowConfigInput) (*ShowConfigOutput, error) {
	if in.Config == nil {
		return nil, fmt.Errorf("show config: no configuration loaded")
	}

	effective, err := toml.Marshal(in.Config)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	return &ShowConfigOutput{
		File:      uc.configManager.Info(),
		Effective: string(effective),
		Warnings:  in.Config.Warnings,
	}, nil
}
