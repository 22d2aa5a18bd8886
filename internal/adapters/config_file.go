package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"notebookctl/internal/ports"
	"notebookctl/internal/types"
)

type ConfigFileAdapter struct{}

func NewConfigFileAdapter() ConfigFileAdapter {
	return ConfigFileAdapter{}
}

func (a ConfigFileAdapter) LoadConfig(path string) (types.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Config{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("notebook config not found").
			WithCause(err)
	}
	var cfg types.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return types.Config{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse notebook config yaml").
			WithCause(err)
	}
	if cfg.Kind != types.ConfigKindNotebook {
		return types.Config{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("config kind is not notebook")
	}
	cfg.Paths = cfg.Paths.WithDefaults()
	return cfg, nil
}

func (a ConfigFileAdapter) WriteConfig(path string, cfg types.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode notebook config").
			WithCause(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create config directory").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write notebook config").
			WithCause(err)
	}
	return nil
}

var _ ports.ConfigPort = ConfigFileAdapter{}
