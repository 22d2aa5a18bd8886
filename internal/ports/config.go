package ports

import "notebookctl/internal/types"

type ConfigPort interface {
	LoadConfig(path string) (types.Config, error)
	WriteConfig(path string, cfg types.Config) error
}
