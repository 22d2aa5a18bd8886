package app

import (
	"time"

	"notebookctl/internal/adapters"
	"notebookctl/internal/ports"
)

type Service struct {
	Config    ports.ConfigPort
	Cache     ports.PackageCachePort
	Documents ports.DocumentPort
	Manifest  ports.ManifestPort
	GitConfig ports.GitConfigPort
	Renderer  ports.RendererPort
	Locator   ports.ProjectLocatorPort
	Clock     func() time.Time
}

func NewService() Service {
	return Service{
		Config:    adapters.NewConfigFileAdapter(),
		Cache:     adapters.NewPackageCacheAdapter(),
		Documents: adapters.NewDocumentFileAdapter(),
		Manifest:  adapters.NewManifestTOMLAdapter(),
		GitConfig: adapters.NewGitConfigAdapter(),
		Renderer:  adapters.NewTypstExecAdapter(),
		Locator:   adapters.NewProjectDirAdapter(),
		Clock:     time.Now,
	}
}
