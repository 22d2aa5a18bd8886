package ports

import "context"

type RendererPort interface {
	Available() bool
	Compile(ctx context.Context, rootDir string, mainPath string, outputPath string) error
}
