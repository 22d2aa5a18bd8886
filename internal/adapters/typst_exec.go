package adapters

import (
	"context"
	"os/exec"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"notebookctl/internal/ports"
	"notebookctl/internal/shared"
)

type TypstExecAdapter struct{}

func NewTypstExecAdapter() TypstExecAdapter {
	return TypstExecAdapter{}
}

func (a TypstExecAdapter) Available() bool {
	_, err := exec.LookPath("typst")
	return err == nil
}

// Compile runs the typst compiler with the project root as compilation
// root, so the root relative includes of the composed documents resolve.
func (a TypstExecAdapter) Compile(ctx context.Context, rootDir string, mainPath string, outputPath string) error {
	cmd := exec.CommandContext(ctx, "typst", "compile", "--root", rootDir, mainPath, outputPath)
	cmd.Dir = rootDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("typst compile failed").
			WithCause(shared.CommandError(output, err))
	}
	return nil
}

var _ ports.RendererPort = TypstExecAdapter{}
