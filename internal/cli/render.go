package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"notebookctl/internal/app"
)

type renderOptions struct {
	Project  string
	Notebook string
	CacheDir string
	Output   string
}

func newRenderCommand() *cobra.Command {
	opts := renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Compile the notebook to PDF with the typst binary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Project, "project", "", "Notebook project directory")
	cmd.Flags().StringVar(&opts.Notebook, "notebook", "", "Notebook config path (defaults to <project>/notebook.yaml)")
	cmd.Flags().StringVar(&opts.CacheDir, "cache-dir", "", "Package cache root (defaults to the local Typst data dir)")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Output PDF path (defaults to the main document with a .pdf suffix)")

	_ = viper.BindPFlag("project", cmd.Flags().Lookup("project"))
	_ = viper.BindPFlag("notebook", cmd.Flags().Lookup("notebook"))
	_ = viper.BindPFlag("cache_dir", cmd.Flags().Lookup("cache-dir"))
	_ = viper.BindPFlag("render_output", cmd.Flags().Lookup("output"))

	return cmd
}

func runRender(ctx context.Context, cmd *cobra.Command, opts renderOptions) error {
	service := newAppService()
	result, err := service.Render(ctx, app.RenderRequest{
		ProjectDir: resolveString(cmd, opts.Project, "project", "project"),
		ConfigPath: resolveString(cmd, opts.Notebook, "notebook", "notebook"),
		CacheDir:   resolveString(cmd, opts.CacheDir, "cache_dir", "cache-dir"),
		OutputPath: resolveString(cmd, opts.Output, "render_output", "output"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("rendered: %s\n", result.OutputPath)
	return nil
}
