package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"notebookctl/internal/app"
)

type composeOptions struct {
	Project  string
	Notebook string
}

func newComposeCommand() *cobra.Command {
	opts := composeOptions{}
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Regenerate the main document from the notebook config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompose(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Project, "project", "", "Notebook project directory")
	cmd.Flags().StringVar(&opts.Notebook, "notebook", "", "Notebook config path (defaults to <project>/notebook.yaml)")
	_ = viper.BindPFlag("project", cmd.Flags().Lookup("project"))
	_ = viper.BindPFlag("notebook", cmd.Flags().Lookup("notebook"))
	return cmd
}

func runCompose(ctx context.Context, cmd *cobra.Command, opts composeOptions) error {
	service := newAppService()
	result, err := service.Compose(ctx, app.ComposeRequest{
		ProjectDir: resolveString(cmd, opts.Project, "project", "project"),
		ConfigPath: resolveString(cmd, opts.Notebook, "notebook", "notebook"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("composed: %s (theme %s)\n", result.MainPath, result.Theme)
	return nil
}
