package cli

import "github.com/spf13/cobra"

type updateOptions = syncOptions

func newUpdateCommand() *cobra.Command {
	opts := updateOptions{}
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Pin the imports file to an installed template version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSync(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Project, "project", "", "Notebook project directory")
	cmd.Flags().StringVar(&opts.Notebook, "notebook", "", "Notebook config path (defaults to <project>/notebook.yaml)")
	cmd.Flags().StringVar(&opts.CacheDir, "cache-dir", "", "Package cache root (defaults to the local Typst data dir)")
	cmd.Flags().StringVar(&opts.Select, "select", "first", "Version selection strategy (first or latest)")
	cmd.Flags().BoolVar(&opts.StrictRequire, "strict-require", false, "Fail when the selected version violates template.require")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report the would-be rewrite without touching the imports file")

	return cmd
}
