package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"notebookctl/internal/app"
)

type syncOptions struct {
	Project       string
	Notebook      string
	CacheDir      string
	Select        string
	StrictRequire bool
	DryRun        bool
}

func newSyncCommand() *cobra.Command {
	opts := syncOptions{}
	cmd := &cobra.Command{
		Use:   "sync",
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

	_ = viper.BindPFlag("project", cmd.Flags().Lookup("project"))
	_ = viper.BindPFlag("notebook", cmd.Flags().Lookup("notebook"))
	_ = viper.BindPFlag("cache_dir", cmd.Flags().Lookup("cache-dir"))
	_ = viper.BindPFlag("select", cmd.Flags().Lookup("select"))
	_ = viper.BindPFlag("strict_require", cmd.Flags().Lookup("strict-require"))
	_ = viper.BindPFlag("dry_run", cmd.Flags().Lookup("dry-run"))

	return cmd
}

func runSync(ctx context.Context, cmd *cobra.Command, opts syncOptions) error {
	service := newAppService()
	result, err := service.Sync(ctx, app.SyncRequest{
		ProjectDir:    resolveString(cmd, opts.Project, "project", "project"),
		ConfigPath:    resolveString(cmd, opts.Notebook, "notebook", "notebook"),
		CacheDir:      resolveString(cmd, opts.CacheDir, "cache_dir", "cache-dir"),
		Strategy:      resolveString(cmd, opts.Select, "select", "select"),
		StrictRequire: resolveBool(cmd, opts.StrictRequire, "strict_require", "strict-require"),
		DryRun:        resolveBool(cmd, opts.DryRun, "dry_run", "dry-run"),
	})
	if err != nil {
		return err
	}
	if result.Replacements == 0 {
		fmt.Printf("no dependency line for %s, nothing to sync\n", result.Package)
		return nil
	}
	if result.DryRun {
		fmt.Printf("dry-run: would pin %s to %s (%d replacements)\n", result.Package, result.Selected, result.Replacements)
		return nil
	}
	if !result.Changed {
		fmt.Printf("already pinned: %s:%s\n", result.Package, result.Selected)
		return nil
	}
	fmt.Printf("synced: %s %s -> %s\n", result.Package, result.Previous, result.Selected)
	return nil
}
