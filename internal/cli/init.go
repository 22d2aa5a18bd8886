package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"notebookctl/internal/app"
)

type initOptions struct {
	Name     string
	Team     string
	Season   string
	Year     string
	Theme    string
	CacheDir string
	Force    bool
}

func newInitCommand() *cobra.Command {
	opts := initOptions{}
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a new notebook project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd.Context(), cmd, dir, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Notebook name (defaults to the directory name)")
	cmd.Flags().StringVar(&opts.Team, "team", "", "Team identifier shown on the title page")
	cmd.Flags().StringVar(&opts.Season, "season", "", "Season label, e.g. High Stakes")
	cmd.Flags().StringVar(&opts.Year, "year", "", "Year range, e.g. 2025-2026 (defaults to the current season)")
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "Template theme (defaults to radial)")
	cmd.Flags().StringVar(&opts.CacheDir, "cache-dir", "", "Package cache root (defaults to the local Typst data dir)")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite existing project files")

	_ = viper.BindPFlag("init_name", cmd.Flags().Lookup("name"))
	_ = viper.BindPFlag("team", cmd.Flags().Lookup("team"))
	_ = viper.BindPFlag("season", cmd.Flags().Lookup("season"))
	_ = viper.BindPFlag("year", cmd.Flags().Lookup("year"))
	_ = viper.BindPFlag("theme", cmd.Flags().Lookup("theme"))
	_ = viper.BindPFlag("cache_dir", cmd.Flags().Lookup("cache-dir"))

	return cmd
}

func runInit(ctx context.Context, cmd *cobra.Command, dir string, opts initOptions) error {
	service := newAppService()
	result, err := service.Init(ctx, app.InitRequest{
		Dir:      dir,
		Name:     resolveString(cmd, opts.Name, "init_name", "name"),
		Team:     resolveString(cmd, opts.Team, "team", "team"),
		Season:   resolveString(cmd, opts.Season, "season", "season"),
		Year:     resolveString(cmd, opts.Year, "year", "year"),
		Theme:    resolveString(cmd, opts.Theme, "theme", "theme"),
		CacheDir: resolveString(cmd, opts.CacheDir, "cache_dir", "cache-dir"),
		Force:    opts.Force,
	})
	if err != nil {
		return err
	}
	if result.Synced {
		fmt.Printf("initialized: %s (pinned %s)\n", result.Name, result.Version)
		return nil
	}
	fmt.Printf("initialized: %s (placeholder pin %s, run sync once the template is installed)\n", result.Name, result.Version)
	return nil
}
