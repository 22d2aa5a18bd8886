package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"notebookctl/internal/app"
)

type packageListOptions struct {
	Project  string
	Notebook string
	CacheDir string
}

type packageInstallOptions struct {
	CacheDir  string
	Namespace string
	Force     bool
}

type packagePruneOptions struct {
	Project  string
	Notebook string
	CacheDir string
	KeepLast int
	DryRun   bool
}

func newPackageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "package",
		Short: "Manage the local template package cache",
	}
	cmd.AddCommand(newPackageListCommand())
	cmd.AddCommand(newPackageInstallCommand())
	cmd.AddCommand(newPackagePruneCommand())
	return cmd
}

func newPackageListCommand() *cobra.Command {
	opts := packageListOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed packages and their versions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPackageList(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Project, "project", "", "Notebook project directory")
	cmd.Flags().StringVar(&opts.Notebook, "notebook", "", "Notebook config path (defaults to <project>/notebook.yaml)")
	cmd.Flags().StringVar(&opts.CacheDir, "cache-dir", "", "Package cache root (defaults to the local Typst data dir)")
	_ = viper.BindPFlag("project", cmd.Flags().Lookup("project"))
	_ = viper.BindPFlag("notebook", cmd.Flags().Lookup("notebook"))
	_ = viper.BindPFlag("cache_dir", cmd.Flags().Lookup("cache-dir"))
	return cmd
}

func runPackageList(ctx context.Context, cmd *cobra.Command, opts packageListOptions) error {
	service := newAppService()
	result, err := service.PackageList(ctx, app.PackageListRequest{
		ProjectDir: resolveString(cmd, opts.Project, "project", "project"),
		ConfigPath: resolveString(cmd, opts.Notebook, "notebook", "notebook"),
		CacheDir:   resolveString(cmd, opts.CacheDir, "cache_dir", "cache-dir"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("package cache: %s\n", result.CacheRoot)
	if len(result.Packages) == 0 {
		fmt.Println("no packages installed")
		return nil
	}
	for _, pkg := range result.Packages {
		versions := make([]string, 0, len(pkg.Versions))
		for _, version := range pkg.Versions {
			if version == pkg.Pinned {
				version += " (pinned)"
			}
			versions = append(versions, version)
		}
		fmt.Printf("- %s/%s: %s\n", pkg.Namespace, pkg.Name, strings.Join(versions, ", "))
	}
	return nil
}

func newPackageInstallCommand() *cobra.Command {
	opts := packageInstallOptions{}
	cmd := &cobra.Command{
		Use:   "install <dir>",
		Short: "Copy a template package into the cache under its typst.toml version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPackageInstall(cmd.Context(), cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.CacheDir, "cache-dir", "", "Package cache root (defaults to the local Typst data dir)")
	cmd.Flags().StringVar(&opts.Namespace, "namespace", "local", "Cache namespace to install into")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Replace an already installed version")
	_ = viper.BindPFlag("cache_dir", cmd.Flags().Lookup("cache-dir"))
	_ = viper.BindPFlag("namespace", cmd.Flags().Lookup("namespace"))
	return cmd
}

func runPackageInstall(ctx context.Context, cmd *cobra.Command, dir string, opts packageInstallOptions) error {
	service := newAppService()
	result, err := service.PackageInstall(ctx, app.PackageInstallRequest{
		SrcDir:    dir,
		CacheDir:  resolveString(cmd, opts.CacheDir, "cache_dir", "cache-dir"),
		Namespace: resolveString(cmd, opts.Namespace, "namespace", "namespace"),
		Force:     opts.Force,
	})
	if err != nil {
		return err
	}
	fmt.Printf("installed: %s/%s:%s -> %s\n", result.Namespace, result.Name, result.Version, result.Dir)
	return nil
}

func newPackagePruneCommand() *cobra.Command {
	opts := packagePruneOptions{}
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove old cached versions of the project template",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPackagePrune(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Project, "project", "", "Notebook project directory")
	cmd.Flags().StringVar(&opts.Notebook, "notebook", "", "Notebook config path (defaults to <project>/notebook.yaml)")
	cmd.Flags().StringVar(&opts.CacheDir, "cache-dir", "", "Package cache root (defaults to the local Typst data dir)")
	cmd.Flags().IntVar(&opts.KeepLast, "keep-last", 2, "Keep the newest N versions")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", true, "Only report prune actions without deleting")
	_ = viper.BindPFlag("project", cmd.Flags().Lookup("project"))
	_ = viper.BindPFlag("notebook", cmd.Flags().Lookup("notebook"))
	_ = viper.BindPFlag("cache_dir", cmd.Flags().Lookup("cache-dir"))
	_ = viper.BindPFlag("keep_last", cmd.Flags().Lookup("keep-last"))
	_ = viper.BindPFlag("dry_run", cmd.Flags().Lookup("dry-run"))
	return cmd
}

func runPackagePrune(ctx context.Context, cmd *cobra.Command, opts packagePruneOptions) error {
	service := newAppService()
	result, err := service.PruneVersions(ctx, app.PruneRequest{
		ProjectDir: resolveString(cmd, opts.Project, "project", "project"),
		ConfigPath: resolveString(cmd, opts.Notebook, "notebook", "notebook"),
		CacheDir:   resolveString(cmd, opts.CacheDir, "cache_dir", "cache-dir"),
		KeepLast:   resolveInt(cmd, opts.KeepLast, "keep_last", "keep-last"),
		DryRun:     resolveBool(cmd, opts.DryRun, "dry_run", "dry-run"),
	})
	if err != nil {
		return err
	}
	if result.DryRun {
		fmt.Printf("dry-run: %s keep=%d delete=%d\n", result.Package, result.KeepCount, result.DeleteCount)
		return nil
	}
	fmt.Printf("pruned %s: %d versions removed\n", result.Package, result.DeleteCount)
	return nil
}
