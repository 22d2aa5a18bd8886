package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"notebookctl/internal/app"
)

type inspectOptions struct {
	Project  string
	Notebook string
	CacheDir string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize the project, its pin, and its entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
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

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(app.InspectRequest{
		ProjectDir: resolveString(cmd, opts.Project, "project", "project"),
		ConfigPath: resolveString(cmd, opts.Notebook, "notebook", "notebook"),
		CacheDir:   resolveString(cmd, opts.CacheDir, "cache_dir", "cache-dir"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("notebook: %s (theme %s)\n", result.Name, result.Theme)
	if result.Pinned == "" {
		fmt.Printf("template: %s (no dependency line)\n", result.Template)
	} else if result.PinnedInstalled {
		fmt.Printf("template: %s:%s (installed, %d cached versions)\n", result.Template, result.Pinned, result.InstalledVersions)
	} else {
		fmt.Printf("template: %s:%s (NOT installed, %d cached versions)\n", result.Template, result.Pinned, result.InstalledVersions)
	}
	if result.ComposedOK {
		fmt.Println("main document: composed, includes in order")
	} else {
		fmt.Println("main document: includes missing or out of order, run compose")
	}
	fmt.Printf("entries: %d\n", result.EntryCount)
	for _, section := range result.Sections {
		fmt.Printf("- %s: %d\n", section.Section, section.Count)
	}
	if len(result.Types) > 0 {
		fmt.Println("entry types:")
		for _, entryType := range result.Types {
			fmt.Printf("- %s: %d\n", entryType.Type, entryType.Count)
		}
	}
	if len(result.MissingIncludes) > 0 {
		fmt.Printf("missing includes: %s\n", strings.Join(result.MissingIncludes, ", "))
	}
	if len(result.MalformedEntries) > 0 {
		fmt.Printf("malformed entries: %s\n", strings.Join(result.MalformedEntries, ", "))
	}
	if len(result.OrphanedEntries) > 0 {
		fmt.Printf("orphaned entry documents: %s\n", strings.Join(result.OrphanedEntries, ", "))
	}
	return nil
}
