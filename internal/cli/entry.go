package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"notebookctl/internal/app"
	"notebookctl/internal/tui"
	"notebookctl/internal/types"
)

type entryNewOptions struct {
	Project  string
	Notebook string
	Title    string
	Section  string
	Type     string
	Date     string
	Author   string
	Witness  string
	NoInput  bool
}

func newEntryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Manage notebook entries",
	}
	cmd.AddCommand(newEntryNewCommand())
	cmd.AddCommand(newEntryTypesCommand())
	return cmd
}

func newEntryNewCommand() *cobra.Command {
	opts := entryNewOptions{}
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Scaffold a notebook entry and register it in the entries index",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEntryNew(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Project, "project", "", "Notebook project directory")
	cmd.Flags().StringVar(&opts.Notebook, "notebook", "", "Notebook config path (defaults to <project>/notebook.yaml)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Entry title, slashes nest directories")
	cmd.Flags().StringVar(&opts.Section, "section", "body", "Entry section (frontmatter, body, or appendix)")
	cmd.Flags().StringVar(&opts.Type, "type", "", "Entry type from the theme's table (required for body entries)")
	cmd.Flags().StringVar(&opts.Date, "date", "", "Entry date (defaults to today)")
	cmd.Flags().StringVar(&opts.Author, "author", "", "Entry author (defaults to git config user.name)")
	cmd.Flags().StringVar(&opts.Witness, "witness", "", "Entry witness")
	cmd.Flags().BoolVar(&opts.NoInput, "no-input", false, "Never prompt, use flags only")

	_ = viper.BindPFlag("project", cmd.Flags().Lookup("project"))
	_ = viper.BindPFlag("notebook", cmd.Flags().Lookup("notebook"))

	return cmd
}

func runEntryNew(ctx context.Context, cmd *cobra.Command, opts entryNewOptions) error {
	service := newAppService()
	req := app.EntryNewRequest{
		ProjectDir: resolveString(cmd, opts.Project, "project", "project"),
		ConfigPath: resolveString(cmd, opts.Notebook, "notebook", "notebook"),
		Title:      opts.Title,
		Section:    opts.Section,
		Type:       opts.Type,
		Date:       opts.Date,
		Author:     opts.Author,
		Witness:    opts.Witness,
	}
	if !opts.NoInput && opts.Title == "" && isatty.IsTerminal(os.Stdout.Fd()) {
		form, submitted, err := collectEntryForm(ctx, service, req)
		if err != nil {
			return err
		}
		if !submitted {
			fmt.Println("entry aborted")
			return nil
		}
		req.Title = form.Title
		req.Section = string(form.Section)
		req.Type = form.Type
		req.Date = form.Date
		req.Author = form.Author
		req.Witness = form.Witness
	}
	result, err := service.EntryNew(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("entry created: %s (%s)\n", result.EntryPath, result.Section)
	fmt.Printf("registered include: %s\n", result.Include)
	return nil
}

// collectEntryForm seeds the interactive form with the theme's entry
// types and the defaults the flag path would use, then runs it.
func collectEntryForm(ctx context.Context, service app.Service, req app.EntryNewRequest) (tui.EntryForm, bool, error) {
	typesResult, err := service.EntryTypes(app.EntryTypesRequest{
		ProjectDir: req.ProjectDir,
		ConfigPath: req.ConfigPath,
	})
	if err != nil {
		return tui.EntryForm{}, false, err
	}
	author := req.Author
	if author == "" {
		if name, err := service.GitConfig.UserName(ctx); err == nil {
			author = name
		}
	}
	defaults := tui.EntryFormDefaults{
		Section:    types.Section(req.Section),
		EntryTypes: typesResult.Types,
		Date:       service.Clock().Format("2006-01-02"),
		Author:     author,
	}
	return tui.RunEntryForm(defaults)
}

func newEntryTypesCommand() *cobra.Command {
	opts := entryNewOptions{}
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the entry types of the project's theme",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEntryTypes(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Project, "project", "", "Notebook project directory")
	cmd.Flags().StringVar(&opts.Notebook, "notebook", "", "Notebook config path (defaults to <project>/notebook.yaml)")
	_ = viper.BindPFlag("project", cmd.Flags().Lookup("project"))
	_ = viper.BindPFlag("notebook", cmd.Flags().Lookup("notebook"))
	return cmd
}

func runEntryTypes(cmd *cobra.Command, opts entryNewOptions) error {
	service := newAppService()
	result, err := service.EntryTypes(app.EntryTypesRequest{
		ProjectDir: resolveString(cmd, opts.Project, "project", "project"),
		ConfigPath: resolveString(cmd, opts.Notebook, "notebook", "notebook"),
	})
	if err != nil {
		return err
	}
	if result.FellBack {
		fmt.Printf("theme %s has no entry types, showing %s\n", result.Requested, result.Theme)
	} else {
		fmt.Printf("entry types of theme %s:\n", result.Theme)
	}
	profile := termenv.ColorProfile()
	for _, entryType := range result.Types {
		swatch := termenv.String("■").Foreground(profile.Color(entryType.Color))
		fmt.Printf("- %s %s (%s)\n", swatch, entryType.Name, entryType.Color)
	}
	return nil
}
