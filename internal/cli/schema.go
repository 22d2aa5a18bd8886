package cli

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"notebookctl/internal/schema"
)

type schemaOptions struct {
	Output string
}

func newSchemaCommand() *cobra.Command {
	opts := schemaOptions{}
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Emit the JSON Schema of notebook.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSchema(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Output, "output", "", "Write the schema to a file instead of stdout")
	_ = viper.BindPFlag("schema_output", cmd.Flags().Lookup("output"))
	return cmd
}

func runSchema(cmd *cobra.Command, opts schemaOptions) error {
	data, err := schema.ConfigSchema()
	if err != nil {
		return err
	}
	output := resolveString(cmd, opts.Output, "schema_output", "output")
	if output == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(output, append(data, '\n'), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write schema file").
			WithCause(err)
	}
	fmt.Printf("wrote schema: %s\n", output)
	return nil
}
