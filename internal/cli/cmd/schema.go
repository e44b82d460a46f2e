package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/pdm/internal/application/usecase"
	"github.com/bnema/pdm/internal/cli/styles"
	"github.com/bnema/pdm/internal/domain/entity"
)

var (
	schemaRole    string
	schemaFormat  string
	schemaSection string
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "List the known keys of a daemon configuration file",
	Long: `Print every key pdm knows for a daemon, with its section, type,
default value and description.

Formats:
  text   grouped by section (default)
  table  one row per key
  yaml   machine-readable list
  json   machine-readable list

Examples:
  pdm schema                          # bitcoin.conf keys
  pdm schema --section RPC            # only the RPC section
  pdm schema --format json | jq .     # pipe to other tools`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVarP(&schemaRole, "role", "r", "bitcoin", "daemon: bitcoin or p2pool")
	schemaCmd.Flags().StringVarP(&schemaFormat, "format", "f", "text", "output format: text, table, yaml, json")
	schemaCmd.Flags().StringVarP(&schemaSection, "section", "s", "", "only list keys of this section")
}

func runSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	role, err := entity.ParseDaemonRole(schemaRole)
	if err != nil {
		return err
	}

	out, err := app.GetConfigSchemaUC.Execute(app.Ctx(), usecase.GetConfigSchemaInput{
		Role:    role,
		Section: schemaSection,
	})
	if err != nil {
		return fmt.Errorf("get schema: %w", err)
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)

	var text string
	switch schemaFormat {
	case "text":
		text = renderer.Render(out.Role, out.Keys, out.Sections)
	case "table":
		text = styles.SchemaTable(app.Theme, out.Keys)
	case "yaml":
		text, err = renderer.RenderYAML(out.Keys)
	case "json":
		text, err = renderer.RenderJSON(out.Keys)
	default:
		return fmt.Errorf("unsupported format %q (use: text, table, yaml, json)", schemaFormat)
	}
	if err != nil {
		return fmt.Errorf("render schema: %w", err)
	}

	fmt.Println(text)
	return nil
}
