package main

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/restmock/specimport/importer"
	"github.com/restmock/specimport/openapi"
)

var (
	version = "dev"

	provider string
	output   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "specimport <file>",
		Short:   "Import a Swagger 2.0 / OpenAPI 3.x document",
		Long:    `specimport parses an API document, synthesizes example payloads and flattens every operation into path-indexed parameter records.`,
		Version: version,
		Args:    cobra.ExactArgs(1),
		RunE:    run,
	}

	rootCmd.Flags().StringVarP(&provider, "provider", "p", string(openapi.LibOpenAPIProvider), "schema provider (libopenapi, kin-openapi)")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "write the result to a file instead of stdout")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	res, err := importer.Import(content, importer.WithProvider(openapi.SchemaProvider(provider)))
	if err != nil {
		return fmt.Errorf("failed to import document: %w", err)
	}

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if output == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	fmt.Printf("Imported %d APIs into %s\n", len(res.APIs), output)
	return nil
}
