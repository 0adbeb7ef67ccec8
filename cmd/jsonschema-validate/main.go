// Command jsonschema-validate validates a JSON instance document against a
// JSON Schema (Draft-06, Draft-07, or Draft-2019-09) and prints the basic
// output format to stdout.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kaptinlin/jsonschema-multidraft"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "jsonschema-validate <schema-file> <instance-file>",
		Short:         "Validate a JSON instance against a JSON Schema document",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0], args[1])
		},
	}
	return cmd
}

func runValidate(schemaFile, instanceFile string) error {
	schemaBytes, err := os.ReadFile(schemaFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsonschema-validate: reading schema: %v\n", err)
		os.Exit(2)
	}

	instanceBytes, err := os.ReadFile(instanceFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsonschema-validate: reading instance: %v\n", err)
		os.Exit(2)
	}

	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile(schemaBytes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsonschema-validate: %v\n", err)
		os.Exit(2)
	}

	result := schema.ValidateJSON(instanceBytes)

	out, err := json.Marshal(result.ToBasic())
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsonschema-validate: encoding output: %v\n", err)
		os.Exit(2)
	}

	fmt.Println(string(out))
	return nil
}
