// Command schemamin minimizes a JSON Schema document: it reads a schema
// from a file or stdin, applies the reduction rules to a fixed point, and
// prints the minimized schema.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/alethic/cogitojson"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var indent bool
	var fromYAML bool

	cmd := &cobra.Command{
		Use:   "schemamin [file]",
		Short: "Minimize a JSON Schema document",
		Long: "Reads a JSON Schema (JSON, or YAML with --yaml) from a file or stdin,\n" +
			"rewrites it into a semantically-equivalent smaller form, and prints the result.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, name, err := readInput(args)
			if err != nil {
				return err
			}

			if ext := filepath.Ext(name); fromYAML || ext == ".yaml" || ext == ".yml" {
				if data, err = yamlToJSON(data); err != nil {
					return err
				}
			}

			schema, err := cogitojson.ParseSchema(data)
			if err != nil {
				return err
			}

			minimized := cogitojson.Minimize(schema)
			out, err := minimized.MarshalJSON()
			if err != nil {
				return err
			}
			if indent {
				var buf any
				if err := json.Unmarshal(out, &buf); err != nil {
					return err
				}
				if out, err = json.MarshalIndent(buf, "", "  "); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&indent, "indent", false, "pretty-print the output")
	cmd.Flags().BoolVar(&fromYAML, "yaml", false, "treat the input as YAML")
	return cmd
}

func readInput(args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		return data, "", err
	}
	data, err := os.ReadFile(args[0])
	return data, args[0], err
}

func yamlToJSON(data []byte) ([]byte, error) {
	var tmp any
	if err := yaml.Unmarshal(data, &tmp); err != nil {
		return nil, err
	}
	return json.Marshal(tmp)
}
