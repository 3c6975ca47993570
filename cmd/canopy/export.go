package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/canopy"
	"github.com/aretw0/canopy/pkg/codec"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the sample tree as YAML or JSON on stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		root, err := canopy.SampleTree(nil)
		if err != nil {
			return err
		}

		var out []byte
		switch format {
		case "yaml":
			out, err = codec.EncodeYAML(root)
		case "json":
			out, err = codec.EncodeJSON(root)
		default:
			return fmt.Errorf("unknown format %q (want yaml or json)", format)
		}
		if err != nil {
			return err
		}

		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("format", "f", "yaml", "Output format: yaml or json")
}
