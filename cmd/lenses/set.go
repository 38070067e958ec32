package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OlehSarnovskyi/lenses-go/codec"
	"github.com/OlehSarnovskyi/lenses-go/dyn"
	"github.com/OlehSarnovskyi/lenses-go/jsondoc"
)

var setCmd = &cobra.Command{
	Use:   "set [file]",
	Short: "Print the document with the value at a path replaced",
	Long:  `Reads the document, replaces the value at the given path and prints the updated document. The input file is never rewritten.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runSet(cmd, args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	setCmd.Flags().StringP("value", "v", "", "replacement value, read as a YAML scalar")
	_ = setCmd.MarkFlagRequired("value")
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	log := logger(cmd)
	rawPath, _ := cmd.Flags().GetString("path")
	rawValue, _ := cmd.Flags().GetString("value")
	raw, _ := cmd.Flags().GetBool("raw")

	data, format, err := loadDocument(args)
	if err != nil {
		return err
	}

	segments, err := dyn.Parse(rawPath)
	if err != nil {
		return err
	}
	value := parseValue(rawValue)
	log.Debug("setting path", "path", dyn.FormatPath(segments), "value", value)

	if raw {
		updated, err := jsondoc.FromSegments(segments).Set(data, value)
		if err != nil {
			return err
		}
		fmt.Println(string(updated))
		return nil
	}

	tree, err := codec.DecodeTree(data, format)
	if err != nil {
		return err
	}
	updated, err := dyn.Set(dyn.Path(segments...), value, tree)
	if err != nil {
		return err
	}
	return printDocument(updated, format)
}
