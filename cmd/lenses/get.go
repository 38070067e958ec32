package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OlehSarnovskyi/lenses-go/codec"
	"github.com/OlehSarnovskyi/lenses-go/dyn"
	"github.com/OlehSarnovskyi/lenses-go/functional"
	"github.com/OlehSarnovskyi/lenses-go/jsondoc"
)

var getCmd = &cobra.Command{
	Use:   "get [file]",
	Short: "Print the value at a path",
	Long:  `Reads the document, focuses the given path and prints the value. An absent path prints "<absent>" and exits 0; a shape mismatch is an error.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runGet(cmd, args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	log := logger(cmd)
	rawPath, _ := cmd.Flags().GetString("path")
	raw, _ := cmd.Flags().GetBool("raw")

	data, format, err := loadDocument(args)
	if err != nil {
		return err
	}

	segments, err := dyn.Parse(rawPath)
	if err != nil {
		return err
	}
	log.Debug("focusing path", "path", dyn.FormatPath(segments), "format", string(format))

	var opt functional.Option[any]
	if raw {
		opt, err = jsondoc.FromSegments(segments).Get(data)
	} else {
		var tree any
		tree, err = codec.DecodeTree(data, format)
		if err != nil {
			return err
		}
		opt, err = dyn.View(dyn.Path(segments...), tree)
	}
	if err != nil {
		return err
	}

	opt.Match(
		func(v any) { fmt.Println(formatScalar(v)) },
		func() { fmt.Println("<absent>") },
	)
	return nil
}

func formatScalar(v any) string {
	switch v.(type) {
	case map[string]any, []any:
		out, err := codec.NewJSONCodec().WithPretty().Encode(v)
		if err == nil {
			return string(out)
		}
	}
	return fmt.Sprintf("%v", v)
}
