package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/OlehSarnovskyi/lenses-go/codec"
)

var rootCmd = &cobra.Command{
	Use:   "lenses",
	Short: "Read and rewrite paths in JSON and YAML documents",
	Long: `lenses applies functional optics to JSON and YAML documents: view a path,
set a path, or transform the value at a path. The input document is never
rewritten; the updated document is printed to stdout.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("path", "p", "", "dotted path into the document, e.g. phones.0.number")
	rootCmd.PersistentFlags().Bool("raw", false, "operate on raw JSON text instead of a decoded tree")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
	_ = rootCmd.MarkPersistentFlagRequired("path")
}

func logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadDocument reads the document from the file argument, or stdin when
// no argument is given, and reports the detected format.
func loadDocument(args []string) ([]byte, codec.Format, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		return data, codec.FormatJSON, err
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, codec.FormatJSON, err
	}
	return data, codec.DetectFormat(args[0]), nil
}

// parseValue interprets a --value flag the way YAML reads a scalar, so
// "42" becomes a number, "true" a bool and anything else a string.
func parseValue(raw string) any {
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

// printDocument re-encodes a document tree in its original format.
func printDocument(tree any, f codec.Format) error {
	out, err := codec.ForFormat(f).Encode(tree)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
