package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OlehSarnovskyi/lenses-go/codec"
	"github.com/OlehSarnovskyi/lenses-go/dyn"
	"github.com/OlehSarnovskyi/lenses-go/functional"
	"github.com/OlehSarnovskyi/lenses-go/jsondoc"
)

var overCmd = &cobra.Command{
	Use:   "over [file]",
	Short: "Print the document with the value at a path transformed",
	Long:  `Reads the document, applies a named transform to the value at the given path and prints the updated document. An absent path leaves the document unchanged.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runOver(cmd, args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	overCmd.Flags().StringP("transform", "t", "", "transform to apply: "+strings.Join(transformNames(), ", "))
	_ = overCmd.MarkFlagRequired("transform")
	rootCmd.AddCommand(overCmd)
}

// transforms are the pure functions over can apply to a focused value.
// Values that a transform does not understand pass through unchanged.
var transforms = map[string]func(any) any{
	"upper": func(v any) any {
		if s, ok := v.(string); ok {
			return strings.ToUpper(s)
		}
		return v
	},
	"lower": func(v any) any {
		if s, ok := v.(string); ok {
			return strings.ToLower(s)
		}
		return v
	},
	"incr": func(v any) any {
		switch n := v.(type) {
		case int:
			return n + 1
		case float64:
			return n + 1
		}
		return v
	},
	"negate": func(v any) any {
		switch n := v.(type) {
		case bool:
			return !n
		case int:
			return -n
		case float64:
			return -n
		}
		return v
	},
	"reverse": func(v any) any {
		s, ok := v.(string)
		if !ok {
			return v
		}
		runes := []rune(s)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return string(runes)
	},
}

func transformNames() []string {
	names := make([]string, 0, len(transforms))
	for name := range transforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolveTransform looks a transform up by name.
func resolveTransform(name string) functional.Result[func(any) any] {
	if fn, ok := transforms[name]; ok {
		return functional.Ok(fn)
	}
	return functional.Err[func(any) any](
		fmt.Errorf("unknown transform %q, have: %s", name, strings.Join(transformNames(), ", ")))
}

func runOver(cmd *cobra.Command, args []string) error {
	log := logger(cmd)
	rawPath, _ := cmd.Flags().GetString("path")
	name, _ := cmd.Flags().GetString("transform")
	raw, _ := cmd.Flags().GetBool("raw")

	data, format, err := loadDocument(args)
	if err != nil {
		return err
	}

	segments, err := dyn.Parse(rawPath)
	if err != nil {
		return err
	}

	res := resolveTransform(name)
	if res.IsErr() {
		return res.UnwrapErr()
	}
	fn := res.Unwrap()
	log.Debug("transforming path", "path", dyn.FormatPath(segments), "transform", name)

	if raw {
		updated, err := jsondoc.FromSegments(segments).Modify(data, fn)
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
	updated, err := dyn.Over(dyn.Path(segments...), fn, tree)
	if err != nil {
		return err
	}
	return printDocument(updated, format)
}
