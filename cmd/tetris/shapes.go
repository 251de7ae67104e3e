package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes [kind...]",
	Short: "Print the shape catalog",
	Long: `Prints each shape's matrix and colour in spawn orientation.

With no arguments every kind is printed; otherwise only the named kinds.

Examples:
  tetris shapes
  tetris shapes T s`,
	RunE: runShapes,
}

func runShapes(_ *cobra.Command, args []string) error {
	var kinds []tetris.Kind
	for _, name := range args {
		k, ok := tetris.ParseKind(name)
		if !ok {
			return fmt.Errorf("unknown shape %q, expected one of I L J T O S Z", name)
		}
		kinds = append(kinds, k)
	}
	if len(kinds) == 0 {
		for k := range tetris.Kinds() {
			kinds = append(kinds, k)
		}
	}

	for i, k := range kinds {
		if i > 0 {
			fmt.Println()
		}
		def := tetris.Shape(k)
		fmt.Printf("%s (%s)\n", k, def.Color)
		for _, row := range strings.Split(def.Matrix.String(), "/") {
			fmt.Printf("  %s\n", row)
		}
	}
	return nil
}
