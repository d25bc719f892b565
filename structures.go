package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/takakv/algebra/algebra"
	"github.com/takakv/algebra/config"
)

func newStructuresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "structures",
		Short: "List the structures calc accepts.",
		Args:  cobra.NoArgs,
		RunE:  runStructures,
	}
}

func runStructures(cmd *cobra.Command, args []string) error {
	reg, err := registry(cmd)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, bold("built-in:"))
	for _, name := range config.Builtins() {
		fmt.Fprintln(w, "  "+name)
	}
	names := reg.Catalog().Names()
	if len(names) == 0 {
		return nil
	}
	fmt.Fprintln(w, bold("catalog:"))
	for _, name := range names {
		s, err := reg.Resolve(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s (%s)\n", name, level(s))
	}
	return nil
}

// level names the most specific structure level of s.
func level(s algebra.Structure) string {
	var l string
	switch {
	case algebra.IsField(s):
		l = "field"
	case algebra.IsRing(s):
		l = "ring"
	case algebra.IsGroup(s):
		l = "group"
	default:
		l = "semigroup"
	}
	if s.IsAbelian() {
		l = "abelian " + l
	}
	return l
}
