package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/takakv/algebra/algebra"
)

var (
	bold  = color.New(color.Bold).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table FILE",
		Short: "Check a Cayley table and describe the group it defines.",
		Long: `Check a Cayley table and describe the group it defines. FILE holds one
row per line with entries separated by spaces; "-" reads standard input.
Element 0 must be the identity.`,
		Args: cobra.ExactArgs(1),
		RunE: runTable,
	}
}

func runTable(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "opening table")
		}
		defer f.Close()
		r = f
	}
	table, err := readTable(r)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	g, err := algebra.NewFiniteGroup(table)
	if err != nil {
		fmt.Fprintln(w, red("not a group:"), err)
		return errors.Wrap(err, "checking table")
	}
	return describeGroup(w, g)
}

// readTable reads rows of decimal entries. Blank lines and lines starting
// with '#' are skipped.
func readTable(r io.Reader) ([][]int, error) {
	var table [][]int
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			row[i] = v
		}
		table = append(table, row)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading table")
	}
	return table, nil
}

func describeGroup(w io.Writer, g *algebra.FiniteGroup) error {
	abelian := "no"
	if g.IsAbelian() {
		abelian = green("yes")
	}
	fmt.Fprintf(w, "%s %d\n", bold("order:"), g.Order())
	fmt.Fprintf(w, "%s %s\n", bold("abelian:"), abelian)
	fmt.Fprintln(w, bold("inverses:"))
	for i := 0; i < g.Order(); i++ {
		x, err := g.Element(i)
		if err != nil {
			return err
		}
		y, err := algebra.Inv(x)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  %s -> %s\n", x, y); err != nil {
			return err
		}
	}
	return nil
}
