package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/takakv/algebra/algebra"
)

type calcOp struct {
	arity int
	count bool
	run   func(s algebra.Structure, xs []algebra.Element, n int) (string, error)
}

func elementResult(f func(xs []algebra.Element, n int) (algebra.Element, error)) func(algebra.Structure, []algebra.Element, int) (string, error) {
	return func(_ algebra.Structure, xs []algebra.Element, n int) (string, error) {
		z, err := f(xs, n)
		if err != nil {
			return "", err
		}
		return z.String(), nil
	}
}

func binaryOp(f func(x, y algebra.Element) (algebra.Element, error)) calcOp {
	return calcOp{arity: 2, run: elementResult(func(xs []algebra.Element, _ int) (algebra.Element, error) {
		return f(xs[0], xs[1])
	})}
}

func unaryOp(f func(x algebra.Element) (algebra.Element, error)) calcOp {
	return calcOp{arity: 1, run: elementResult(func(xs []algebra.Element, _ int) (algebra.Element, error) {
		return f(xs[0])
	})}
}

func countOp(f func(x algebra.Element, n int) (algebra.Element, error)) calcOp {
	return calcOp{arity: 1, count: true, run: elementResult(func(xs []algebra.Element, n int) (algebra.Element, error) {
		return f(xs[0], n)
	})}
}

var calcOps = map[string]calcOp{
	"add":   binaryOp(algebra.Add),
	"sub":   binaryOp(algebra.Sub),
	"mul":   binaryOp(algebra.Mul),
	"div":   binaryOp(algebra.Div),
	"neg":   unaryOp(algebra.Neg),
	"inv":   unaryOp(algebra.Inv),
	"pow":   countOp(algebra.Pow),
	"times": countOp(algebra.Times),
	"eq": {arity: 2, run: func(_ algebra.Structure, xs []algebra.Element, _ int) (string, error) {
		ok, err := algebra.Equal(xs[0], xs[1])
		return strconv.FormatBool(ok), err
	}},
	"one": {run: func(s algebra.Structure, _ []algebra.Element, _ int) (string, error) {
		return s.One().String(), nil
	}},
	"zero": {run: func(s algebra.Structure, _ []algebra.Element, _ int) (string, error) {
		return s.Zero().String(), nil
	}},
}

func opNames() []string {
	return []string{"add", "sub", "mul", "div", "neg", "inv", "pow", "times", "eq", "one", "zero"}
}

func newCalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc STRUCTURE OP [ELEMENT...] [N]",
		Short: "Apply an operation to elements of a structure.",
		Long: `Apply an operation to elements of a structure. Elements are written in
the structure's text form, quoted when they contain spaces. The operations
are ` + strings.Join(opNames(), ", ") + `; pow and times take an integer
after the element.`,
		Args: cobra.MinimumNArgs(2),
		RunE: runCalc,
	}
	cmd.Flags().Bool("json", false, "write the result as JSON")
	// Negative counts must not be taken for flags.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runCalc(cmd *cobra.Command, args []string) error {
	reg, err := registry(cmd)
	if err != nil {
		return err
	}
	structName, name, rest := args[0], args[1], args[2:]
	op, ok := calcOps[name]
	if !ok {
		return errors.Errorf("unknown operation %q", name)
	}
	want := op.arity
	if op.count {
		want++
	}
	if len(rest) != want {
		return errors.Errorf("%s takes %d arguments, got %d", name, want, len(rest))
	}

	s, err := reg.Resolve(structName)
	if err != nil {
		return err
	}
	xs := make([]algebra.Element, op.arity)
	for i := range xs {
		if xs[i], err = parseElement(s, rest[i]); err != nil {
			return err
		}
	}
	n := 0
	if op.count {
		if n, err = strconv.Atoi(rest[op.arity]); err != nil {
			return errors.Wrap(err, "count")
		}
	}

	out, err := op.run(s, xs, n)
	if err != nil {
		return errors.Wrap(err, name)
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), calcResult{
		Structure: structName,
		Op:        name,
		Args:      rest,
		Result:    out,
	}, asJSON)
}

// parseElement reads the whole of text as an element of s.
func parseElement(s algebra.Structure, text string) (algebra.Element, error) {
	x, err := algebra.New(s)
	if err != nil {
		return algebra.Element{}, err
	}
	sc := algebra.NewScanner(strings.NewReader(text))
	if !algebra.Scan(sc, &x) {
		return algebra.Element{}, errors.Wrapf(sc.Err(), "element %q", text)
	}
	if tail := sc.Token(); tail != "" {
		return algebra.Element{}, errors.Errorf("element %q: trailing text %q", text, tail)
	}
	return x, nil
}
