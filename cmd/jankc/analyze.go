package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jank-lang/jank/analyzer"
	"github.com/jank-lang/jank/compiler"
	"github.com/jank-lang/jank/reader"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"go.opentelemetry.io/otel"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Parse and semantically analyze a jank source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	defer tp.Shutdown(context.Background())

	var in io.Reader
	name := args[0]
	if name == "-" {
		in = os.Stdin
		name = "stdin"
	} else {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	ns := viper.GetString("namespace")
	compiling := viper.GetBool("compiling")

	rt := compiler.NewRuntime(ns, compiling)
	a := analyzer.New(rt, compiler.NewMemoryModuleWriter())

	src := reader.New(name, in)
	expr, err := a.AnalyzeSource(context.Background(), src)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", name, err)
	}

	dumpExpression(cmd.OutOrStdout(), expr, 0)
	return nil
}

// dumpExpression renders an expression tree for human inspection. It is
// deliberately simple: the analyzer's real output interface is the tree
// itself, handed to a code generator, not this text dump.
func dumpExpression(w io.Writer, expr analyzer.Expression, depth int) {
	indent := strings.Repeat("  ", depth)
	switch e := expr.(type) {
	case *analyzer.PrimitiveLiteral:
		fmt.Fprintf(w, "%sliteral %s\n", indent, e.Value.String())
	case *analyzer.LocalReference:
		fmt.Fprintf(w, "%slocal %s\n", indent, e.Symbol.Name)
	case *analyzer.VarDeref:
		fmt.Fprintf(w, "%svar-deref %s\n", indent, e.Symbol.QualifiedName())
	case *analyzer.VarRef:
		fmt.Fprintf(w, "%svar-ref %s\n", indent, e.Symbol.QualifiedName())
	case *analyzer.Def:
		fmt.Fprintf(w, "%sdef %s\n", indent, e.Symbol.QualifiedName())
		if e.Initializer != nil {
			dumpExpression(w, e.Initializer, depth+1)
		}
	case *analyzer.If:
		fmt.Fprintf(w, "%sif\n", indent)
		dumpExpression(w, e.Condition, depth+1)
		dumpExpression(w, e.Then, depth+1)
		if e.Else != nil {
			dumpExpression(w, e.Else, depth+1)
		}
	case *analyzer.Let:
		fmt.Fprintf(w, "%slet*\n", indent)
		for _, p := range e.Pairs {
			fmt.Fprintf(w, "%s  %s =\n", indent, p.Symbol.Name)
			dumpExpression(w, p.Initializer, depth+2)
		}
		dumpExpression(w, e.Body, depth+1)
	case *analyzer.Do:
		fmt.Fprintf(w, "%sdo\n", indent)
		for _, b := range e.Body {
			dumpExpression(w, b, depth+1)
		}
	case *analyzer.Fn:
		fmt.Fprintf(w, "%sfn %s\n", indent, e.Name)
		for _, ar := range e.Arities {
			names := make([]string, len(ar.Params))
			for i, p := range ar.Params {
				names[i] = p.Name
			}
			fmt.Fprintf(w, "%s  (%s)\n", indent, strings.Join(names, " "))
			dumpExpression(w, ar.Body, depth+2)
		}
	case *analyzer.Recur:
		fmt.Fprintf(w, "%srecur\n", indent)
		for _, arg := range e.Args {
			dumpExpression(w, arg, depth+1)
		}
	case *analyzer.Call:
		fmt.Fprintf(w, "%scall\n", indent)
		dumpExpression(w, e.Callee, depth+1)
		for _, arg := range e.Args {
			dumpExpression(w, arg, depth+1)
		}
	case *analyzer.Vector:
		fmt.Fprintf(w, "%svector\n", indent)
		for _, el := range e.Elements {
			dumpExpression(w, el, depth+1)
		}
	case *analyzer.Map:
		fmt.Fprintf(w, "%smap\n", indent)
		for _, p := range e.Pairs {
			dumpExpression(w, p.Key, depth+1)
			dumpExpression(w, p.Value, depth+1)
		}
	case *analyzer.NativeRaw:
		fmt.Fprintf(w, "%snative/raw\n", indent)
		for _, c := range e.Chunks {
			if c.Expr != nil {
				dumpExpression(w, c.Expr, depth+1)
			} else {
				fmt.Fprintf(w, "%s  text %q\n", indent, c.Text)
			}
		}
	default:
		fmt.Fprintf(w, "%s<%T>\n", indent, e)
	}
}
