// Command lispcore is a thin driver, not a REPL: it loads a YAML
// program fixture into a ProgramCode, preprocesses and evaluates the
// fixture's declared main entry, and prints the result — or, on
// failure, the call stack and a snapshot file, exactly the way the
// teacher's cmd/funxy wires its pipeline together, scaled down to this
// core's narrower contract.
package main

import (
	"fmt"
	"os"

	"github.com/funvibe/lispcore/internal/atomreg"
	"github.com/funvibe/lispcore/internal/callstack"
	"github.com/funvibe/lispcore/internal/evalcore"
	"github.com/funvibe/lispcore/internal/program"
	"github.com/funvibe/lispcore/internal/value"
	"github.com/mattn/go-isatty"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <fixture.yaml>\n", os.Args[0])
		os.Exit(1)
	}

	store := program.New()
	atoms := atomreg.New()
	rt := evalcore.NewRuntime(store, atoms)

	mainNs, mainDef, err := loadFixture(os.Args[1], store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}

	stack := callstack.Empty()
	resolvedSym, _, err := evalcore.PreprocessNsDef(rt, mainNs, mainDef, mainDef, nil, stack)
	if err != nil {
		fail(err.Error(), stack)
	}

	result, err := evalcore.Eval(rt, resolvedSym, value.NewScope(), mainNs, stack)
	if err != nil {
		fail(err.Error(), stack)
	}

	for _, w := range rt.Warnings.All() {
		fmt.Fprintln(os.Stderr, w)
	}

	printResult(result)
}

// printResult writes the evaluated result's display form to stdout,
// colourising the "=>" marker only when stdout is a real terminal.
func printResult(v value.Value) {
	prefix := "=>"
	if isatty.IsTerminal(os.Stdout.Fd()) {
		prefix = "\x1b[36m=>\x1b[0m"
	}
	fmt.Printf("%s %s\n", prefix, value.FormatLisp(v))
}

func fail(message string, stack *callstack.Stack) {
	if err := callstack.DisplayAndSnapshot(message, stack, ""); err != nil {
		fmt.Fprintf(os.Stderr, "additionally, writing failure snapshot failed: %s\n", err)
	}
	os.Exit(1)
}
