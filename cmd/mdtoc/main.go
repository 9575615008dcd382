package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/thywilljoshua/mdtoc/internal/convert"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root := convertCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(context.Background()); err != nil {
		report(root.Name(), err, stdout, stderr)
		return 1
	}
	return 0
}

// report is the single place diagnostics are printed. Usage goes to stdout,
// everything else to stderr.
func report(name string, err error, stdout, stderr io.Writer) {
	if errors.Is(err, errUsage) {
		fmt.Fprintf(stdout, "Usage is:\n%s %s\n", name, usageArgs)
		return
	}
	var fe *convert.FileError
	if errors.As(err, &fe) {
		fmt.Fprintln(stderr, "ERROR: "+fe.Error())
		return
	}
	fmt.Fprintln(stderr, "ERROR: "+err.Error())
}
