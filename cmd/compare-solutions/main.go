// Command compare-solutions checks that two exkmeans CSV outputs hold the
// same solutions, ignoring row, cluster and member order.
//
//	compare-solutions reference.csv candidate.csv
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	flags "github.com/jessevdk/go-flags"

	"github.com/hupe1980/exkmeans/blobstore"
	"github.com/hupe1980/exkmeans/compare"
)

// Options are the command line options of compare-solutions.
type Options struct {
	Args struct {
		First  string `positional-arg-name:"CSV_1" description:"Path to the first solution csv file" required:"yes"`
		Second string `positional-arg-name:"CSV_2" description:"Path to the second solution csv file" required:"yes"`
	} `positional-args:"yes"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "compare-solutions"

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintf(stderr, "compare-solutions: %v\n", err)
		return 1
	}

	store := blobstore.NewLocalStore(".")
	if err := compare.Files(ctx, store, opts.Args.First, opts.Args.Second); err != nil {
		fmt.Fprintf(stderr, "compare-solutions: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, "Success !")
	return 0
}
