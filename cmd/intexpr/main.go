package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/mattn/go-isatty"

	"github.com/zephyrtronium/intexpr"
)

// options configures a run of the calculator.
type options struct {
	// fs and in name the file holding the expression. in is empty when the
	// expression comes from args or stdin.
	fs billy.Filesystem
	in string
	// args is the expression given on the command line, if any.
	args []string
	// given is name=value variable definitions in order.
	given [][2]string
	// echo, prefix, and dump print the parse tree before the result.
	echo, prefix, dump bool
	// interactive evaluates each line of stdin as a separate expression.
	interactive bool
	// color highlights the caret under syntax errors.
	color bool
}

func main() {
	log.SetFlags(0)
	var (
		inname string
		opts   options
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		opts.given = append(opts.given, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "file containing the expression (default stdin if no args given)")
	flag.Func("given", "name=value definition of x, y, or z (any number of times)", addwith)
	flag.BoolVar(&opts.echo, "echo", false, "print the bracketed parse tree")
	flag.BoolVar(&opts.prefix, "prefix", false, "print the parse tree in prefix notation")
	flag.BoolVar(&opts.dump, "dump", false, "dump the parse tree's structure")
	flag.Parse()

	opts.args = flag.Args()
	if inname != "" && len(opts.args) != 0 {
		log.Fatal("cannot use both -in and an expression argument")
	}
	if inname != "" && inname != "-" {
		abs, err := filepath.Abs(inname)
		if err != nil {
			log.Fatal(err)
		}
		dir, base := filepath.Split(abs)
		opts.fs = osfs.New(dir)
		opts.in = base
	}
	if inname == "" && len(opts.args) == 0 {
		opts.interactive = isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	opts.color = isatty.IsTerminal(os.Stderr.Fd())

	if err := run(&opts, os.Stdin, os.Stdout, os.Stderr); err != nil {
		report(os.Stderr, err, opts.color)
		os.Exit(1)
	}
}

// run evaluates the configured expression, or every line of stdin if
// interactive, and prints results to stdout.
func run(opts *options, stdin io.Reader, stdout, stderr io.Writer) error {
	vars, err := bind(opts.given)
	if err != nil {
		return err
	}
	if opts.interactive {
		return repl(opts, vars, stdin, stdout, stderr)
	}
	src, err := source(opts, stdin)
	if err != nil {
		return err
	}
	return evaluate(opts, vars, src, stdout)
}

// bind evaluates variable definitions. Values must be constant expressions.
func bind(given [][2]string) ([3]int32, error) {
	var vars [3]int32
	for _, d := range given {
		nm, vl := d[0], d[1]
		k := strings.Index("xyz", nm)
		if len(nm) != 1 || k < 0 {
			return vars, fmt.Errorf("setting %s: only x, y, and z can be given", nm)
		}
		a, err := intexpr.Parse(vl)
		if err != nil {
			return vars, fmt.Errorf("setting %s: %w", nm, err)
		}
		if v := a.Vars(); len(v) != 0 {
			return vars, fmt.Errorf("setting %s: value %q uses variables %v", nm, vl, v)
		}
		r, err := a.Eval(0, 0, 0)
		if err != nil {
			return vars, fmt.Errorf("setting %s: %w", nm, err)
		}
		vars[k] = r
	}
	return vars, nil
}

// source reads the whole expression text.
func source(opts *options, stdin io.Reader) (string, error) {
	if len(opts.args) != 0 {
		return strings.Join(opts.args, " "), nil
	}
	var r io.Reader = stdin
	if opts.in != "" {
		f, err := opts.fs.Open(opts.in)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

// evaluate parses and evaluates one expression, printing the result.
func evaluate(opts *options, vars [3]int32, src string, w io.Writer) error {
	a, err := intexpr.Parse(src)
	if err != nil {
		return err
	}
	if opts.echo {
		fmt.Fprintln(w, a)
	}
	if opts.prefix {
		fmt.Fprintln(w, a.Prefix())
	}
	if opts.dump {
		dumper.Fdump(w, a)
	}
	r, err := a.Eval(vars[0], vars[1], vars[2])
	if err != nil {
		return err
	}
	fmt.Fprintln(w, r)
	return nil
}

// repl evaluates each non-blank line of stdin, reporting errors without
// stopping.
func repl(opts *options, vars [3]int32, stdin io.Reader, stdout, stderr io.Writer) error {
	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(stdout, "> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := evaluate(opts, vars, line, stdout); err != nil {
			report(stderr, err, opts.color)
		}
	}
	fmt.Fprintln(stdout)
	return scanner.Err()
}

// report prints an error. Syntax errors also get a caret diagnostic.
func report(w io.Writer, err error, color bool) {
	fmt.Fprintln(w, err)
	var serr *intexpr.SyntaxError
	if !errors.As(err, &serr) {
		return
	}
	c := serr.Caret()
	if color {
		c = strings.TrimSuffix(c, "^") + "\x1b[1;31m^\x1b[0m"
	}
	fmt.Fprintln(w, c)
}
