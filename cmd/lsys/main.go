// Command lsys prints generations of classic L-systems.
//
// Usage:
//
//	lsys [options]
//
// It rewrites the axiom of a system -depth times and prints the resulting
// word, wrapped to the terminal width, or a JSON report with -json.
// With -turtle the word is also interpreted by a turtle and the extent of the
// drawing is reported.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/lsys"
	"github.com/npillmayer/lsys/fractal"
	"github.com/npillmayer/lsys/fractals"
	"github.com/npillmayer/lsys/turtle"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/tidwall/sjson"
	"golang.org/x/term"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type options struct {
	system   string
	depth    int
	maxDepth int
	json     bool
	turtle   bool
	width    int
	trace    string
	list     bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	if err = setupTracing(opts.trace); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	if opts.list {
		fmt.Fprintln(stdout, strings.Join(fractals.Names(), "\n"))
		return exitOK
	}
	sys, ok := fractals.Lookup(opts.system)
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown system %q (one of %s)\n", opts.system,
			strings.Join(fractals.Names(), ", "))
		return exitUsage
	}
	r, err := generate(sys, opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	if opts.json {
		out, err := r.json()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
		fmt.Fprintln(stdout, out)
		return exitOK
	}
	r.print(stdout, opts.width)
	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("lsys", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.system, "system", "koch", "L-system to generate ("+strings.Join(fractals.Names(), "|")+")")
	fs.IntVar(&opts.depth, "depth", 3, "Generation to compute")
	fs.IntVar(&opts.maxDepth, "max-depth", fractal.DefaultMaxDepth, "Refuse to compute generations deeper than this")
	fs.BoolVar(&opts.json, "json", false, "Print a JSON report")
	fs.BoolVar(&opts.turtle, "turtle", false, "Interpret the generation with a turtle")
	fs.IntVar(&opts.width, "width", -1, "Wrap words at this width (0 = no wrapping, default terminal width)")
	fs.StringVar(&opts.trace, "trace", "error", "Trace level (debug, info, error)")
	fs.BoolVar(&opts.list, "list", false, "List available systems")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "lsys - generations of L-systems\n\n")
		fmt.Fprintf(stderr, "Usage: lsys [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  lsys -system dragon -depth 5         Print generation 5 of the dragon curve\n")
		fmt.Fprintf(stderr, "  lsys -system plant -turtle -json     Report on a plant as JSON\n")
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if opts.depth < 0 {
		return opts, fmt.Errorf("invalid depth %d", opts.depth)
	}
	if opts.width < 0 {
		opts.width = terminalWidth(stdoutFd())
	}
	return opts, nil
}

func setupTracing(level string) error {
	var l tracing.TraceLevel
	switch level {
	case "debug":
		l = tracing.LevelDebug
	case "info":
		l = tracing.LevelInfo
	case "error":
		l = tracing.LevelError
	default:
		return fmt.Errorf("invalid trace level %q (must be debug, info or error)", level)
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(l)
	return nil
}

func stdoutFd() int {
	return int(os.Stdout.Fd())
}

// terminalWidth returns the width of the terminal at fd, or 0 if fd is not a
// terminal.
func terminalWidth(fd int) int {
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}

// --- Generating ------------------------------------------------------------

type report struct {
	system  fractals.System
	depth   int
	word    string
	lengths []int
	turtle  *turtle.Turtle
	scale   float64
}

func generate(sys fractals.System, opts options) (*report, error) {
	f, err := sys.Build(fractal.MaxDepth(opts.maxDepth))
	if err != nil {
		return nil, err
	}
	r := &report{system: sys, depth: opts.depth}
	for d := 0; d <= opts.depth; d++ {
		w, err := f.Generation(d)
		if err != nil {
			return nil, err
		}
		r.lengths = append(r.lengths, w.Len())
		if d == opts.depth {
			r.word = w.String()
		}
	}
	if opts.turtle {
		if r.turtle, err = sys.Draw(f, opts.depth); err != nil {
			return nil, err
		}
		if r.scale, err = turtle.ScaleFactor(f.Dictionary(), lsys.FromText("F")); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *report) print(w io.Writer, width int) {
	fmt.Fprintf(w, "%s, generation %d: %d letters\n", r.system.Name, r.depth, r.lengths[len(r.lengths)-1])
	for _, line := range wrap(r.word, width) {
		fmt.Fprintln(w, line)
	}
	if r.turtle != nil {
		lower, upper := r.turtle.Bounds()
		fmt.Fprintf(w, "turtle: %d vertices in %d polylines, bounds %v – %v\n",
			r.turtle.Vertices(), len(r.turtle.Polylines()), lower, upper)
	}
}

func (r *report) json() (string, error) {
	js := "{}"
	var err error
	set := func(path string, value interface{}) {
		if err == nil {
			js, err = sjson.Set(js, path, value)
		}
	}
	set("system", r.system.Name)
	set("axiom", r.system.Axiom)
	set("angle", r.system.Angle)
	set("depth", r.depth)
	set("lengths", r.lengths)
	set("word", r.word)
	if r.turtle != nil {
		lower, upper := r.turtle.Bounds()
		set("turtle.vertices", r.turtle.Vertices())
		set("turtle.polylines", len(r.turtle.Polylines()))
		set("turtle.bounds.min.x", lower.X)
		set("turtle.bounds.min.y", lower.Y)
		set("turtle.bounds.max.x", upper.X)
		set("turtle.bounds.max.y", upper.Y)
		set("turtle.end.x", r.turtle.Position().X)
		set("turtle.end.y", r.turtle.Position().Y)
		set("turtle.scale", r.scale)
	}
	return js, err
}

// wrap splits s into lines of at most width runes. width = 0 means no wrapping.
func wrap(s string, width int) []string {
	runes := []rune(s)
	if width <= 0 || len(runes) <= width {
		return []string{s}
	}
	lines := make([]string, 0, len(runes)/width+1)
	for len(runes) > width {
		lines = append(lines, string(runes[:width]))
		runes = runes[width:]
	}
	if len(runes) > 0 {
		lines = append(lines, string(runes))
	}
	return lines
}
