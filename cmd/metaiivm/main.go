// Command metaiivm loads a META II assembly program (a "masm") and runs it
// against an input source, writing the translated output to a sink. It is
// the external collaborator the VM core is agnostic to: opening the masm
// file, source selection, and output wiring all live here; parsing the masm
// text is done by metaiivm.ParseProgram.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"time"

	"github.com/go-meta2/metaiivm"
	"github.com/go-meta2/metaiivm/internal/logio"
)

func main() {
	var (
		masmPath string
		inPath   string
		outPath  string
		trace    bool
		dump     bool
		timeout  time.Duration
		maxDepth int
	)
	flag.StringVar(&masmPath, "masm", "", "path to a META II assembly program (required)")
	flag.StringVar(&inPath, "input", "-", "input source path, or - for stdin")
	flag.StringVar(&outPath, "out", "-", "output path, or - for stdout")
	flag.BoolVar(&trace, "trace", false, "log a per-instruction trace to stderr")
	flag.BoolVar(&dump, "dump", false, "print a state dump after halting")
	flag.DurationVar(&timeout, "timeout", 0, "time limit for the run, 0 for none")
	flag.IntVar(&maxDepth, "max-depth", 0, "activation stack depth limit, 0 for unbounded")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	if masmPath == "" {
		log.Errorf("missing required -masm flag")
		return
	}

	masmFile, err := os.Open(masmPath)
	if err != nil {
		log.Errorf("opening masm program: %v", err)
		return
	}
	defer masmFile.Close()

	prog, err := metaiivm.ParseProgram(masmFile, masmPath)
	if err != nil {
		log.Errorf("parsing masm program: %v", err)
		return
	}

	input, err := readAll(inPath)
	if err != nil {
		log.Errorf("reading input: %v", err)
		return
	}

	out, closeOut, err := openOutput(outPath)
	if err != nil {
		log.Errorf("opening output: %v", err)
		return
	}
	defer closeOut()

	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	opts := []metaiivm.VMOption{metaiivm.WithOutput(out), metaiivm.WithContext(ctx)}
	if trace {
		opts = append(opts, metaiivm.WithTrace(log.Leveledf("TRACE")))
	}
	if maxDepth > 0 {
		opts = append(opts, metaiivm.WithMaxDepth(maxDepth))
	}
	vm := metaiivm.New(input, opts...)

	runErr := metaiivm.Run(vm, prog)

	if dump {
		if derr := vm.Dump(os.Stderr); derr != nil {
			log.Errorf("dumping VM state: %v", derr)
		}
	}

	log.ErrorIf(runErr)
}

func readAll(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
