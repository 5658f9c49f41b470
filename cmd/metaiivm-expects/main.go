// Command metaiivm-expects checks a given (masm, input, expected) triple by
// running masm as a VM program over input and diffing the output against
// expected. Multiple triples are checked concurrently. Pointing expected at
// the same file as masm checks the bootstrap fixpoint property: the META II
// compiler masm program, run over the META II self-description, should
// reproduce that masm program byte for byte.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"

	"github.com/go-meta2/metaiivm"
)

type triple struct {
	masmPath     string
	inputPath    string
	expectedPath string
}

func main() {
	timeout := flag.Duration("timeout", 30*time.Second, "time limit for the whole check")
	flag.Parse()

	args := flag.Args()
	if len(args)%3 != 0 || len(args) == 0 {
		log.Fatal("usage: metaiivm-expects masm1 input1 expected1 [masm2 input2 expected2 ...]")
	}

	var triples []triple
	for i := 0; i < len(args); i += 3 {
		triples = append(triples, triple{masmPath: args[i], inputPath: args[i+1], expectedPath: args[i+2]})
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := checkAll(ctx, triples); err != nil {
		log.Fatal(err)
	}
	fmt.Println("ok: all outputs matched their expectations")
}

func checkAll(ctx context.Context, triples []triple) error {
	eg, ctx := errgroup.WithContext(ctx)
	for _, t := range triples {
		t := t
		eg.Go(func() error { return checkOne(ctx, t) })
	}
	return eg.Wait()
}

func checkOne(ctx context.Context, t triple) error {
	masmFile, err := os.Open(t.masmPath)
	if err != nil {
		return fmt.Errorf("%v: %w", t.masmPath, err)
	}
	defer masmFile.Close()

	prog, err := metaiivm.ParseProgram(masmFile, t.masmPath)
	if err != nil {
		return fmt.Errorf("%v: %w", t.masmPath, err)
	}

	input, err := os.ReadFile(t.inputPath)
	if err != nil {
		return fmt.Errorf("%v: %w", t.inputPath, err)
	}

	expected, err := os.ReadFile(t.expectedPath)
	if err != nil {
		return fmt.Errorf("%v: %w", t.expectedPath, err)
	}

	var out bytes.Buffer
	vm := metaiivm.New(string(input), metaiivm.WithOutput(&out), metaiivm.WithContext(ctx))
	if err := metaiivm.Run(vm, prog); err != nil {
		return fmt.Errorf("%v over %v: %w", t.masmPath, t.inputPath, err)
	}

	if !bytes.Equal(out.Bytes(), expected) {
		return fmt.Errorf("%v over %v: output does not match %v", t.masmPath, t.inputPath, t.expectedPath)
	}
	return nil
}
