package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/xiam/lispish/ast"
	"github.com/xiam/lispish/lexer"
	"github.com/xiam/lispish/parser"
)

const invalidInputMessage = "Threw an exception on invalid input."

var (
	heavyRule = strings.Repeat("=", 50)
	lightRule = strings.Repeat("-", 50)
)

// checkResult is the report for one input
type checkResult struct {
	name   string
	report []byte
	err    error
}

func (a *app) cmdCheck() *cobra.Command {
	jobs := 0
	var cmd = &cobra.Command{
		Use:   "check [file...]",
		Short: "report whether each input is well formed, with its tokens and parse tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{stdinName}
			}

			w := cmd.OutOrStdout()
			opts := a.renderOptions(w)
			results, err := a.checkAll(cmd.Context(), args, cmd.InOrStdin(), jobs, opts)
			if err != nil {
				return err
			}

			invalid := 0
			for _, res := range results {
				if _, err := w.Write(res.report); err != nil {
					return err
				}
				if res.err != nil {
					invalid++
					a.logger.Info("invalid input", "input", res.name, "error", res.err)
				}
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d inputs are invalid", invalid, len(results))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&jobs, "jobs", jobs, "number of inputs checked in parallel (0 uses GOMAXPROCS)")
	return cmd
}

// checkAll checks every named input concurrently. Results are returned in
// the order of names. Only I/O failures are returned as errors, invalid
// input is recorded in its result.
func (a *app) checkAll(ctx context.Context, names []string, stdin io.Reader, jobs int, opts ast.PrintOptions) ([]checkResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// stdin can only be read once, every "-" gets the same source
	var stdinSrc []byte
	sources := make([][]byte, len(names))
	for i, name := range names {
		if name != stdinName {
			continue
		}
		if stdinSrc == nil {
			src, err := readInput(name, stdin)
			if err != nil {
				return nil, err
			}
			stdinSrc = src
		}
		sources[i] = stdinSrc
	}

	results := make([]checkResult, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(names)))

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			src := sources[i]
			if src == nil {
				var err error
				if src, err = readInput(name, nil); err != nil {
					return err
				}
			}

			var buf bytes.Buffer
			err := a.checkString(&buf, src, opts)
			results[i] = checkResult{
				name:   name,
				report: buf.Bytes(),
				err:    err,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// checkString writes the report for one input: the input itself, its
// tokens and its parse tree. The report stops where the first stage fails.
func (a *app) checkString(w io.Writer, src []byte, opts ast.PrintOptions) error {
	fmt.Fprintln(w, heavyRule)
	fmt.Fprint(w, "Input: ")
	fmt.Fprintln(w, string(src))
	fmt.Fprintln(w, lightRule)

	tokens, err := lexer.Tokenize(src, a.lexerOptions()...)
	if err != nil {
		fmt.Fprintln(w, invalidInputMessage)
		return err
	}

	fmt.Fprintln(w, "Tokens")
	fmt.Fprintln(w, lightRule)
	if err := ast.FprintTokens(w, tokens, opts); err != nil {
		return err
	}
	fmt.Fprintln(w, lightRule)

	tree, err := parser.Parse(tokens, a.parserOptions()...)
	if err != nil {
		fmt.Fprintln(w, invalidInputMessage)
		return err
	}

	fmt.Fprintln(w, "Parse Tree")
	fmt.Fprintln(w, lightRule)
	if err := ast.Fprint(w, tree, opts); err != nil {
		return err
	}
	fmt.Fprintln(w, lightRule)
	return nil
}
