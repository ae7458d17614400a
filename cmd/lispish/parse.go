package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/xiam/lispish/ast"
	"github.com/xiam/lispish/lexer"
	"github.com/xiam/lispish/parser"
)

func (a *app) cmdParse() *cobra.Command {
	format := "tree"
	var cmd = &cobra.Command{
		Use:   "parse [file]",
		Short: "print the parse tree of a file (stdin when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := inputName(args)
			src, err := readInput(name, cmd.InOrStdin())
			if err != nil {
				return err
			}
			tokens, err := lexer.Tokenize(src, a.lexerOptions()...)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			tree, err := parser.Parse(tokens, a.parserOptions()...)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			w := cmd.OutOrStdout()
			switch format {
			case "tree":
				return ast.Fprint(w, tree, a.renderOptions(w))
			case "sexpr":
				_, err := fmt.Fprintf(w, "%s\n", ast.Encode(tree))
				return err
			case "json":
				return encodeJSON(w, ast.Snapshot(tree))
			case "msgpack":
				return msgpack.NewEncoder(w).Encode(ast.Snapshot(tree))
			default:
				return fmt.Errorf("unknown format: %s", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", format, "output format (tree|sexpr|json|msgpack)")
	return cmd
}
