package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/xiam/lispish/ast"
	"github.com/xiam/lispish/lexer"
)

func (a *app) cmdTokenize() *cobra.Command {
	format := "pretty"
	var cmd = &cobra.Command{
		Use:   "tokenize [file]",
		Short: "print the lexemes of a file (stdin when omitted)",
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
			a.logger.Debug("tokenize", "input", name, "tokens", len(tokens))

			w := cmd.OutOrStdout()
			switch format {
			case "pretty":
				return ast.FprintTokens(w, tokens, a.renderOptions(w))
			case "json":
				return encodeJSON(w, ast.SnapshotAll(tokens))
			case "msgpack":
				return msgpack.NewEncoder(w).Encode(ast.SnapshotAll(tokens))
			default:
				return fmt.Errorf("unknown format: %s", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", format, "output format (pretty|json|msgpack)")
	return cmd
}

func encodeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
