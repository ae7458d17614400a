package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/xiam/lispish"
	"github.com/xiam/lispish/ast"
	"github.com/xiam/lispish/config"
	"github.com/xiam/lispish/lexer"
	"github.com/xiam/lispish/parser"
)

// app holds the state shared by all subcommands, set up once the flags are
// parsed
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{
		cfg:    config.Default(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	var configFile string
	var colorMode string
	var debug, quiet bool

	cmdRoot := &cobra.Command{
		Use:          "lispish",
		Short:        "lispish grammar checker",
		Long:         `lispish tokenizes and parses S-expressions and prints their parse tree.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			} else if quiet {
				level = slog.LevelError
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			if configFile == "" {
				path, err := config.Find(".")
				if err != nil {
					return err
				}
				configFile = path
			}
			if configFile != "" {
				cfg, err := config.Load(configFile)
				if err != nil {
					return err
				}
				a.cfg = cfg
				a.logger.Debug("config", "path", configFile)
			}

			if colorMode != "" {
				a.cfg.Render.Color = colorMode
				if err := a.cfg.Validate(); err != nil {
					return fmt.Errorf("--color: %w", err)
				}
			}
			return nil
		},
	}

	cmdRoot.PersistentFlags().StringVar(&configFile, "config", "", "load configuration from file (default: nearest "+config.FileName+")")
	cmdRoot.PersistentFlags().StringVar(&colorMode, "color", "", "colorize output (auto|on|off)")
	cmdRoot.PersistentFlags().BoolVar(&debug, "debug", false, "log debugging information")
	cmdRoot.PersistentFlags().BoolVar(&quiet, "quiet", false, "log less information")

	cmdRoot.AddCommand(a.cmdTokenize())
	cmdRoot.AddCommand(a.cmdParse())
	cmdRoot.AddCommand(a.cmdCheck())
	cmdRoot.AddCommand(cmdVersion())

	return cmdRoot
}

func (a *app) lexerOptions() []lexer.Option {
	return append(a.cfg.LexerOptions(), lexer.WithLogger(a.logger))
}

func (a *app) parserOptions() []parser.Option {
	return append(a.cfg.ParserOptions(), parser.WithLogger(a.logger))
}

func (a *app) renderOptions(w io.Writer) ast.PrintOptions {
	return a.cfg.RenderOptions(isTerminal(w))
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Fprintln(cmd.OutOrStdout(), lispish.Version().String())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), lispish.Version().Core())
			return nil
		},
	}
	cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
	return cmd
}
