package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/azalea-lang/azalea/internal/clog"
	"github.com/azalea-lang/azalea/internal/compile"
	"github.com/azalea-lang/azalea/internal/diag"
)

type rootArgs struct {
	sourcePath   string
	verboseLex   bool
	verboseParse bool
	fuzzSeed     uint32
}

// osLoader implements compile.SourceLoader over the local filesystem.
type osLoader struct{}

func (osLoader) Load(path string) ([]byte, error) { return os.ReadFile(path) }

func newRootCmd() *cobra.Command {
	var args rootArgs

	cmd := &cobra.Command{
		Use:   "azalea",
		Short: "Azalea compiler front end: preprocess, lex, parse, and check a source file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, args)
		},
	}

	cmd.Flags().StringVar(&args.sourcePath, "source-path", "", "path to the source file (must end in .az)")
	cmd.Flags().BoolVar(&args.verboseLex, "verbose-lex", false, "log a line once lexing has completed (the token stream itself is not printed)")
	cmd.Flags().BoolVar(&args.verboseParse, "verbose-parse", false, "dump the AST after parsing")
	_ = cmd.MarkFlagRequired("source-path")
	registerFuzzFlags(cmd, &args)

	return cmd
}

func run(cmd *cobra.Command, args rootArgs) error {
	logger, err := clog.New(args.verboseLex || args.verboseParse)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if !strings.HasSuffix(args.sourcePath, ".az") {
		d := diag.New(diag.CodeIncorrectFileExt, 0,
			"source file must have a .az extension",
			fmt.Sprintf("got %q", args.sourcePath), "", "").WithPath(args.sourcePath)
		printDiagnostic(cmd, d)
		return fmt.Errorf("incorrect file extension")
	}

	raw, err := (osLoader{}).Load(args.sourcePath)
	if err != nil {
		return err
	}

	opts := compile.Options{Mutator: fuzzMutator(args)}

	prog, _, diags, err := compile.Compile(raw, args.sourcePath, opts)
	for _, d := range diags {
		printDiagnostic(cmd, d)
	}
	if err != nil {
		return err
	}

	if args.verboseLex {
		logger.Info("lex stage complete")
	}
	if args.verboseParse {
		dumpProgram(cmd, prog)
	}
	return nil
}

var formatter = diag.NewFormatter()

func printDiagnostic(cmd *cobra.Command, d diag.Diagnostic) {
	formatter.Print(cmd.ErrOrStderr(), d)
}
