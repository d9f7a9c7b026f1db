//go:build fuzz

package main

import (
	"github.com/spf13/cobra"

	"github.com/azalea-lang/azalea/internal/compile"
	"github.com/azalea-lang/azalea/internal/fuzz"
)

func registerFuzzFlags(cmd *cobra.Command, args *rootArgs) {
	cmd.Flags().Uint32Var(&args.fuzzSeed, "fuzz-seed", fuzz.DefaultSeed,
		"xorshift32 seed for pre-mutating the source before preprocessing")
}

func fuzzMutator(args rootArgs) compile.InputMutator {
	return fuzz.New(args.fuzzSeed)
}
