//go:build !fuzz

package main

import (
	"github.com/spf13/cobra"

	"github.com/azalea-lang/azalea/internal/compile"
)

// registerFuzzFlags is a no-op in the default build: --fuzz-seed only
// exists when built with -tags fuzz.
func registerFuzzFlags(*cobra.Command, *rootArgs) {}

func fuzzMutator(rootArgs) compile.InputMutator { return nil }
