// Command gramo loads a pattern graph and a target graph from two
// AMALFI-format files and prints the number of matches found.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gramo/amalfi"
	"github.com/katalvlaran/gramo/recipe"
	"github.com/katalvlaran/gramo/state"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <pattern-file> <target-file>\n", os.Args[0])
		os.Exit(1)
	}

	count, err := run(os.Args[1], os.Args[2])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(count)
}

func run(patternPath, targetPath string) (int, error) {
	patternFile, err := os.Open(patternPath)
	if err != nil {
		return 0, fmt.Errorf("gramo: opening pattern file: %w", err)
	}
	defer patternFile.Close()

	targetFile, err := os.Open(targetPath)
	if err != nil {
		return 0, fmt.Errorf("gramo: opening target file: %w", err)
	}
	defer targetFile.Close()

	g, err := amalfi.ReadGraph(patternFile)
	if err != nil {
		return 0, fmt.Errorf("gramo: reading pattern graph: %w", err)
	}
	h, err := amalfi.ReadGraph(targetFile)
	if err != nil {
		return 0, fmt.Errorf("gramo: reading target graph: %w", err)
	}

	count := 0
	_, err = recipe.Match("ri", g, h, state.Induced, state.AlwaysVertexEq, state.AlwaysEdgeEq, func(state.State) bool {
		count++
		return true
	})
	if err != nil {
		return 0, fmt.Errorf("gramo: %w", err)
	}

	return count, nil
}
