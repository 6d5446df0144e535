package main

// batch.go: YAML batch files for the solve command. A file holds a list of
// puzzles, each a word list plus an optional operator and display name:
//
//	puzzles:
//	  - name: classic
//	    words: [SEND, MORE, MONEY]
//	    operator: "+"
//	  - words: [AB, C, DDD]
//	    operator: "*"

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// batchPuzzle is one puzzle entry of a batch file. Operator defaults to
// addition when empty.
type batchPuzzle struct {
	Name     string   `yaml:"name"`
	Words    []string `yaml:"words"`
	Operator string   `yaml:"operator"`
}

type batchFile struct {
	Puzzles []batchPuzzle `yaml:"puzzles"`
}

// loadBatch reads and decodes a batch file, rejecting files with no puzzles.
func loadBatch(path string) ([]batchPuzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	return parseBatch(data)
}

func parseBatch(data []byte) ([]batchPuzzle, error) {
	var f batchFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing batch file: %w", err)
	}
	if len(f.Puzzles) == 0 {
		return nil, fmt.Errorf("batch file contains no puzzles")
	}
	return f.Puzzles, nil
}
