package main

import (
	"fmt"
	"io"
	"os"
)

const stdinName = "-"

// readInput reads the named file, or r when the name is empty or "-"
func readInput(name string, r io.Reader) ([]byte, error) {
	if name == "" || name == stdinName {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func inputName(args []string) string {
	if len(args) == 0 {
		return stdinName
	}
	return args[0]
}
