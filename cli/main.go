package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		var exit *ExitError
		if errors.As(err, &exit) {
			if exit.Err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", exit.Err)
			}
			os.Exit(exit.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
