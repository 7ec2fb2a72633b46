package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr, listenAndServe).Execute(); err != nil {
		os.Exit(1)
	}
}
