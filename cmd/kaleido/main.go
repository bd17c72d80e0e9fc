package main

import (
	"os"

	"github.com/graeme-hill/kaleido-go/cmd/kaleido/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
