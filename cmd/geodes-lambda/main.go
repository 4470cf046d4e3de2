//go:build !lambda

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "geodes-lambda: build with -tags lambda to run inside AWS Lambda")
	os.Exit(2)
}
