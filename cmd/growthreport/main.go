// Command growthreport drives a DynamicArray through a sequence of
// operations and reports every reallocation it makes.
package main

import (
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
