// Package main provides the verge CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("verge %s\n", version)
		return
	}

	fmt.Println("verge - Decision Boundary Extraction for Go Classifiers")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("See examples/circles for a runnable boundary extraction demo.")
}
