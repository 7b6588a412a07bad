// Kron is a command line tool to inspect the Kronecker codec tables and to
// encode, decode and print monomials.
package main

import (
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
