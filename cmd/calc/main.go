package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/graeme-hill/calcstuff-go/lib"
	"github.com/mattn/go-isatty"
)

func fail(err error) {
	// Diagnostics go to stdout, matching the documented CLI contract.
	fmt.Println(err)
	os.Exit(1)
}

func main() {
	flag.Parse()

	tokens := flag.Args()

	// With no arguments a piped stdin supplies one expression line,
	// eg: echo "2 + 3*4" | calc
	if len(tokens) == 0 && !isatty.IsTerminal(os.Stdin.Fd()) {
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			split, err := lib.Split(scanner.Text())
			if err != nil {
				fail(err)
			}
			tokens = split
		}
	}

	if err := lib.Validate(tokens); err != nil {
		fail(err)
	}

	result, err := lib.Calculate(tokens)
	if err != nil {
		fail(err)
	}

	fmt.Println(result)
}
