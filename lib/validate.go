package lib

import (
	"errors"
	"fmt"
	"strconv"
)

var errUsage = errors.New("Usage: calc <number> [<operator> <number>]...")

// Validate rejects token lists whose shape cannot possibly evaluate: a
// lone token that is not an integer, or a multi-token list whose count is
// even or below three. Token content beyond shape is the evaluator's job.
func Validate(tokens []string) error {
	if len(tokens) == 1 {
		if _, err := strconv.ParseInt(tokens[0], 10, 64); err != nil {
			return fmt.Errorf("Invalid input: %s", tokens[0])
		}
		return nil
	}

	if len(tokens) < 3 || len(tokens)%2 == 0 {
		return errUsage
	}

	return nil
}
