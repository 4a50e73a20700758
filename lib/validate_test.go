package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateSingleToken(t *testing.T) {
	require.NoError(t, Validate([]string{"5"}))
	require.NoError(t, Validate([]string{"-5"}))
	require.NoError(t, Validate([]string{"+7"}))
	require.NoError(t, Validate([]string{"0"}))
}

func TestValidateSingleTokenRejected(t *testing.T) {
	err := Validate([]string{"abc"})
	require.EqualError(t, err, "Invalid input: abc")

	err = Validate([]string{"2.5"})
	require.EqualError(t, err, "Invalid input: 2.5")

	err = Validate([]string{"-"})
	require.EqualError(t, err, "Invalid input: -")
}

func TestValidateTokenCounts(t *testing.T) {
	valid := [][]string{
		{"1", "+", "2"},
		{"1", "+", "2", "*", "3"},
		{"1", "+", "2", "*", "3", "-", "4"},
	}
	for _, tokens := range valid {
		require.NoError(t, Validate(tokens), "%d tokens", len(tokens))
	}

	invalid := [][]string{
		{},
		{"1", "+"},
		{"1", "+", "2", "*"},
		{"1", "+", "2", "*", "3", "-"},
	}
	for _, tokens := range invalid {
		err := Validate(tokens)
		require.EqualError(t, err, "Usage: calc <number> [<operator> <number>]...", "%d tokens", len(tokens))
	}
}

func TestValidateChecksShapeOnly(t *testing.T) {
	// Operator and operand content is the evaluator's responsibility.
	require.NoError(t, Validate([]string{"a", "b", "c"}))
}
