package lib

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateSingleNumber(t *testing.T) {
	tests := []struct {
		tok  string
		want int64
	}{
		{tok: "5", want: 5},
		{tok: "-5", want: -5},
		{tok: "+7", want: 7},
		{tok: "0", want: 0},
		{tok: "9223372036854775807", want: math.MaxInt64},
		{tok: "-9223372036854775808", want: math.MinInt64},
	}

	for _, test := range tests {
		got, err := Calculate([]string{test.tok})
		require.NoError(t, err, test.tok)
		require.Equal(t, test.want, got, test.tok)
	}
}

func TestCalculateBinary(t *testing.T) {
	tests := []struct {
		tokens []string
		want   int64
	}{
		{tokens: []string{"2", "+", "3"}, want: 5},
		{tokens: []string{"2", "-", "3"}, want: -1},
		{tokens: []string{"4", "*", "5"}, want: 20},
		{tokens: []string{"4", "x", "5"}, want: 20},
		{tokens: []string{"20", "/", "6"}, want: 3},
		{tokens: []string{"20", "%", "6"}, want: 2},
		{tokens: []string{"-7", "/", "2"}, want: -3},
		{tokens: []string{"-7", "%", "2"}, want: -1},
	}

	for _, test := range tests {
		got, err := Calculate(test.tokens)
		require.NoError(t, err, "%v", test.tokens)
		require.Equal(t, test.want, got, "%v", test.tokens)
	}
}

func TestCalculatePrecedence(t *testing.T) {
	got, err := Calculate([]string{"2", "+", "3", "*", "4"})
	require.NoError(t, err)
	require.Equal(t, int64(14), got)

	got, err = Calculate([]string{"2", "*", "3", "+", "4", "*", "5"})
	require.NoError(t, err)
	require.Equal(t, int64(26), got)

	got, err = Calculate([]string{"10", "-", "6", "/", "2"})
	require.NoError(t, err)
	require.Equal(t, int64(7), got)
}

func TestCalculateLeftAssociative(t *testing.T) {
	// 8-3-2 is (8-3)-2, not 8-(3-2).
	got, err := Calculate([]string{"8", "-", "3", "-", "2"})
	require.NoError(t, err)
	require.Equal(t, int64(3), got)

	got, err = Calculate([]string{"100", "/", "10", "/", "2"})
	require.NoError(t, err)
	require.Equal(t, int64(5), got)
}

func TestCalculateDivisionByZero(t *testing.T) {
	_, err := Calculate([]string{"5", "/", "0"})
	require.Equal(t, ErrDivisionByZero, err)

	_, err = Calculate([]string{"5", "%", "0"})
	require.Equal(t, ErrDivisionByZero, err)
}

func TestCalculateOverflow(t *testing.T) {
	maxInt := strconv.FormatInt(math.MaxInt64, 10)
	minInt := strconv.FormatInt(math.MinInt64, 10)

	_, err := Calculate([]string{maxInt, "+", "1"})
	require.Equal(t, ErrOverflow, err)

	_, err = Calculate([]string{minInt, "-", "1"})
	require.Equal(t, ErrOverflow, err)

	_, err = Calculate([]string{maxInt, "*", "2"})
	require.Equal(t, ErrOverflow, err)
}

func TestCalculateUnknownOperator(t *testing.T) {
	_, err := Calculate([]string{"3", "&", "2"})

	var unknownErr *UnknownOperatorError
	require.True(t, errors.As(err, &unknownErr))
	require.Equal(t, "&", unknownErr.Token)
	require.EqualError(t, err, "unknown operator: &")
}

func TestCalculateNonIntegerLiteral(t *testing.T) {
	_, err := Calculate([]string{"3", "+", "2.5"})

	var invalidErr *InvalidInputError
	require.True(t, errors.As(err, &invalidErr))
	require.EqualError(t, err, "invalid input: not an integer: 2.5")
}

func TestCalculateInsufficientOperands(t *testing.T) {
	_, err := Calculate([]string{"1", "+", "+"})

	var invalidErr *InvalidInputError
	require.True(t, errors.As(err, &invalidErr))
	require.EqualError(t, err, "invalid input: insufficient operands for operation +")
}

func TestCalculateIdempotent(t *testing.T) {
	tokens := []string{"2", "+", "3", "*", "4", "-", "5"}
	for i := 0; i < 3; i++ {
		got, err := Calculate(tokens)
		require.NoError(t, err)
		require.Equal(t, int64(9), got)
	}
}

func TestCalculateExpr(t *testing.T) {
	got, err := CalculateExpr("2 + 3*4")
	require.NoError(t, err)
	require.Equal(t, int64(14), got)

	got, err = CalculateExpr("3 x 4")
	require.NoError(t, err)
	require.Equal(t, int64(12), got)

	got, err = CalculateExpr("10 * -2")
	require.NoError(t, err)
	require.Equal(t, int64(-20), got)

	_, err = CalculateExpr("5 / 0")
	require.Equal(t, ErrDivisionByZero, err)

	// A multi-byte symbol flows through the whole pipeline and comes
	// back as a classified error, not a crash.
	_, err = CalculateExpr("2 ÷ 3")
	var unknownErr *UnknownOperatorError
	require.True(t, errors.As(err, &unknownErr))
	require.Equal(t, "÷", unknownErr.Token)
}
