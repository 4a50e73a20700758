package lib

import (
	"fmt"
	"strconv"
)

// Calculate evaluates an infix token list with standard precedence and
// left associativity, using two stacks: operands pile up until an
// incoming operator is no tighter than the pending one, at which point
// the pending operation reduces. Every call owns fresh stacks so repeat
// calls on the same tokens always agree.
//
// Failures are classified: ErrDivisionByZero, ErrOverflow,
// InvalidInputError, UnknownOperatorError. The first failure aborts the
// evaluation.
func Calculate(tokens []string) (int64, error) {
	// A lone signed integer needs no operator machinery.
	if len(tokens) == 1 {
		if n, err := strconv.ParseInt(tokens[0], 10, 64); err == nil {
			return n, nil
		}
	}

	e := evaluator{}

	for _, tok := range tokens {
		if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
			e.operands = append(e.operands, n)
			continue
		}

		if op, isOp := parseOperator(tok); isOp {
			for len(e.operators) > 0 && hasPrecedence(e.topOperator(), op) {
				if err := e.reduceTop(); err != nil {
					return 0, err
				}
			}
			e.operators = append(e.operators, op)
			continue
		}

		if _, err := strconv.ParseFloat(tok, 64); err == nil {
			return 0, newInvalidInput("not an integer: " + tok)
		}

		return 0, newUnknownOperator(tok)
	}

	for len(e.operators) > 0 {
		if err := e.reduceTop(); err != nil {
			return 0, err
		}
	}

	if len(e.operands) == 0 {
		return 0, nil
	}
	return e.operands[len(e.operands)-1], nil
}

// CalculateExpr evaluates a whole expression string, eg "2 + 3*4".
func CalculateExpr(expr string) (int64, error) {
	tokens, err := Split(expr)
	if err != nil {
		return 0, err
	}
	return Calculate(tokens)
}

type evaluator struct {
	operands  []int64
	operators []operatorType
}

func (e *evaluator) topOperator() operatorType {
	return e.operators[len(e.operators)-1]
}

// reduceTop pops the pending operator and its two operands (most recently
// pushed is the right-hand side) and pushes the applied result.
func (e *evaluator) reduceTop() error {
	op := e.topOperator()
	e.operators = e.operators[:len(e.operators)-1]

	if len(e.operands) < 2 {
		return newInvalidInput(fmt.Sprintf("insufficient operands for operation %s", op))
	}

	right := e.operands[len(e.operands)-1]
	left := e.operands[len(e.operands)-2]
	e.operands = e.operands[:len(e.operands)-2]

	result, err := op.apply(left, right)
	if err != nil {
		return err
	}

	e.operands = append(e.operands, result)
	return nil
}
