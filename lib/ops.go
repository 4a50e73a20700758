package lib

import "math"

type operatorType int

const (
	OperatorAdd operatorType = iota
	OperatorSubtract
	OperatorMultiply
	OperatorDivide
	OperatorModulo
)

// parseOperator maps an operator token to its operatorType. "x" is an
// alias for multiplication.
func parseOperator(tok string) (operatorType, bool) {
	switch tok {
	case "+":
		return OperatorAdd, true
	case "-":
		return OperatorSubtract, true
	case "*", "x":
		return OperatorMultiply, true
	case "/":
		return OperatorDivide, true
	case "%":
		return OperatorModulo, true
	}

	return 0, false
}

func (op operatorType) String() string {
	switch op {
	case OperatorAdd:
		return "+"
	case OperatorSubtract:
		return "-"
	case OperatorMultiply:
		return "*"
	case OperatorDivide:
		return "/"
	case OperatorModulo:
		return "%"
	default:
		return "?"
	}
}

func (op operatorType) precedence() int {
	switch op {
	case OperatorAdd:
		return 1
	case OperatorSubtract:
		return 1
	case OperatorMultiply:
		return 2
	case OperatorDivide:
		return 2
	case OperatorModulo:
		return 2
	default:
		return 0
	}
}

// hasPrecedence reports whether a binds at least as tightly as b. Equal
// precedence counts, which is what makes same-level operators reduce left
// to right.
func hasPrecedence(a operatorType, b operatorType) bool {
	return a.precedence() >= b.precedence()
}

// apply computes "left op right" with checked arithmetic: overflow and
// zero divisors are reported, never wrapped or panicked on.
func (op operatorType) apply(left int64, right int64) (int64, error) {
	switch op {
	case OperatorAdd:
		return checkedAdd(left, right)
	case OperatorSubtract:
		return checkedSubtract(left, right)
	case OperatorMultiply:
		return checkedMultiply(left, right)
	case OperatorDivide:
		return checkedDivide(left, right)
	case OperatorModulo:
		return checkedModulo(left, right)
	default:
		return 0, newUnknownOperator(op.String())
	}
}

func checkedAdd(left int64, right int64) (int64, error) {
	if right > 0 && left > math.MaxInt64-right {
		return 0, ErrOverflow
	}
	if right < 0 && left < math.MinInt64-right {
		return 0, ErrOverflow
	}
	return left + right, nil
}

func checkedSubtract(left int64, right int64) (int64, error) {
	if right < 0 && left > math.MaxInt64+right {
		return 0, ErrOverflow
	}
	if right > 0 && left < math.MinInt64+right {
		return 0, ErrOverflow
	}
	return left - right, nil
}

func checkedMultiply(left int64, right int64) (int64, error) {
	if left == 0 || right == 0 {
		return 0, nil
	}
	if left == math.MinInt64 || right == math.MinInt64 {
		// MinInt64 only survives multiplication by 1.
		if left == 1 || right == 1 {
			return math.MinInt64, nil
		}
		return 0, ErrOverflow
	}

	result := left * right
	if result/right != left {
		return 0, ErrOverflow
	}
	return result, nil
}

// checkedDivide truncates toward zero, matching the native division of the
// int64 type. MinInt64 / -1 is the one quotient that does not fit.
func checkedDivide(left int64, right int64) (int64, error) {
	if right == 0 {
		return 0, ErrDivisionByZero
	}
	if left == math.MinInt64 && right == -1 {
		return 0, ErrOverflow
	}
	return left / right, nil
}

// checkedModulo keeps the sign of the dividend. The right == -1 case is
// always zero and is special-cased so MinInt64 % -1 cannot trap.
func checkedModulo(left int64, right int64) (int64, error) {
	if right == 0 {
		return 0, ErrDivisionByZero
	}
	if right == -1 {
		return 0, nil
	}
	return left % right, nil
}
