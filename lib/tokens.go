package lib

type tokenType int

const (
	tokenTypeWord tokenType = iota
	tokenTypeNumber
	tokenTypePlus
	tokenTypeMinus
	tokenTypeAsterisk
	tokenTypeSlash
	tokenTypePercent
)

type charLocation struct {
	line int
	col  int
}

type token struct {
	tokType  tokenType
	value    []rune
	location charLocation
}

func tokenString(tok token) string {
	switch tok.tokType {
	case tokenTypePlus:
		return "+"
	case tokenTypeMinus:
		return "-"
	case tokenTypeAsterisk:
		return "*"
	case tokenTypeSlash:
		return "/"
	case tokenTypePercent:
		return "%"
	default:
		return string(tok.value)
	}
}

// isSignToken reports whether the token could be the sign of a following
// number literal rather than a binary operator.
func isSignToken(tok token) bool {
	return tok.tokType == tokenTypePlus || tok.tokType == tokenTypeMinus
}

func isOperatorToken(tok token) bool {
	switch tok.tokType {
	case tokenTypePlus, tokenTypeMinus, tokenTypeAsterisk, tokenTypeSlash, tokenTypePercent:
		return true
	default:
		return false
	}
}
