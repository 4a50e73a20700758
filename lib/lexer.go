package lib

type charInfo struct {
	ch       rune
	location charLocation
}

// lex splits an expression string into tokens. Unknown symbols are emitted
// as word tokens rather than rejected here, so that the evaluator owns the
// classification of bad input.
func lex(expr string, emit func(token)) {
	l := newLexer(expr, emit)
	l.scan()
}

type lexer struct {
	expr             []rune
	length           int
	currentCharIndex int
	currentLocation  charLocation
	tokenStartIndex  int
	tokenLocation    charLocation
	emitCallback     func(token)
}

func newLexer(expr string, emit func(token)) *lexer {
	// length must count runes, not bytes, or multi-byte input walks
	// peek past the end of the rune slice.
	runes := []rune(expr)
	return &lexer{
		expr:             runes,
		length:           len(runes),
		currentCharIndex: 0,
		currentLocation:  charLocation{line: 1, col: 1},
		tokenStartIndex:  0,
		tokenLocation:    charLocation{line: 1, col: 1},
		emitCallback:     emit,
	}
}

func (l *lexer) emit(tok token) {
	l.endWord()
	l.emitCallback(tok)
	l.resetToken()
}

func (l *lexer) peek(offset int) (charInfo, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return charInfo{}, false
	}
	return charInfo{ch: l.expr[i], location: l.currentLocation}, true
}

func (l *lexer) advance() (charInfo, bool) {
	info, ok := l.peek(0)
	l.currentCharIndex++
	if info.ch == '\n' {
		l.currentLocation.line++
		l.currentLocation.col = 1
	} else {
		l.currentLocation.col++
	}
	return info, ok
}

func (l *lexer) scan() {
	for l.next() {
	}
}

func (l *lexer) next() bool {
	chInfo, ok := l.advance()
	if !ok {
		l.endWord()
		return false
	}
	ch := chInfo.ch

	switch ch {
	case '+':
		l.emit(token{tokType: tokenTypePlus, location: chInfo.location})
	case '-':
		l.emit(token{tokType: tokenTypeMinus, location: chInfo.location})
	case '*':
		l.emit(token{tokType: tokenTypeAsterisk, location: chInfo.location})
	case '/':
		l.emit(token{tokType: tokenTypeSlash, location: chInfo.location})
	case '%':
		l.emit(token{tokType: tokenTypePercent, location: chInfo.location})
	case ' ', '\t', '\r', '\n':
		l.eatWhitespace()
	default:
		// A digit starting a fresh token begins a number. A digit inside
		// a word (eg "x2") stays part of the word so the evaluator can
		// report the whole token.
		if isDigit(ch) && l.isFirstCharOfToken() {
			l.scanNumber()
		}
	}

	return true
}

func (l *lexer) isFirstCharOfToken() bool {
	return l.currentCharIndex-1 == l.tokenStartIndex
}

// scanNumber consumes the remainder of a digit run. Decimal points are kept
// in the token value; the evaluator rejects non-integer literals so that a
// float input fails with the right error kind instead of a lex error.
func (l *lexer) scanNumber() {
	for {
		next, ok := l.peek(0)
		if !ok {
			break
		}
		if !isDigit(next.ch) && next.ch != '.' {
			break
		}
		_, _ = l.advance()
	}

	substr := l.expr[l.tokenStartIndex:l.currentCharIndex]
	l.emitCallback(token{tokType: tokenTypeNumber, value: substr, location: l.tokenLocation})
	l.resetToken()
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func (l *lexer) eatWhitespace() {
	l.endWord()
}

func (l *lexer) endWord() {
	if l.currentCharIndex > l.tokenStartIndex+1 {
		substr := l.expr[l.tokenStartIndex : l.currentCharIndex-1]
		l.emitCallback(token{tokType: tokenTypeWord, value: substr, location: l.tokenLocation})
	}
	l.resetToken()
}

func (l *lexer) resetToken() {
	l.tokenLocation = l.currentLocation
	l.tokenStartIndex = l.currentCharIndex
}
