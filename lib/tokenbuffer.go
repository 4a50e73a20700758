package lib

import (
	"errors"
	"time"
)

const tokenBufSize = 16

// TokenReadTimeout bounds how long a reader waits on the lexer goroutine.
var TokenReadTimeout = 1 * time.Second

type peekResult struct {
	tok  token
	done bool
	err  error
}

// tokenBuffer carries tokens from the lexer goroutine to the consumer.
// The lexer writes every token and then calls Done, which closes the
// stream; buffered tokens drain first and every read after that reports
// done. One saved result backs Peek.
type tokenBuffer struct {
	tokChan chan token
	peeked  *peekResult
}

func newTokenBuffer() *tokenBuffer {
	return &tokenBuffer{
		tokChan: make(chan token, tokenBufSize),
	}
}

func (tb *tokenBuffer) Next() (token, bool, error) {
	if tb.peeked != nil {
		res := tb.peeked
		tb.peeked = nil
		return res.tok, res.done, res.err
	}

	select {
	case tok, ok := <-tb.tokChan:
		if !ok {
			return token{}, true, nil
		}
		return tok, false, nil
	case <-time.After(TokenReadTimeout):
		return token{}, false, errors.New("timed out waiting for next token")
	}
}

func (tb *tokenBuffer) Peek() (token, bool, error) {
	if tb.peeked == nil {
		tok, done, err := tb.Next()
		tb.peeked = &peekResult{tok: tok, done: done, err: err}
	}
	return tb.peeked.tok, tb.peeked.done, tb.peeked.err
}

func (tb *tokenBuffer) Write(tok token) {
	tb.tokChan <- tok
}

// Done ends the stream. The lexer must not Write after calling it.
func (tb *tokenBuffer) Done() {
	close(tb.tokChan)
}
