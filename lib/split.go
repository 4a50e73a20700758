package lib

// Split breaks a whole expression string into the same token list the
// command line surface would supply, eg "2+3 * 4" into
// ["2" "+" "3" "*" "4"]. A plus or minus sitting where an operand is
// expected and followed directly by a number folds into that number, so
// "3 * -2" splits to ["3" "*" "-2"].
func Split(expr string) ([]string, error) {
	buffer := newTokenBuffer()

	go (func() {
		lex(expr, buffer.Write)
		buffer.Done()
	})()

	return drainTokens(buffer)
}

func drainTokens(reader tokenReader) ([]string, error) {
	tokens := []string{}
	operandExpected := true

	for {
		tok, done, err := reader.Next()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}

		if isSignToken(tok) && operandExpected {
			ahead, aheadDone, err := reader.Peek()
			if err != nil {
				return nil, err
			}
			if !aheadDone && ahead.tokType == tokenTypeNumber {
				_, _, err = reader.Next()
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, tokenString(tok)+string(ahead.value))
				operandExpected = false
				continue
			}
		}

		tokens = append(tokens, tokenString(tok))
		operandExpected = isOperatorToken(tok)
	}

	return tokens, nil
}
