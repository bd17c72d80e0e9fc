package lib

// TokenSource hands the parser one token per call. Once the input is
// exhausted every further call returns a TokenEOF token.
type TokenSource interface {
	Next() Token
}

// sourceErr is implemented by token sources that can fail underneath, like a
// Lexer reading from a file.
type sourceErr interface {
	Err() error
}
