package query

import (
	"strings"
	"unicode"
)

// Lexer tokenizes filter expressions
type Lexer struct {
	input []rune
	pos   int
	ch    rune
}

// NewLexer creates a new lexer
func NewLexer(input string) *Lexer {
	l := &Lexer{input: []rune(input)}
	l.readChar()
	return l
}

// readChar reads the next character
func (l *Lexer) readChar() {
	if l.pos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.pos]
	}
	l.pos++
}

// peekChar looks at the next character without advancing
func (l *Lexer) peekChar() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for unicode.IsSpace(l.ch) {
		l.readChar()
	}
}

// readString reads a quoted string
func (l *Lexer) readString(quote rune) (string, bool) {
	var result strings.Builder
	l.readChar() // skip opening quote

	for l.ch != quote && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				result.WriteRune('\n')
			case 't':
				result.WriteRune('\t')
			case '\\':
				result.WriteRune('\\')
			case quote:
				result.WriteRune(quote)
			default:
				result.WriteRune(l.ch)
			}
		} else {
			result.WriteRune(l.ch)
		}
		l.readChar()
	}

	if l.ch != quote {
		return result.String(), false
	}
	l.readChar() // skip closing quote

	return result.String(), true
}

// readNumber reads a number
func (l *Lexer) readNumber() string {
	var result strings.Builder
	if l.ch == '-' {
		result.WriteRune(l.ch)
		l.readChar()
	}
	for unicode.IsDigit(l.ch) || l.ch == '.' || l.ch == 'e' || l.ch == 'E' {
		result.WriteRune(l.ch)
		l.readChar()
	}
	return result.String()
}

// readIdentifier reads an identifier or keyword
func (l *Lexer) readIdentifier() string {
	var result strings.Builder
	for unicode.IsLetter(l.ch) || unicode.IsDigit(l.ch) || l.ch == '_' || l.ch == '.' {
		result.WriteRune(l.ch)
		l.readChar()
	}
	return result.String()
}

// twoChar emits a two-character operator when the next character matches,
// and the single-character fallback otherwise.
func (l *Lexer) twoChar(next rune, pair Token, single Token) Token {
	if l.peekChar() == next {
		l.readChar()
		l.readChar()
		return pair
	}
	l.readChar()
	return single
}

// NextToken returns the next token
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	switch l.ch {
	case 0:
		return Token{Type: TokenEOF, Value: ""}
	case '=':
		return l.twoChar('=', Token{Type: TokenEqual, Value: "=="}, Token{Type: TokenEqual, Value: "="})
	case '!':
		return l.twoChar('=', Token{Type: TokenNotEqual, Value: "!="}, Token{Type: TokenNot, Value: "!"})
	case '<':
		return l.twoChar('=', Token{Type: TokenLessEqual, Value: "<="}, Token{Type: TokenLess, Value: "<"})
	case '>':
		return l.twoChar('=', Token{Type: TokenGreaterEqual, Value: ">="}, Token{Type: TokenGreater, Value: ">"})
	case '&':
		return l.twoChar('&', Token{Type: TokenAnd, Value: "&&"}, Token{Type: TokenError, Value: "&"})
	case '|':
		return l.twoChar('|', Token{Type: TokenOr, Value: "||"}, Token{Type: TokenError, Value: "|"})
	case '(':
		l.readChar()
		return Token{Type: TokenLParen, Value: "("}
	case ')':
		l.readChar()
		return Token{Type: TokenRParen, Value: ")"}
	case '\'', '"':
		value, ok := l.readString(l.ch)
		if !ok {
			return Token{Type: TokenError, Value: value}
		}
		return Token{Type: TokenString, Value: value}
	case '`':
		// Backtick-quoted column names may contain spaces
		value, ok := l.readString('`')
		if !ok {
			return Token{Type: TokenError, Value: value}
		}
		return Token{Type: TokenIdent, Value: value}
	}

	if unicode.IsDigit(l.ch) || (l.ch == '-' && (unicode.IsDigit(l.peekChar()) || l.peekChar() == '.')) {
		return Token{Type: TokenNumber, Value: l.readNumber()}
	}
	if unicode.IsLetter(l.ch) || l.ch == '_' {
		value := l.readIdentifier()
		return Token{Type: identifierType(value), Value: value}
	}

	tok := Token{Type: TokenError, Value: string(l.ch)}
	l.readChar()
	return tok
}

// identifierType determines if an identifier is a keyword
func identifierType(ident string) TokenType {
	keywords := map[string]TokenType{
		"and":   TokenAnd,
		"or":    TokenOr,
		"not":   TokenNot,
		"true":  TokenBool,
		"false": TokenBool,
		"null":  TokenNull,
		"none":  TokenNull,
	}

	if tokType, ok := keywords[strings.ToLower(ident)]; ok {
		return tokType
	}
	return TokenIdent
}

// Tokenize returns all tokens from the input
func Tokenize(input string) []Token {
	lexer := NewLexer(input)
	var tokens []Token

	for {
		tok := lexer.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF || tok.Type == TokenError {
			break
		}
	}

	return tokens
}
