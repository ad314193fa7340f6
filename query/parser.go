package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser parses filter expressions into an AST
type Parser struct {
	tokens       []Token
	pos          int
	depthCounter *ExpressionDepthCounter
}

// NewParser creates a new parser
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens:       tokens,
		pos:          0,
		depthCounter: NewExpressionDepthCounter(),
	}
}

// current returns the current token
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF, Value: ""}
	}
	return p.tokens[p.pos]
}

// advance moves to the next token
func (p *Parser) advance() {
	p.pos++
}

// expect checks if current token matches expected type and advances
func (p *Parser) expect(tokType TokenType) error {
	if p.current().Type != tokType {
		return fmt.Errorf("%w: expected %v, got %v", ErrSyntax, tokType, p.current().Type)
	}
	p.advance()
	return nil
}

// Parse parses a filter expression such as "age > 30 and name != 'bob'"
func Parse(expr string) (Expression, error) {
	if err := ValidateExpression(expr); err != nil {
		return nil, err
	}

	tokens := Tokenize(expr)

	if err := ValidateTokens(tokens); err != nil {
		return nil, err
	}
	if last := tokens[len(tokens)-1]; last.Type == TokenError {
		return nil, fmt.Errorf("%w: unexpected %q", ErrSyntax, last.Value)
	}

	parser := NewParser(tokens)
	e, err := parser.parseOr()
	if err != nil {
		return nil, err
	}
	if err := parser.expect(TokenEOF); err != nil {
		return nil, err
	}

	return e, nil
}

// parseOr parses OR expressions (lowest precedence)
func (p *Parser) parseOr() (Expression, error) {
	if err := p.depthCounter.Enter(); err != nil {
		return nil, err
	}
	defer p.depthCounter.Exit()

	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Left:     left,
			Operator: TokenOr,
			Right:    right,
		}
	}

	return left, nil
}

// parseAnd parses AND expressions (higher precedence than OR)
func (p *Parser) parseAnd() (Expression, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenAnd {
		p.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Left:     left,
			Operator: TokenAnd,
			Right:    right,
		}
	}

	return left, nil
}

// parseNot parses prefix negation
func (p *Parser) parseNot() (Expression, error) {
	if p.current().Type != TokenNot {
		return p.parsePrimary()
	}

	if err := p.depthCounter.Enter(); err != nil {
		return nil, err
	}
	defer p.depthCounter.Exit()

	p.advance()
	operand, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	return &NotExpr{Operand: operand}, nil
}

// parsePrimary parses a parenthesized expression or a comparison
func (p *Parser) parsePrimary() (Expression, error) {
	if p.current().Type != TokenLParen {
		return p.parseComparison()
	}

	p.advance()
	e, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenRParen); err != nil {
		return nil, err
	}
	return e, nil
}

// parseComparison parses comparison expressions
func (p *Parser) parseComparison() (Expression, error) {
	// Parse column name
	if p.current().Type != TokenIdent {
		return nil, fmt.Errorf("%w: expected column name, got %v", ErrSyntax, p.current().Type)
	}
	column := p.current().Value

	if err := ValidateColumnName(column); err != nil {
		return nil, err
	}

	p.advance()

	// Parse operator
	operator := p.current().Type
	switch operator {
	case TokenEqual, TokenNotEqual, TokenLess, TokenGreater, TokenLessEqual, TokenGreaterEqual:
		p.advance()
	default:
		return nil, fmt.Errorf("%w: expected comparison operator, got %v", ErrSyntax, operator)
	}

	comp := &ComparisonExpr{
		Column:   column,
		Operator: operator,
	}

	// Parse value
	switch p.current().Type {
	case TokenString:
		comp.Value = p.current().Value
	case TokenNumber:
		numStr := p.current().Value
		// Try to parse as int first, then float
		if intVal, err := strconv.ParseInt(numStr, 10, 64); err == nil {
			comp.Value = intVal
		} else if floatVal, err := strconv.ParseFloat(numStr, 64); err == nil {
			comp.Value = floatVal
		} else {
			return nil, fmt.Errorf("%w: invalid number: %s", ErrSyntax, numStr)
		}
	case TokenBool:
		comp.Value = strings.ToLower(p.current().Value) == "true"
	case TokenNull:
		comp.Value = nil
	case TokenIdent:
		if err := ValidateColumnName(p.current().Value); err != nil {
			return nil, err
		}
		comp.ValueColumn = p.current().Value
	default:
		return nil, fmt.Errorf("%w: expected value (string, number, bool, null or column), got %v", ErrSyntax, p.current().Type)
	}
	p.advance()

	return comp, nil
}
