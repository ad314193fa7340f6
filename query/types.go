// Package query provides predicate expressions for filtering table rows.
//
// It implements a small expression language over column names with
// comparison operators, boolean logic (and/or/not) and parentheses. The
// package includes a lexer for tokenization, a parser for building ASTs,
// and an evaluator for filtering rows.
//
// Example usage:
//
//	expr, err := Parse("directedBy == 'Ridley Scott' and avgRating >= 4")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	filtered, err := ApplyFilter(t, expr)
package query

import "github.com/vegasq/tabproc/table"

// TokenType represents the type of a token
type TokenType int

const (
	// Keywords
	TokenAnd TokenType = iota
	TokenOr
	TokenNot

	// Operators
	TokenEqual        // = or ==
	TokenNotEqual     // !=
	TokenLess         // <
	TokenGreater      // >
	TokenLessEqual    // <=
	TokenGreaterEqual // >=

	// Grouping
	TokenLParen
	TokenRParen

	// Literals
	TokenString
	TokenNumber
	TokenIdent
	TokenBool
	TokenNull

	// Special
	TokenEOF
	TokenError
)

var tokenNames = map[TokenType]string{
	TokenAnd:          "and",
	TokenOr:           "or",
	TokenNot:          "not",
	TokenEqual:        "==",
	TokenNotEqual:     "!=",
	TokenLess:         "<",
	TokenGreater:      ">",
	TokenLessEqual:    "<=",
	TokenGreaterEqual: ">=",
	TokenLParen:       "(",
	TokenRParen:       ")",
	TokenString:       "string",
	TokenNumber:       "number",
	TokenIdent:        "identifier",
	TokenBool:         "bool",
	TokenNull:         "null",
	TokenEOF:          "end of expression",
	TokenError:        "invalid token",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "unknown"
}

// Token represents a lexical token
type Token struct {
	Type  TokenType
	Value string
}

// Expression represents a boolean predicate over a row
type Expression interface {
	Evaluate(row table.Row) (bool, error)
}

// BinaryExpr represents a binary expression (AND/OR)
type BinaryExpr struct {
	Left     Expression
	Operator TokenType // TokenAnd or TokenOr
	Right    Expression
}

// NotExpr negates its operand
type NotExpr struct {
	Operand Expression
}

// ComparisonExpr represents a comparison expression.
//
// The right-hand side is either a literal Value or, when ValueColumn is
// set, the value of another column in the same row.
type ComparisonExpr struct {
	Column      string
	Operator    TokenType
	Value       interface{}
	ValueColumn string
}

// Evaluate evaluates a binary expression
func (b *BinaryExpr) Evaluate(row table.Row) (bool, error) {
	left, err := b.Left.Evaluate(row)
	if err != nil {
		return false, err
	}

	switch b.Operator {
	case TokenAnd:
		if !left {
			return false, nil
		}
	case TokenOr:
		if left {
			return true, nil
		}
	default:
		return false, nil
	}

	return b.Right.Evaluate(row)
}

// Evaluate evaluates a negation
func (n *NotExpr) Evaluate(row table.Row) (bool, error) {
	v, err := n.Operand.Evaluate(row)
	if err != nil {
		return false, err
	}
	return !v, nil
}

// Evaluate evaluates a comparison expression
func (c *ComparisonExpr) Evaluate(row table.Row) (bool, error) {
	right := c.Value
	if c.ValueColumn != "" {
		right = row[c.ValueColumn]
	}
	return compare(row[c.Column], c.Operator, right)
}

// Columns returns every column name an expression references, in order
// of first appearance.
func Columns(expr Expression) []string {
	seen := make(map[string]bool)
	var columns []string
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			columns = append(columns, name)
		}
	}

	var walk func(Expression)
	walk = func(e Expression) {
		switch v := e.(type) {
		case *BinaryExpr:
			walk(v.Left)
			walk(v.Right)
		case *NotExpr:
			walk(v.Operand)
		case *ComparisonExpr:
			add(v.Column)
			add(v.ValueColumn)
		}
	}
	walk(expr)

	return columns
}
