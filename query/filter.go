package query

import (
	"fmt"
	"time"

	"github.com/vegasq/tabproc/table"
)

// compare compares two values using the given operator
func compare(left interface{}, operator TokenType, right interface{}) (bool, error) {
	// Handle missing values; NaN cells count as missing like nil
	leftMissing, rightMissing := table.IsMissing(left), table.IsMissing(right)
	if leftMissing || rightMissing {
		if operator == TokenEqual {
			return leftMissing && rightMissing, nil
		}
		if operator == TokenNotEqual {
			return leftMissing != rightMissing, nil
		}
		return false, nil
	}

	// Try numeric comparison
	_, leftIsNum := table.ToFloat64(left)
	_, rightIsNum := table.ToFloat64(right)

	if leftIsNum && rightIsNum {
		return compareNumbers(table.Compare(left, right), operator), nil
	}

	// Try string comparison
	leftStr, leftIsStr := toString(left)
	rightStr, rightIsStr := toString(right)

	if leftIsStr && rightIsStr {
		return compareStrings(leftStr, operator, rightStr), nil
	}

	// Try boolean comparison
	leftBool, leftIsBool := toBool(left)
	rightBool, rightIsBool := toBool(right)

	if leftIsBool && rightIsBool {
		return compareBools(leftBool, operator, rightBool), nil
	}

	// Values of different types are never equal; ordering them is an error
	switch operator {
	case TokenEqual:
		return false, nil
	case TokenNotEqual:
		return true, nil
	}
	return false, fmt.Errorf("%w: cannot compare %T with %T", ErrTypeMismatch, left, right)
}

// toString converts a value to string if possible.
// Timestamps compare as RFC 3339 text, so a date literal works against them.
func toString(v interface{}) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case time.Time:
		return val.Format(time.RFC3339Nano), true
	default:
		return "", false
	}
}

// toBool converts a value to bool if possible
func toBool(v interface{}) (bool, bool) {
	if b, ok := v.(bool); ok {
		return b, true
	}
	return false, false
}

// compareNumbers applies operator to the result of table.Compare
func compareNumbers(cmp int, operator TokenType) bool {
	switch operator {
	case TokenEqual:
		return cmp == 0
	case TokenNotEqual:
		return cmp != 0
	case TokenLess:
		return cmp < 0
	case TokenGreater:
		return cmp > 0
	case TokenLessEqual:
		return cmp <= 0
	case TokenGreaterEqual:
		return cmp >= 0
	default:
		return false
	}
}

// compareStrings compares two strings (case-sensitive)
func compareStrings(left string, operator TokenType, right string) bool {
	switch operator {
	case TokenEqual:
		return left == right
	case TokenNotEqual:
		return left != right
	case TokenLess:
		return left < right
	case TokenGreater:
		return left > right
	case TokenLessEqual:
		return left <= right
	case TokenGreaterEqual:
		return left >= right
	default:
		return false
	}
}

// compareBools compares two booleans
func compareBools(left bool, operator TokenType, right bool) bool {
	switch operator {
	case TokenEqual:
		return left == right
	case TokenNotEqual:
		return left != right
	default:
		return false
	}
}

// ApplyFilter returns the rows of t that satisfy filter.
//
// Every column the filter references must exist in t; otherwise the error
// wraps table.ErrColumnNotFound and no row is evaluated.
func ApplyFilter(t *table.Table, filter Expression) (*table.Table, error) {
	if t == nil {
		return nil, table.ErrNilTable
	}
	if filter == nil {
		return t, nil
	}

	for _, col := range Columns(filter) {
		if !t.HasColumn(col) {
			return nil, fmt.Errorf("%w: %q", table.ErrColumnNotFound, col)
		}
	}

	return t.Filter(filter.Evaluate)
}
