package table

import (
	"fmt"
	"math"
	"time"
)

// kind ranks value types so values of different types still order
// consistently: numbers, then strings, then booleans, then times, then
// anything else by its printed form.
type kind int

const (
	kindNumber kind = iota
	kindString
	kindBool
	kindTime
	kindOther
)

// Compare orders two non-nil values: -1 if a < b, 0 if equal, +1 if a > b.
// Numbers of any Go numeric type compare by value, integers exactly.
func Compare(a, b interface{}) int {
	ka, kb := kindOf(a), kindOf(b)
	if ka != kb {
		if ka < kb {
			return -1
		}
		return 1
	}

	switch ka {
	case kindNumber:
		return compareNumbers(a, b)
	case kindString:
		return compareOrdered(a.(string), b.(string))
	case kindBool:
		aBool, bBool := a.(bool), b.(bool)
		if aBool == bBool {
			return 0
		}
		if !aBool {
			return -1 // false < true
		}
		return 1
	case kindTime:
		aTime, bTime := a.(time.Time), b.(time.Time)
		return aTime.Compare(bTime)
	default:
		return compareOrdered(fmt.Sprintf("%v", a), fmt.Sprintf("%v", b))
	}
}

func compareOrdered[T float64 | string](a, b T) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func kindOf(v interface{}) kind {
	if _, ok := ToFloat64(v); ok {
		return kindNumber
	}
	switch v.(type) {
	case string:
		return kindString
	case bool:
		return kindBool
	case time.Time:
		return kindTime
	default:
		return kindOther
	}
}

// IsMissing reports whether v is a missing cell: nil or a float NaN.
func IsMissing(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(val)
	case float32:
		return math.IsNaN(float64(val))
	default:
		return false
	}
}

// compareNumbers orders two numeric values. Integers are compared exactly;
// NaN sorts after every other number.
func compareNumbers(a, b interface{}) int {
	aInt, aIsInt := toInteger(a)
	bInt, bIsInt := toInteger(b)
	if aIsInt && bIsInt {
		return aInt.compare(bInt)
	}

	aNum, _ := ToFloat64(a)
	bNum, _ := ToFloat64(b)
	aNaN, bNaN := math.IsNaN(aNum), math.IsNaN(bNum)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	}
	return compareOrdered(aNum, bNum)
}

// integer holds any Go integer without loss: values above math.MaxInt64
// are kept in big.
type integer struct {
	small int64
	big   uint64
	isBig bool
}

func (i integer) compare(o integer) int {
	switch {
	case i.isBig && o.isBig:
		return compareUint(i.big, o.big)
	case i.isBig:
		return 1
	case o.isBig:
		return -1
	}
	switch {
	case i.small < o.small:
		return -1
	case i.small > o.small:
		return 1
	}
	return 0
}

func compareUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func toInteger(v interface{}) (integer, bool) {
	switch val := v.(type) {
	case int:
		return integer{small: int64(val)}, true
	case int8:
		return integer{small: int64(val)}, true
	case int16:
		return integer{small: int64(val)}, true
	case int32:
		return integer{small: int64(val)}, true
	case int64:
		return integer{small: val}, true
	case uint:
		return unsignedInteger(uint64(val)), true
	case uint8:
		return integer{small: int64(val)}, true
	case uint16:
		return integer{small: int64(val)}, true
	case uint32:
		return integer{small: int64(val)}, true
	case uint64:
		return unsignedInteger(val), true
	default:
		return integer{}, false
	}
}

func unsignedInteger(u uint64) integer {
	if u > math.MaxInt64 {
		return integer{big: u, isBig: true}
	}
	return integer{small: int64(u)}
}

// ToFloat64 converts any Go numeric value to float64.
func ToFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	default:
		return 0, false
	}
}
